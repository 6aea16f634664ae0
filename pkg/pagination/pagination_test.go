// Copyright (c) 2026 Oshidora. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakatsuka-k/oshidora-sub000/pkg/pagination"
)

/*
TestFromRequest tests query parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: 20}},
		{"limit_too_large", "?limit=1000", pagination.Params{Page: 1, Limit: 20}},
		{"garbage", "?page=two&limit=x", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/rankings"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

/*
TestParams_Window checks that windows never exceed the list bounds.
*/
func TestParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    pagination.Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 5}, 12, 0, 5},
		{"last_partial", pagination.Params{Page: 3, Limit: 5}, 12, 10, 12},
		{"beyond_end", pagination.Params{Page: 9, Limit: 5}, 12, 12, 12},
		{"empty", pagination.Params{Page: 1, Limit: 5}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

/*
TestNewMeta checks the total page computation.
*/
func TestNewMeta(t *testing.T) {
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 20, Total: 41, TotalPages: 3}, pagination.NewMeta(1, 20, 41))
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 10).TotalPages)
}
