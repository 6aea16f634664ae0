// Copyright (c) 2026 Oshidora. All rights reserved.

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/dberr"
)

// codedError mimics a driver error exposing a SQLite result code.
type codedError struct{ code int }

func (e codedError) Error() string { return "constraint failed" }
func (e codedError) Code() int     { return e.code }

/*
TestWrap tests the mapping of driver errors to application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"pg_foreign_key", &pgconn.PgError{Code: "23503", ConstraintName: "videos_work_id_fkey"}, "CONFLICT", http.StatusConflict},
		{"pg_unique", &pgconn.PgError{Code: "23505"}, "CONFLICT", http.StatusConflict},
		{"pg_syntax", &pgconn.PgError{Code: "42601"}, "STORAGE_ERROR", http.StatusInternalServerError},
		{"sqlite_foreign_key", codedError{code: 787}, "CONFLICT", http.StatusConflict},
		{"sqlite_busy", codedError{code: 5}, "STORAGE_ERROR", http.StatusInternalServerError},
		{"plain", errors.New("connection reset"), "STORAGE_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "statement 7")

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Contains(t, ae.Message, "statement 7")
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "statement 1"))
}
