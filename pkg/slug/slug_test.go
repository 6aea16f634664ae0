// Copyright (c) 2026 Oshidora. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakatsuka-k/oshidora-sub000/pkg/slug"
)

/*
TestFrom covers folding of taxonomy names.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Romance", "romance"},
		{"spaces", "Slice of Life", "slice-of-life"},
		{"apostrophe", "Director's Cut", "directors-cut"},
		{"accents", "Café Noir", "cafe-noir"},
		{"punctuation_runs", "  Sci-Fi // Action!! ", "sci-fi-action"},
		{"japanese_only", "恋愛", ""},
		{"mixed", "BL 作品 2", "bl-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestSet_Make verifies fallbacks and suffixing of duplicate slugs.
*/
func TestSet_Make(t *testing.T) {
	var set slug.Set

	assert.Equal(t, "drama", set.Make("Drama", "seed_genre_001"))
	assert.Equal(t, "drama-2", set.Make("DRAMA", "seed_genre_002"))
	assert.Equal(t, "seed-genre-003", set.Make("ドラマ", "seed_genre_003"))
	assert.Equal(t, "drama-3", set.Make("drama!", "seed_genre_004"))
}

/*
TestSet_Make_SuffixCollision verifies a suffixed slug never reuses a literal one.
*/
func TestSet_Make_SuffixCollision(t *testing.T) {
	var set slug.Set

	assert.Equal(t, "drama-2", set.Make("Drama 2", "x"))
	assert.Equal(t, "drama", set.Make("Drama", "x"))
	assert.Equal(t, "drama-3", set.Make("Drama", "x"))
}
