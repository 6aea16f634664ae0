// Copyright (c) 2026 Oshidora. All rights reserved.

package catalog

import (
	"strings"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/validate"
)

// Preset names.
const (
	PresetMinimal = "minimal"
	PresetDefault = "default"
	PresetLarge   = "large"
)

// GuaranteedRoles is the number of casts pinned to the Actor, Director and
// Writer roles. Every preset needs at least this many casts.
const GuaranteedRoles = 3

// Preset holds the cardinalities of one dataset size.
// Cardinalities are constants, never derived from the seed.
type Preset struct {
	Name string

	Users           int
	Categories      int
	Tags            int
	Genres          int
	CastCategories  int
	Casts           int
	Works           int
	EpisodesPerWork int
	Comments        int
	Inquiries       int
	Notices         int

	PlayEvents      int
	CoinSpendEvents int

	FavoriteCastsPerUser    int
	FavoriteVideosPerUser   int
	RecommendationsPerVideo int
	FeaturedSlots           int
	FeaturedPerSlot         int
}

// Videos is the number of videos the preset generates.
func (p Preset) Videos() int {
	return p.Works * p.EpisodesPerWork
}

// Validate checks the invariants the builder depends on.
func (p Preset) Validate() error {
	return (&validate.Validator{}).
		Min("users", p.Users, 1).
		Min("categories", p.Categories, 2).
		Min("tags", p.Tags, 3).
		Min("genres", p.Genres, 2).
		Min("castCategories", p.CastCategories, 1).
		Min("casts", p.Casts, GuaranteedRoles).
		Min("works", p.Works, 1).
		Min("episodesPerWork", p.EpisodesPerWork, 1).
		Min("playEvents", p.PlayEvents, 0).
		Min("coinSpendEvents", p.CoinSpendEvents, 0).
		Range("featuredSlots", p.FeaturedSlots, 0, len(featuredSlotKeys)).
		Err()
}

var presets = map[string]Preset{
	PresetMinimal: {
		Name:                    PresetMinimal,
		Users:                   5,
		Categories:              4,
		Tags:                    4,
		Genres:                  3,
		CastCategories:          2,
		Casts:                   6,
		Works:                   3,
		EpisodesPerWork:         2,
		Comments:                10,
		Inquiries:               2,
		Notices:                 2,
		PlayEvents:              40,
		CoinSpendEvents:         20,
		FavoriteCastsPerUser:    2,
		FavoriteVideosPerUser:   2,
		RecommendationsPerVideo: 2,
		FeaturedSlots:           1,
		FeaturedPerSlot:         3,
	},
	PresetDefault: {
		Name:                    PresetDefault,
		Users:                   30,
		Categories:              8,
		Tags:                    16,
		Genres:                  8,
		CastCategories:          4,
		Casts:                   24,
		Works:                   20,
		EpisodesPerWork:         3,
		Comments:                120,
		Inquiries:               10,
		Notices:                 6,
		PlayEvents:              600,
		CoinSpendEvents:         200,
		FavoriteCastsPerUser:    3,
		FavoriteVideosPerUser:   5,
		RecommendationsPerVideo: 4,
		FeaturedSlots:           3,
		FeaturedPerSlot:         5,
	},
	PresetLarge: {
		Name:                    PresetLarge,
		Users:                   200,
		Categories:              16,
		Tags:                    40,
		Genres:                  12,
		CastCategories:          6,
		Casts:                   80,
		Works:                   60,
		EpisodesPerWork:         4,
		Comments:                1000,
		Inquiries:               40,
		Notices:                 12,
		PlayEvents:              5000,
		CoinSpendEvents:         1500,
		FavoriteCastsPerUser:    5,
		FavoriteVideosPerUser:   10,
		RecommendationsPerVideo: 6,
		FeaturedSlots:           4,
		FeaturedPerSlot:         8,
	},
}

// PresetNames lists the known presets, smallest first.
func PresetNames() []string {
	return []string{PresetMinimal, PresetDefault, PresetLarge}
}

// PresetConfig returns the preset registered under name.
// Lookup ignores case and surrounding whitespace.
func PresetConfig(name string) (Preset, error) {
	preset, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, apperr.ValidationError("Unknown preset", apperr.FieldError{
			Field:   "preset",
			Message: "Must be one of: " + strings.Join(PresetNames(), ", "),
		})
	}
	return preset, nil
}
