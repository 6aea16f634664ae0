// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package preview serves generated datasets over HTTP without touching a store.

Generating a dataset is CPU-bound (the seeded accounts derive PBKDF2
credentials), so finished datasets are cached per (seed, as-of date) and
concurrent requests for the same key share one generation.
*/
package preview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/validate"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/generator"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/manifest"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/pagination"
)

// DefaultCacheSize is the number of datasets kept in memory.
const DefaultCacheSize = 16

// maxSeedLength bounds seeds accepted from URLs.
const maxSeedLength = 128

// Service generates and caches preview datasets.
type Service struct {
	preset catalog.Preset
	assets *manifest.Resolver
	clock  func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	cache    map[string]*generator.Result
	order    []string
	capacity int
	group    singleflight.Group
}

// NewService creates a preview service for one preset and asset resolver.
// clock may be nil for the wall clock.
func NewService(preset catalog.Preset, assets *manifest.Resolver, clock func() time.Time, logger *slog.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		preset:   preset,
		assets:   assets,
		clock:    clock,
		logger:   logger,
		cache:    make(map[string]*generator.Result),
		capacity: DefaultCacheSize,
	}
}

// SetCapacity changes the number of cached datasets. Values below one are ignored.
func (s *Service) SetCapacity(capacity int) {
	if capacity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capacity = capacity
}

// Cached reports how many datasets are held in memory.
func (s *Service) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// Dataset returns the dataset of seed for the current as-of date.
func (s *Service) Dataset(ctx context.Context, seed string) (*generator.Result, error) {
	if err := (&validate.Validator{}).Required("seed", seed).MaxLen("seed", seed, maxSeedLength).Err(); err != nil {
		return nil, err
	}

	now := s.clock()
	key := seed + "@" + ranking.AsOf(now).Format(sqlgen.DateLayout)

	if result, ok := s.cached(key); ok {
		return result, nil
	}

	value, err, shared := s.group.Do(key, func() (any, error) {
		result, err := generator.Generate(generator.Options{
			Seed:   seed,
			Preset: s.preset,
			Now:    now,
			Assets: s.assets,
			Logger: s.logger,
		})
		if err != nil {
			return nil, err
		}
		s.store(key, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logger.DebugContext(ctx, "preview_generation_shared", slog.String("key", key))
	}
	return value.(*generator.Result), nil
}

// Script returns the rendered seed script of seed.
func (s *Service) Script(ctx context.Context, seed string) (*sqlgen.Script, error) {
	result, err := s.Dataset(ctx, seed)
	if err != nil {
		return nil, err
	}
	return result.Script, nil
}

// Rankings returns one page of a ranking and the ranking's total size.
func (s *Service) Rankings(ctx context.Context, seed, typeName string, page pagination.Params) ([]ranking.Row, int, error) {
	rankingType, ok := ranking.ParseType(typeName)
	if !ok {
		return nil, 0, apperr.NotFound("Ranking")
	}

	result, err := s.Dataset(ctx, seed)
	if err != nil {
		return nil, 0, err
	}

	rows := ranking.ByType(result.Rankings)[rankingType]
	start, end := page.Window(len(rows))
	return rows[start:end], len(rows), nil
}

// Summary describes a dataset without its rows.
type Summary struct {
	Seed   string         `json:"seed"`
	Preset string         `json:"preset"`
	AsOf   string         `json:"as_of"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"statements"`

	// Assets counts the manifest assets available per kind.
	Assets map[string]int `json:"manifest_assets"`
}

// Summary returns the row counts of seed's dataset.
func (s *Service) Summary(ctx context.Context, seed string) (Summary, error) {
	result, err := s.Dataset(ctx, seed)
	if err != nil {
		return Summary{}, err
	}

	assets := make(map[string]int, len(manifest.Kinds()))
	for _, kind := range manifest.Kinds() {
		assets[string(kind)] = s.assets.Bound(kind)
	}

	return Summary{
		Seed:   result.Seed,
		Preset: result.Preset,
		AsOf:   result.AsOf.Format(sqlgen.DateLayout),
		Counts: result.Counts(),
		Total:  result.Script.Len(),
		Assets: assets,
	}, nil
}

// # Cache

func (s *Service) cached(key string) (*generator.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.cache[key]
	return result, ok
}

// store inserts a result, evicting the oldest entry when full.
func (s *Service) store(key string, result *generator.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cache[key]; exists {
		return
	}
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.cache, oldest)
	}
	s.cache[key] = result
	s.order = append(s.order, key)
}
