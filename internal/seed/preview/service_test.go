// Copyright (c) 2026 Oshidora. All rights reserved.

package preview_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/manifest"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/preview"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/pagination"
)

var fixedNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

// clock is a settable time source for the service under test.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newService(t *testing.T) (*preview.Service, *clock) {
	t.Helper()
	preset, err := catalog.PresetConfig(catalog.PresetMinimal)
	require.NoError(t, err)

	c := &clock{now: fixedNow}
	return preview.NewService(preset, nil, c.Now, nil), c
}

/*
TestService_Dataset_Cached checks that a seed is generated once per as-of date.
*/
func TestService_Dataset_Cached(t *testing.T) {
	defer goleak.VerifyNone(t)

	service, c := newService(t)
	ctx := context.Background()

	first, err := service.Dataset(ctx, "oshidora")
	require.NoError(t, err)
	second, err := service.Dataset(ctx, "oshidora")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, service.Cached())

	// A new UTC day moves the as-of date and produces a fresh dataset.
	c.Advance(catalog.Day)
	third, err := service.Dataset(ctx, "oshidora")
	require.NoError(t, err)

	assert.NotSame(t, first, third)
	assert.Equal(t, first.AsOf.Add(catalog.Day), third.AsOf)
	assert.Equal(t, 2, service.Cached())
}

/*
TestService_Dataset_Concurrent checks that concurrent callers share one result.
*/
func TestService_Dataset_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	service, _ := newService(t)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]any, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.Dataset(context.Background(), "shared")
			assert.NoError(t, err)
			results[i] = result
		}()
	}
	wg.Wait()

	for _, result := range results[1:] {
		assert.Same(t, results[0], result)
	}
	assert.Equal(t, 1, service.Cached())
}

/*
TestService_Eviction checks the cache bound.
*/
func TestService_Eviction(t *testing.T) {
	service, _ := newService(t)
	service.SetCapacity(2)
	ctx := context.Background()

	first, err := service.Dataset(ctx, "a")
	require.NoError(t, err)
	_, err = service.Dataset(ctx, "b")
	require.NoError(t, err)
	_, err = service.Dataset(ctx, "c")
	require.NoError(t, err)

	assert.Equal(t, 2, service.Cached())

	// "a" was evicted, so it is regenerated into an equal but distinct result.
	again, err := service.Dataset(ctx, "a")
	require.NoError(t, err)
	assert.NotSame(t, first, again)
	assert.Equal(t, first.Script.String(), again.Script.String())
}

/*
TestService_InvalidSeed tests the seed rules applied to URL input.
*/
func TestService_InvalidSeed(t *testing.T) {
	service, _ := newService(t)

	tests := []struct {
		name string
		seed string
	}{
		{"blank", "   "},
		{"too_long", strings.Repeat("s", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Dataset(context.Background(), tt.seed)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, "seed", ae.Details[0].Field)
		})
	}
}

/*
TestService_Rankings tests ranking pagination and unknown types.
*/
func TestService_Rankings(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	all, total, err := service.Rankings(ctx, "oshidora", string(ranking.VideoPlays), pagination.Params{Page: 1, Limit: pagination.MaxLimit})
	require.NoError(t, err)
	require.Equal(t, len(all), total)
	require.NotZero(t, total)

	page, pageTotal, err := service.Rankings(ctx, "oshidora", string(ranking.VideoPlays), pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, total, pageTotal)
	if total > 2 {
		require.NotEmpty(t, page)
		assert.Equal(t, all[2], page[0])
	}

	beyond, _, err := service.Rankings(ctx, "oshidora", string(ranking.VideoPlays), pagination.Params{Page: 50, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	_, _, err = service.Rankings(ctx, "oshidora", "weekly_hype", pagination.Params{Page: 1, Limit: 20})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_Summary checks the summary against the underlying dataset.
*/
func TestService_Summary(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	summary, err := service.Summary(ctx, "oshidora")
	require.NoError(t, err)

	dataset, err := service.Dataset(ctx, "oshidora")
	require.NoError(t, err)

	assert.Equal(t, "oshidora", summary.Seed)
	assert.Equal(t, catalog.PresetMinimal, summary.Preset)
	assert.Equal(t, "2026-03-14", summary.AsOf)
	assert.Equal(t, dataset.Counts(), summary.Counts)
	assert.Equal(t, dataset.Script.Len(), summary.Total)
	assert.Equal(t, map[string]int{"casts": 0, "works": 0, "videos": 0, "users": 0, "notices": 0}, summary.Assets)
}

/*
TestService_Summary_ManifestAssets checks the per-kind manifest asset counts.
*/
func TestService_Summary_ManifestAssets(t *testing.T) {
	preset, err := catalog.PresetConfig(catalog.PresetMinimal)
	require.NoError(t, err)

	parsed, err := manifest.Parse([]byte(`{"assets": {"casts": ["c1", "c2"], "videos": ["v1"]}}`))
	require.NoError(t, err)

	c := &clock{now: fixedNow}
	service := preview.NewService(preset, manifest.NewResolver(manifest.DefaultBaseURL, manifest.DefaultExt, parsed, nil), c.Now, nil)

	summary, err := service.Summary(context.Background(), "oshidora")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Assets["casts"])
	assert.Equal(t, 1, summary.Assets["videos"])
	assert.Zero(t, summary.Assets["works"])
}
