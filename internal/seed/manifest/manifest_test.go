// Copyright (c) 2026 Oshidora. All rights reserved.

package manifest_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/manifest"
)

const manifestDoc = `{
  "version": 1,
  "assets": {
    "casts": [" cast-a ", "cast-b.png", ""],
    "works": ["work-a"]
  },
  "snsLinks": {
    "seed_cast_001": ["https://x.com/cast001", "  ", "https://instagram.com/cast001"]
  }
}`

/*
TestParse verifies trimming, positional blanks and SNS link cleanup.
*/
func TestParse(t *testing.T) {
	parsed, err := manifest.Parse([]byte(manifestDoc))
	require.NoError(t, err)

	assert.Equal(t, 1, parsed.Version)
	assert.Equal(t, []string{"cast-a", "cast-b.png", ""}, parsed.Assets.List(manifest.KindCasts))
	assert.Equal(t, []string{"work-a"}, parsed.Assets.List(manifest.KindWorks))
	assert.Nil(t, parsed.Assets.List(manifest.KindVideos))
	assert.Nil(t, parsed.Assets.List(manifest.Kind("unknown")))
	assert.Equal(t,
		[]string{"https://x.com/cast001", "https://instagram.com/cast001"},
		parsed.SNSLinks["seed_cast_001"],
	)
}

/*
TestParse_Malformed verifies that broken documents surface an error.
*/
func TestParse_Malformed(t *testing.T) {
	_, err := manifest.Parse([]byte(`{"assets": [`))
	require.Error(t, err)

	_, err = manifest.Parse([]byte(`{"assets": {"casts": "not-a-list"}}`))
	require.Error(t, err)
}

/*
TestParseUploadResults accepts both plain and object entries.
*/
func TestParseUploadResults(t *testing.T) {
	results, err := manifest.ParseUploadResults([]byte(`{
		"cast-a": "https://cdn.example.com/cast-a.webp",
		"work-a": {"url": "https://cdn.example.com/work-a.webp"},
		"blank": ""
	}`))
	require.NoError(t, err)

	assert.Equal(t, manifest.UploadResults{
		"cast-a": "https://cdn.example.com/cast-a.webp",
		"work-a": "https://cdn.example.com/work-a.webp",
	}, results)

	_, err = manifest.ParseUploadResults([]byte(`{"cast-a": 42}`))
	require.Error(t, err)
}

/*
TestResolver_URL covers the resolution order of asset URLs.
*/
func TestResolver_URL(t *testing.T) {
	parsed, err := manifest.Parse([]byte(manifestDoc))
	require.NoError(t, err)

	uploads := manifest.UploadResults{"cast-a": "https://cdn.example.com/cast-a.webp"}
	resolver := manifest.NewResolver("http://localhost:8787/media/", "svg", parsed, uploads)

	tests := []struct {
		name     string
		kind     manifest.Kind
		n        int
		entityID string
		want     string
	}{
		{"uploaded", manifest.KindCasts, 1, "seed_cast_001", "https://cdn.example.com/cast-a.webp"},
		{"asset_with_extension", manifest.KindCasts, 2, "seed_cast_002", "http://localhost:8787/media/casts/cast-b.png"},
		{"blank_asset_placeholder", manifest.KindCasts, 3, "seed_cast_003", "http://localhost:8787/media/casts/seed_cast_003.svg"},
		{"past_end_placeholder", manifest.KindCasts, 4, "seed_cast_004", "http://localhost:8787/media/casts/seed_cast_004.svg"},
		{"asset_without_extension", manifest.KindWorks, 1, "seed_work_001", "http://localhost:8787/media/works/work-a.svg"},
		{"kind_absent", manifest.KindVideos, 1, "seed_video_001", "http://localhost:8787/media/videos/seed_video_001.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.URL(tt.kind, tt.n, tt.entityID))
		})
	}

	assert.Equal(t, 3, resolver.Bound(manifest.KindCasts))
	assert.Len(t, resolver.SNSLinks("seed_cast_001"), 2)
	assert.Nil(t, resolver.SNSLinks("seed_cast_002"))
}

/*
TestResolver_NilInputs verifies placeholder-only resolution.
*/
func TestResolver_NilInputs(t *testing.T) {
	resolver := manifest.NewResolver("http://localhost:8787/media", "png", nil, nil)

	assert.Equal(t, "http://localhost:8787/media/works/seed_work_001.png", resolver.URL(manifest.KindWorks, 1, "seed_work_001"))
	assert.Nil(t, resolver.SNSLinks("seed_cast_001"))
	assert.Zero(t, resolver.Bound(manifest.KindWorks))

	var none *manifest.Resolver
	assert.Zero(t, none.Bound(manifest.KindCasts))
}

/*
TestOpen_DegradesWithWarnings verifies that missing and corrupt files are
logged and generation keeps placeholder URLs.
*/
func TestOpen_DegradesWithWarnings(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "upload-result.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o600))

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	resolver := manifest.Open(filepath.Join(dir, "missing.json"), corrupt, "http://localhost:8787/media", "svg", logger)

	assert.Equal(t, "http://localhost:8787/media/users/seed_user_001.svg", resolver.URL(manifest.KindUsers, 1, "seed_user_001"))
	assert.Contains(t, logs.String(), "asset_manifest_unavailable")
	assert.Contains(t, logs.String(), "upload_result_unavailable")
	assert.Contains(t, logs.String(), `"level":"WARN"`)
}

/*
TestOpen_LoadsFiles verifies the happy path from disk.
*/
func TestOpen_LoadsFiles(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.json")
	uploadsPath := filepath.Join(dir, "upload-result.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestDoc), 0o600))
	require.NoError(t, os.WriteFile(uploadsPath, []byte(`{"work-a": "https://cdn.example.com/w.webp"}`), 0o600))

	var logs bytes.Buffer
	resolver := manifest.Open(manifestPath, uploadsPath, "http://localhost:8787/media", "svg", slog.New(slog.NewJSONHandler(&logs, nil)))

	assert.Equal(t, "https://cdn.example.com/w.webp", resolver.URL(manifest.KindWorks, 1, "seed_work_001"))
	assert.Empty(t, logs.String())
}
