// Copyright (c) 2026 Oshidora. All rights reserved.

package generator_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/database/schema"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/catalog"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/generator"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
)

var referenceTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func generate(t *testing.T, seed, presetName string, now time.Time) *generator.Result {
	t.Helper()

	preset, err := catalog.PresetConfig(presetName)
	require.NoError(t, err)

	result, err := generator.Generate(generator.Options{Seed: seed, Preset: preset, Now: now})
	require.NoError(t, err)
	return result
}

/*
TestGenerate_Deterministic verifies that two runs on the same day differ only
in the generated-at header line.
*/
func TestGenerate_Deterministic(t *testing.T) {
	preset, err := catalog.PresetConfig(catalog.PresetMinimal)
	require.NoError(t, err)

	first, err := generator.Generate(generator.Options{
		Seed: "oshidora", Preset: preset, Now: referenceTime, GeneratedAt: referenceTime,
	})
	require.NoError(t, err)

	second, err := generator.Generate(generator.Options{
		Seed: "oshidora", Preset: preset, Now: referenceTime.Add(3 * time.Hour), GeneratedAt: referenceTime.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	if diff := cmp.Diff(first.Script.Statements(), second.Script.Statements()); diff != "" {
		t.Fatalf("statements differ (-first +second):\n%s", diff)
	}

	var differing []string
	for i, line := range first.Script.Header() {
		if line != second.Script.Header()[i] {
			differing = append(differing, line)
		}
	}
	require.Len(t, differing, 1)
	assert.True(t, strings.HasPrefix(differing[0], "generated at "))

	other := generate(t, "another", catalog.PresetMinimal, referenceTime)
	assert.NotEqual(t, first.Script.Statements(), other.Script.Statements())
}

/*
TestGenerate_ScriptShape checks the header, phases and absence of transactions.
*/
func TestGenerate_ScriptShape(t *testing.T) {
	result := generate(t, "shape", catalog.PresetMinimal, referenceTime)
	script := result.Script

	generatedAt := 0
	for _, line := range script.Header() {
		if strings.HasPrefix(line, "generated at ") {
			generatedAt++
		}
	}
	assert.Equal(t, 1, generatedAt)

	cleanup := script.Phase(sqlgen.PhaseCleanup)
	require.Len(t, cleanup, len(schema.Tables())+1)
	assert.True(t, strings.HasPrefix(cleanup[0], "UPDATE categories SET parent_id = NULL"))
	assert.True(t, strings.HasPrefix(cleanup[1], "DELETE FROM rankings"))
	assert.True(t, strings.HasPrefix(cleanup[len(cleanup)-1], "DELETE FROM users"))
	assert.Contains(t, cleanup[len(cleanup)-1], `email LIKE 'seed.user%@example.com'`)

	for _, statement := range script.Phase(sqlgen.PhaseUpsert) {
		assert.True(t, strings.HasPrefix(statement, "INSERT INTO "), statement)
		assert.Contains(t, statement, " ON CONFLICT (")
	}
	for _, statement := range script.Phase(sqlgen.PhasePatch) {
		assert.True(t, strings.HasPrefix(statement, "UPDATE "), statement)
	}

	rendered := script.String()
	for _, keyword := range []string{"BEGIN", "COMMIT", "ROLLBACK"} {
		assert.NotContains(t, rendered, keyword)
	}
	assert.Contains(t, rendered, "''", "free text exercises quote escaping")
}

var (
	seedLiteral   = regexp.MustCompile(`'(seed_[a-z]+_[0-9]+)'`)
	insertColumns = regexp.MustCompile(`^INSERT INTO (\w+) \((\w+),`)
)

/*
TestGenerate_ReferentialIntegrity verifies every generated id a statement
references was inserted by an earlier statement.
*/
func TestGenerate_ReferentialIntegrity(t *testing.T) {
	result := generate(t, "integrity", catalog.PresetMinimal, referenceTime)

	inserted := make(map[string]bool)
	for _, statement := range result.Script.Phase(sqlgen.PhaseUpsert) {
		literals := seedLiteral.FindAllStringSubmatch(statement, -1)

		matches := insertColumns.FindStringSubmatch(statement)
		require.NotNil(t, matches, statement)
		if matches[2] == "id" {
			require.NotEmpty(t, literals, statement)
			inserted[literals[0][1]] = true
			literals = literals[1:]
		}

		for _, literal := range literals {
			assert.True(t, inserted[literal[1]], "%s referenced before insert in %s", literal[1], statement)
		}
	}

	for _, statement := range result.Script.Phase(sqlgen.PhasePatch) {
		for _, literal := range seedLiteral.FindAllStringSubmatch(statement, -1) {
			assert.True(t, inserted[literal[1]], literal[1])
		}
	}
}

/*
TestGenerate_CastRolePatch verifies the patch phase repeats the marker roles
of the first three casts exactly as the upsert wrote them.
*/
func TestGenerate_CastRolePatch(t *testing.T) {
	result := generate(t, "oshidora", catalog.PresetMinimal, referenceTime)
	patches := result.Script.Phase(sqlgen.PhasePatch)

	for i, marker := range catalog.RoleMarkers() {
		cast := result.Graph.Casts[i]
		assert.Equal(t, marker, cast.Role)

		want := "UPDATE casts SET role = '" + marker + "' WHERE id = '" + cast.ID + "'"
		assert.Contains(t, patches, want)
	}
}

/*
TestGenerate_Rankings verifies every ranking type is emitted for the as-of date.
*/
func TestGenerate_Rankings(t *testing.T) {
	result := generate(t, "oshidora", catalog.PresetDefault, referenceTime)

	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), result.AsOf)

	var rankingStatements []string
	for _, statement := range result.Script.Phase(sqlgen.PhaseUpsert) {
		if strings.HasPrefix(statement, "INSERT INTO rankings ") {
			rankingStatements = append(rankingStatements, statement)
		}
	}
	assert.Len(t, rankingStatements, len(result.Rankings))

	for _, rankingType := range ranking.Types() {
		found := false
		for _, statement := range rankingStatements {
			if strings.Contains(statement, "VALUES ('"+string(rankingType)+"', '2026-03-13', 1,") {
				found = true
				break
			}
		}
		assert.True(t, found, "no rank 1 row for %s", rankingType)
	}

	counts := result.Counts()
	assert.Equal(t, 60, counts[schema.Videos.Table])
	assert.Equal(t, 600, counts[schema.PlayEvents.Table])
	assert.Equal(t, len(result.Rankings), counts[schema.Rankings.Table])
}

/*
TestGenerate_InvalidOptions verifies validation happens before generation.
*/
func TestGenerate_InvalidOptions(t *testing.T) {
	preset, err := catalog.PresetConfig(catalog.PresetMinimal)
	require.NoError(t, err)

	_, err = generator.Generate(generator.Options{Seed: "x", Preset: preset})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "now", ae.Details[0].Field)

	preset.Casts = 1
	_, err = generator.Generate(generator.Options{Seed: "x", Preset: preset, Now: referenceTime})
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "casts", ae.Details[0].Field)
}

/*
TestGenerate_AnySeed verifies that seeds of any length and character set
produce a dataset.
*/
func TestGenerate_AnySeed(t *testing.T) {
	preset, err := catalog.PresetConfig(catalog.PresetMinimal)
	require.NoError(t, err)

	tests := []struct {
		name string
		seed string
	}{
		{"empty", ""},
		{"long", strings.Repeat("x", 300)},
		{"unicode", "推しドラ 🎬 O'Brien"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := generator.Generate(generator.Options{Seed: tt.seed, Preset: preset, Now: referenceTime})
			require.NoError(t, err)
			assert.Len(t, result.Graph.Videos, preset.Videos())
			assert.Contains(t, result.Script.String(), "seed_video_001")
		})
	}
}
