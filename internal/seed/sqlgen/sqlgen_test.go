// Copyright (c) 2026 Oshidora. All rights reserved.

package sqlgen_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/pointer"
)

/*
TestLiteral covers rendering of every supported value type.
*/
func TestLiteral(t *testing.T) {
	var missing *string

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "NULL"},
		{"nil_pointer", missing, "NULL"},
		{"pointer", pointer.To("x"), "'x'"},
		{"int", 42, "42"},
		{"negative_int64", int64(-7), "-7"},
		{"float", 1.5, "1.5"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"time", time.Date(2026, 3, 14, 1, 2, 3, 456_000_000, time.FixedZone("JST", 9*3600)), "'2026-03-13T16:02:03.456Z'"},
		{"zero_time", time.Time{}, "NULL"},
		{"plain", "Drama", "'Drama'"},
		{"apostrophe", "Don't Forget the Promise", "'Don''t Forget the Promise'"},
		{"double_apostrophe", "''", "''''''"},
		{"nul_stripped", "a\x00b", "'ab'"},
		{"nfc", "Cafe\u0301", "'Caf\u00e9'"},
		{"japanese", "恋愛ドラマ", "'恋愛ドラマ'"},
		{"empty", "", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlgen.Literal(tt.value))
		})
	}

	assert.Nil(t, sqlgen.Optional(""))
	assert.Equal(t, "x", sqlgen.Optional("x"))
}

/*
TestInsert_SQL covers the three conflict policies.
*/
func TestInsert_SQL(t *testing.T) {
	tests := []struct {
		name     string
		conflict *sqlgen.Conflict
		want     string
	}{
		{
			name: "plain",
			want: "INSERT INTO tags (id, name) VALUES ('seed_tag_001', 'Director''s Cut')",
		},
		{
			name:     "do_nothing",
			conflict: sqlgen.DoNothing("id"),
			want:     "INSERT INTO tags (id, name) VALUES ('seed_tag_001', 'Director''s Cut') ON CONFLICT (id) DO NOTHING",
		},
		{
			name:     "do_update",
			conflict: sqlgen.DoUpdate([]string{"name"}, "slug", "updated_at"),
			want: "INSERT INTO tags (id, name) VALUES ('seed_tag_001', 'Director''s Cut') " +
				"ON CONFLICT (name) DO UPDATE SET slug = excluded.slug, updated_at = excluded.updated_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insert := sqlgen.Insert{
				Table:    "tags",
				Columns:  []string{"id", "name"},
				Values:   []any{"seed_tag_001", "Director's Cut"},
				Conflict: tt.conflict,
			}
			assert.Equal(t, tt.want, insert.SQL())
		})
	}
}

/*
TestDeleteAndUpdate_SQL covers cleanup and patch statements.
*/
func TestDeleteAndUpdate_SQL(t *testing.T) {
	del := sqlgen.Delete{
		Table: "work_tags",
		Where: sqlgen.Or(
			sqlgen.Like("work_id", `seed\_work\_%`),
			sqlgen.Like("tag_id", `seed\_tag\_%`),
		),
	}
	assert.Equal(t,
		`DELETE FROM work_tags WHERE (work_id LIKE 'seed\_work\_%' ESCAPE '\') OR (tag_id LIKE 'seed\_tag\_%' ESCAPE '\')`,
		del.SQL(),
	)

	update := sqlgen.Update{
		Table: "categories",
		Set:   []sqlgen.Assignment{sqlgen.Set("parent_id", "seed_category_001")},
		Where: sqlgen.Eq("id", "seed_category_005"),
	}
	assert.Equal(t,
		"UPDATE categories SET parent_id = 'seed_category_001' WHERE id = 'seed_category_005'",
		update.SQL(),
	)

	single := sqlgen.And(sqlgen.Eq("id", 1))
	assert.Equal(t, sqlgen.Condition("id = 1"), single)
}

/*
TestScript_PhaseOrder verifies phases render in order regardless of call order.
*/
func TestScript_PhaseOrder(t *testing.T) {
	var script sqlgen.Script
	script.Comment("oshidora seed")
	script.Comment("multi\nline")

	script.Add(sqlgen.PhasePatch, sqlgen.Update{Table: "t", Set: []sqlgen.Assignment{sqlgen.Set("a", 1)}, Where: sqlgen.Eq("id", "x")})
	script.Add(sqlgen.PhaseUpsert, sqlgen.Insert{Table: "t", Columns: []string{"id"}, Values: []any{"x"}})
	script.Add(sqlgen.PhaseCleanup, sqlgen.Delete{Table: "t", Where: sqlgen.Eq("id", "x")})

	assert.Equal(t, []string{
		"DELETE FROM t WHERE id = 'x'",
		"INSERT INTO t (id) VALUES ('x')",
		"UPDATE t SET a = 1 WHERE id = 'x'",
	}, script.Statements())
	assert.Equal(t, 3, script.Len())

	var out bytes.Buffer
	written, err := script.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(out.Len()), written)

	rendered := out.String()
	assert.True(t, strings.HasPrefix(rendered, "-- oshidora seed\n-- multi line\n"))
	assert.Less(t, strings.Index(rendered, "-- cleanup"), strings.Index(rendered, "-- upsert"))
	assert.Less(t, strings.Index(rendered, "-- upsert"), strings.Index(rendered, "-- patch"))
	assert.NotContains(t, strings.ToUpper(rendered), "BEGIN")
	assert.NotContains(t, strings.ToUpper(rendered), "COMMIT")
}

/*
TestScript_Empty renders nothing but the header.
*/
func TestScript_Empty(t *testing.T) {
	var script sqlgen.Script
	assert.Empty(t, script.String())
	assert.Empty(t, script.Statements())
	assert.Equal(t, "unknown", sqlgen.Phase(9).String())
}
