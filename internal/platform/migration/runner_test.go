// Copyright (c) 2026 Oshidora. All rights reserved.

package migration_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/database/schema"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/migration"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/sqlite"
)

/*
TestRunUp_SQLite provisions a scratch SQLite file and checks that every table
of the schema registry exists, and that a second run is a no-op.
*/
func TestRunUp_SQLite(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "seed.db")

	require.NoError(t, migration.RunUp("sqlite://"+path, logger))
	require.NoError(t, migration.RunUp("sqlite://"+path, logger))

	db, err := sqlite.Open(context.Background(), path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range schema.Tables() {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}
