// Copyright (c) 2026 Oshidora. All rights reserved.

package apply_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/migration"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/postgres"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/apply"
)

/*
TestApply_Postgres runs the script twice against a disposable Postgres
database. Set OSHIDORA_TEST_POSTGRES_URL to run it.
*/
func TestApply_Postgres(t *testing.T) {
	databaseURL := os.Getenv("OSHIDORA_TEST_POSTGRES_URL")
	if databaseURL == "" {
		t.Skip("OSHIDORA_TEST_POSTGRES_URL not set")
	}

	ctx := context.Background()
	logger := discardLogger()
	require.NoError(t, migration.RunUp(databaseURL, logger))

	pool, err := postgres.NewPool(ctx, databaseURL, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	result := generate(t, "oshidora")
	executor := apply.NewPostgres(pool)

	for range 2 {
		_, err := apply.Apply(ctx, executor, result.Script, logger)
		require.NoError(t, err)
	}

	var videos int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM videos WHERE id LIKE 'seed\_video\_%' ESCAPE '\'`).Scan(&videos))
	assert.Equal(t, len(result.Graph.Videos), videos)
}
