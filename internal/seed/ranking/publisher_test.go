// Copyright (c) 2026 Oshidora. All rights reserved.

package ranking_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/nakatsuka-k/oshidora-sub000/internal/platform/redis"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
)

/*
TestRedisPublisher_Publish round-trips a snapshot through a live Redis.
Set OSHIDORA_TEST_REDIS_URL to run it.
*/
func TestRedisPublisher_Publish(t *testing.T) {
	redisURL := os.Getenv("OSHIDORA_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("OSHIDORA_TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := redisstore.NewClient(ctx, redisURL, logger)
	require.NoError(t, err)
	defer client.Close()

	day := time.Date(2001, 1, 2, 0, 0, 0, 0, time.UTC)
	key := ranking.Key(ranking.VideoCoins, day)
	require.NoError(t, client.ZAdd(ctx, key, redis.Z{Score: 1, Member: "stale"}).Err())

	publisher := ranking.NewRedisPublisher(client, logger)
	require.NoError(t, publisher.Publish(ctx, []ranking.Row{
		{Type: ranking.VideoCoins, AsOfDate: day, Rank: 1, EntityID: "seed_video_007", Value: 150},
		{Type: ranking.VideoCoins, AsOfDate: day, Rank: 2, EntityID: "seed_video_003", Value: 90},
	}))
	defer client.Del(ctx, key)

	members, err := client.ZRevRangeWithScores(ctx, key, 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "seed_video_007", members[0].Member)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 7*24*time.Hour)
}
