// Copyright (c) 2026 Oshidora. All rights reserved.

package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/constants"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
)

// Key is the sorted-set key of one published snapshot: ranking:<type>:<date>.
func Key(t Type, asOf time.Time) string {
	return constants.RedisPrefixRanking + string(t) + ":" + asOf.UTC().Format(sqlgen.DateLayout)
}

// RedisPublisher mirrors ranking snapshots into Redis sorted sets, one set per
// (type, as-of date), scored by ranking value.
type RedisPublisher struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisPublisher creates a publisher whose keys expire after
// [constants.RankingKeyTTL].
func NewRedisPublisher(client redis.Cmdable, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		ttl:    constants.RankingKeyTTL,
		logger: logger,
	}
}

// Publish replaces every snapshot in rows atomically per call.
//
// Each key is deleted, refilled and given a fresh TTL inside one MULTI/EXEC
// pipeline, so readers never observe a half-written ranking.
func (publisher *RedisPublisher) Publish(ctx context.Context, rows []Row) error {
	batches := plan(rows)
	if len(batches) == 0 {
		return nil
	}

	_, err := publisher.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, batch := range batches {
			pipe.Del(ctx, batch.key)
			pipe.ZAdd(ctx, batch.key, batch.members...)
			pipe.Expire(ctx, batch.key, publisher.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_ranking_publish_failed: %w", err)
	}

	publisher.logger.Info("rankings_published",
		slog.Int("keys", len(batches)),
		slog.Int("rows", len(rows)),
	)
	return nil
}

type batch struct {
	key     string
	members []redis.Z
}

// plan groups rows per key, keeping first-seen key order.
func plan(rows []Row) []batch {
	var batches []batch
	index := make(map[string]int)

	for _, row := range rows {
		key := Key(row.Type, row.AsOfDate)
		i, ok := index[key]
		if !ok {
			i = len(batches)
			index[key] = i
			batches = append(batches, batch{key: key})
		}
		batches[i].members = append(batches[i].members, redis.Z{
			Score:  float64(row.Value),
			Member: row.EntityID,
		})
	}

	return batches
}
