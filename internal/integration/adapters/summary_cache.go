// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentfolio/backend/internal/application/usecase/revenue"
)

// summaryKeyPattern matches every cached summary regardless of period, so a
// single invalidation sweep clears all of them after a write.
const summaryKeyPattern = "revenue:summary:*"

// redisSummaryCache implements revenue.SummaryCache on Redis. Summaries are
// stored as JSON with a TTL so stale entries age out even if an
// invalidation is missed.
type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) revenue.SummaryCache {
	return &redisSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached summary for the key, or (nil, nil) on a miss.
func (c *redisSummaryCache) Get(ctx context.Context, key string) (*revenue.Summary, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var summary revenue.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, nil
}

// Set stores the summary under the key with the configured TTL.
func (c *redisSummaryCache) Set(ctx context.Context, key string, summary *revenue.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached summary.
func (c *redisSummaryCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, summaryKeyPattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan summary cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete summary cache keys: %w", err)
	}
	return nil
}
