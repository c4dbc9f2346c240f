// Package cache provides a Redis-backed cache for destination search results.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
)

const defaultTTL = time.Hour

// SearchCache wraps a Redis client with typed get/set for destination search
// results. The catalog is seeded once and effectively static, so a 1-hour TTL
// is generous.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache constructs a SearchCache with the default TTL.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client, ttl: defaultTTL}
}

// Ping reports whether Redis is reachable. Used by the health endpoint.
func (c *SearchCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// key returns the Redis key for the given search query.
func key(query string) string {
	return "destsearch:" + strings.ToLower(strings.TrimSpace(query))
}

// Get retrieves cached search results for a query.
// Returns nil, nil on a cache miss (not an error).
func (c *SearchCache) Get(ctx context.Context, query string) ([]domain.Destination, error) {
	val, err := c.client.Get(ctx, key(query)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for query %q: %w", query, err)
	}

	var dests []domain.Destination
	if err := json.Unmarshal([]byte(val), &dests); err != nil {
		return nil, fmt.Errorf("unmarshaling cached results for query %q: %w", query, err)
	}

	return dests, nil
}

// Set stores search results with the configured TTL. Empty result sets are
// cached too, so repeated misses for the same query skip the database.
func (c *SearchCache) Set(ctx context.Context, query string, dests []domain.Destination) error {
	if dests == nil {
		dests = []domain.Destination{}
	}

	b, err := json.Marshal(dests)
	if err != nil {
		return fmt.Errorf("marshaling results for query %q: %w", query, err)
	}

	if err := c.client.Set(ctx, key(query), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for query %q: %w", query, err)
	}

	return nil
}
