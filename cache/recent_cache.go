package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	recentKey = "recent:%d" // List: artwork IDs, most recent first
	recentMax = 10
	recentTTL = 30 * 24 * time.Hour
)

// RecentCache tracks the recently-viewed artworks per user: a bounded list
// of distinct IDs, most recent first. A repeat view moves the ID to the
// front instead of duplicating it.
type RecentCache struct {
	client *redis.Client
}

// NewRecentCache creates a recently-viewed cache on the given client.
func NewRecentCache(client *redis.Client) *RecentCache {
	return &RecentCache{client: client}
}

func recentKeyFor(userID int64) string {
	return fmt.Sprintf(recentKey, userID)
}

// Record marks an artwork as just viewed.
func (c *RecentCache) Record(ctx context.Context, userID int64, artworkID string) error {
	if c.client == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	key := recentKeyFor(userID)
	pipe := c.client.Pipeline()
	pipe.LRem(ctx, key, 0, artworkID)
	pipe.LPush(ctx, key, artworkID)
	pipe.LTrim(ctx, key, 0, recentMax-1)
	pipe.Expire(ctx, key, recentTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record recent view: %w", err)
	}
	return nil
}

// List returns the recently-viewed artwork IDs, most recent first.
func (c *RecentCache) List(ctx context.Context, userID int64) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("Redis client not initialized")
	}

	ids, err := c.client.LRange(ctx, recentKeyFor(userID), 0, recentMax-1).Result()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get recent views: %w", err)
	}
	return ids, nil
}
