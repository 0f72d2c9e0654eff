package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"ArtLens/model"

	"github.com/go-redis/redis/v8"
)

const collectionsKey = "collections:%d" // String: JSON document of the full set

// RedisCollectionStore persists each user's full collection set as one keyed
// JSON document. Reads and writes are whole-document (read-modify-write);
// concurrent writers race and the last write wins, which is acceptable for a
// single-user store.
type RedisCollectionStore struct {
	client *redis.Client
}

// NewRedisCollectionStore creates a collection store on the given client.
func NewRedisCollectionStore(client *redis.Client) *RedisCollectionStore {
	return &RedisCollectionStore{client: client}
}

func collectionsKeyFor(userID int64) string {
	return fmt.Sprintf(collectionsKey, userID)
}

// Load returns the user's full collection set. A missing key is an empty set.
func (s *RedisCollectionStore) Load(ctx context.Context, userID int64) ([]model.Collection, error) {
	if s.client == nil {
		return nil, fmt.Errorf("Redis client not initialized")
	}

	data, err := s.client.Get(ctx, collectionsKeyFor(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Collection{}, nil
		}
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	var collections []model.Collection
	if err := json.Unmarshal([]byte(data), &collections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collections: %w", err)
	}
	return collections, nil
}

// Save writes the user's full collection set back, replacing the previous
// document.
func (s *RedisCollectionStore) Save(ctx context.Context, userID int64, collections []model.Collection) error {
	if s.client == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	data, err := json.Marshal(collections)
	if err != nil {
		return fmt.Errorf("failed to marshal collections: %w", err)
	}

	if err := s.client.Set(ctx, collectionsKeyFor(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collections: %w", err)
	}
	return nil
}
