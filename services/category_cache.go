package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

const categoryCacheKey = "categories:all"

// CategoryCache is a read-through Redis cache for the global category
// list. Categories are shared across all users and never deleted, so the
// only invalidation point is category creation. A nil *CategoryCache is
// valid and disables caching.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(redisURL string, ttl time.Duration) (*CategoryCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CategoryCache{client: client, ttl: ttl}, nil
}

// Get returns the cached category list, or (nil, nil) on a cache miss.
func (cc *CategoryCache) Get(ctx context.Context) ([]*model.Category, error) {
	if cc == nil {
		return nil, nil
	}

	data, err := cc.client.Get(ctx, categoryCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read category cache: %w", err)
	}

	var categories []*model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached categories: %w", err)
	}
	return categories, nil
}

func (cc *CategoryCache) Set(ctx context.Context, categories []*model.Category) error {
	if cc == nil {
		return nil
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return cc.client.Set(ctx, categoryCacheKey, data, cc.ttl).Err()
}

func (cc *CategoryCache) Invalidate(ctx context.Context) error {
	if cc == nil {
		return nil
	}
	return cc.client.Del(ctx, categoryCacheKey).Err()
}
