package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
)

const (
	categoryKeyPrefix     = "categories:list:"
	categoryGenerationKey = "categories:generation"
)

// CategoryCache caches category list pages in Redis. Pages are stored under
// the current generation; Invalidate moves to the next one, so a page read
// from the database before an invalidation is never served after it.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCategoryCache creates a category cache with the given entry lifetime
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl}
}

func listKey(generation int64, params *pagination.PaginationParams, search string) string {
	return fmt.Sprintf("%s%d:%d:%d:%s", categoryKeyPrefix, generation, params.Page, params.PerPage, search)
}

// Generation returns the current cache generation, 0 before the first invalidation
func (c *CategoryCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, categoryGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

// GetList returns a cached page of the given generation. ok is false on a miss.
func (c *CategoryCache) GetList(ctx context.Context, generation int64, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Category], bool, error) {
	data, err := c.client.Get(ctx, listKey(generation, params, search)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var result pagination.PaginatedResult[entity.Category]
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, err
	}
	return &result, true, nil
}

// SetList stores a page under generation
func (c *CategoryCache) SetList(ctx context.Context, generation int64, params *pagination.PaginationParams, search string, result *pagination.PaginatedResult[entity.Category]) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(generation, params, search), data, c.ttl).Err()
}

// Invalidate starts a new generation and drops the pages stored so far
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, categoryGenerationKey).Err(); err != nil {
		return err
	}

	iter := c.client.Scan(ctx, 0, categoryKeyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
