package utils

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Exists checks whether a cache entry exists.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var (
	defaultCache     Cache
	defaultCacheOnce sync.Once
)

func getDefaultCache() (Cache, error) {
	defaultCacheOnce.Do(func() {
		if repo.Redis != nil {
			defaultCache = NewRedisCache(repo.Redis)
		}
	})
	if defaultCache == nil {
		return nil, errors.New("cache not initialized")
	}
	return defaultCache, nil
}

func fileHashKey(hash string) string {
	return fmt.Sprintf("file:hash:%s", hash)
}

// GetFileFromCache reads a file record cached by hash.
func GetFileFromCache(ctx context.Context, hash string) (*model.File, bool) {
	cache, err := getDefaultCache()
	if err != nil {
		return nil, false
	}
	var file model.File
	if err := cache.Get(ctx, fileHashKey(hash), &file); err != nil {
		return nil, false
	}
	return &file, true
}

// SetFileToCache caches a file record by hash.
func SetFileToCache(ctx context.Context, file *model.File, ttl time.Duration) error {
	if file == nil || file.Hash == "" {
		return nil
	}
	cache, err := getDefaultCache()
	if err != nil {
		return err
	}
	return cache.Set(ctx, fileHashKey(file.Hash), file, ttl)
}

// InvalidateFileCache drops the cached file record for a hash.
func InvalidateFileCache(ctx context.Context, hash string) error {
	cache, err := getDefaultCache()
	if err != nil {
		return err
	}
	return cache.Delete(ctx, fileHashKey(hash))
}
