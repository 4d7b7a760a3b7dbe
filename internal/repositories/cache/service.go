// Package cache implements the Redis-backed statement cache. Cached data is
// an optimization only: every write path invalidates, and callers fall back
// to the store when the cache misses or fails.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crebito/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService wraps a Redis client with JSON marshaling and a default TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService creates a cache service with the given default TTL.
func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get unmarshals the value at key into dest. The boolean reports whether the
// key was present; a miss is not an error.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func statementKey(accountID int64) string {
	return fmt.Sprintf("statement:account:%d", accountID)
}

// Statement caching

func (s *CacheService) GetStatement(ctx context.Context, accountID int64) (*models.Statement, error) {
	var statement models.Statement
	found, err := s.Get(ctx, statementKey(accountID), &statement)
	if err != nil || !found {
		return nil, err
	}
	return &statement, nil
}

func (s *CacheService) SetStatement(ctx context.Context, accountID int64, statement *models.Statement) error {
	return s.Set(ctx, statementKey(accountID), statement)
}

func (s *CacheService) InvalidateStatement(ctx context.Context, accountID int64) error {
	return s.Delete(ctx, statementKey(accountID))
}

// FlushAll flushes every key. Used at startup so stale snapshots from a
// previous run never survive a restart.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the underlying Redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
