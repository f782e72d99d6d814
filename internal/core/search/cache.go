// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/wedplan/internal/platform/constants"
)

// # Redis Keys

const (
	keyPrefix = constants.RedisPrefixSearch

	// epochKey is bumped on every committed write. It is part of every result
	// key, so bumping it orphans all cached results at once; they then expire
	// through their TTL.
	epochKey = keyPrefix + "epoch"
)

// Cache stores search results in Redis.
//
// Cache failures are never fatal: they are logged and treated as a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Invalidate drops every cached result.
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, epochKey).Err(); err != nil {
		c.logger.Warn("search_cache_invalidate_failed", slog.Any("error", err))
	}
}

// key builds the result key for query and params under the current epoch.
func (c *Cache) key(ctx context.Context, query string, params []any) (string, error) {
	epoch, err := c.client.Get(ctx, epochKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	parts := make([]string, 0, len(params))
	for _, param := range params {
		if t, ok := param.(time.Time); ok {
			parts = append(parts, t.Format(time.DateOnly))
			continue
		}
		parts = append(parts, fmt.Sprint(param))
	}

	return fmt.Sprintf("%s%d:%s:%s", keyPrefix, epoch, query, strings.Join(parts, "|")), nil
}

// lookup returns the cached rows for query and params, if any.
func lookup[T any](ctx context.Context, c *Cache, query string, params []any) ([]T, bool) {
	key, err := c.key(ctx, query, params)
	if err != nil {
		c.logger.Warn("search_cache_unavailable", slog.String("query", query), slog.Any("error", err))
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("search_cache_read_failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}

	rows := []T{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.logger.Warn("search_cache_corrupt", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}

	return rows, true
}

// store caches rows for query and params until the TTL or the next write.
func store[T any](ctx context.Context, c *Cache, query string, params []any, rows []T) {
	key, err := c.key(ctx, query, params)
	if err != nil {
		c.logger.Warn("search_cache_unavailable", slog.String("query", query), slog.Any("error", err))
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		c.logger.Warn("search_cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("search_cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}
}
