// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Redis-backed cache for rendered storefront payloads.
// Mutations invalidate every key whose page content depends on the changed
// entity so subsequent reads are fresh.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Redis key prefix for cached storefront payloads.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a cached payload stays fresh without an
	// explicit invalidation.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages storefront payload caching in Redis.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Redis client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. Returns false on miss or cache error.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores a payload under the given key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key string, payload []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, payload, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// Invalidate removes the given keys from the cache. Best-effort; a cache
// error only shortens freshness, it never fails the mutation.
func (pc *PageCache) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := pc.client.Del(ctx, pageKeyPrefix+key).Err(); err != nil {
			slog.Warn("page cache invalidate error", "key", key, "error", err)
			continue
		}
		slog.Debug("page cache invalidated", "key", key)
	}
}

// Storefront cache keys. Every mutation invalidates the keys of all pages
// whose content depends on the changed entity.

// HomeKey is the cache key for the homepage payload.
func HomeKey() string { return "home" }

// ProductsKey is the cache key for the full product list.
func ProductsKey() string { return "products" }

// ProductKey is the cache key for a single product detail payload.
func ProductKey(id string) string { return "product:" + id }

// CategoriesKey is the cache key for the category list.
func CategoriesKey() string { return "categories" }

// CategoryKey is the cache key for a category page payload.
func CategoryKey(slug string) string { return "category:" + slug }

// CarouselKey is the cache key for the carousel payload.
func CarouselKey() string { return "carousel" }
