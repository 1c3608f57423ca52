// Package cache provides the time-bounded payload store shared by all
// fetch categories. One entry per (category, argument-signature) key, a
// single uniform TTL, and no eviction besides expiry: the store may grow for
// the lifetime of the process, which is a stated limitation of the design.
package cache

import (
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/geolens-io/geolens/internal/core/domain"
)

// DefaultTTL is applied when the configured TTL is zero.
const DefaultTTL = 30 * time.Minute

// Cache is an explicitly constructed instance passed to fetchers; there is
// no process-global cache. The janitor goroutine is intentionally not
// started: an expired entry is reported as a miss but stays in memory until
// overwritten or cleared.
type Cache struct {
	inner *ttlcache.Cache[string, any]
	ttl   time.Duration
}

// New creates a cache with a uniform TTL for every entry.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		inner: ttlcache.New(
			ttlcache.WithTTL[string, any](ttl),
			ttlcache.WithDisableTouchOnHit[string, any](),
		),
		ttl: ttl,
	}
}

// Key builds the canonical cache key for a category and its argument
// signature.
func Key(category domain.Category, args ...string) string {
	if len(args) == 0 {
		return string(category)
	}
	return string(category) + ":" + strings.Join(args, ":")
}

// Get returns the stored payload if it is still fresh. An expired entry is
// a miss, never a stale hit, even when no fresher data exists.
func (c *Cache) Get(key string) (any, bool) {
	item := c.inner.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

// Set stores a payload, overwriting any previous entry and resetting its
// stored-at time.
func (c *Cache) Set(key string, payload any) {
	c.inner.Set(key, payload, ttlcache.DefaultTTL)
}

// Clear drops every entry. Tied to the session lifecycle by the caller.
func (c *Cache) Clear() {
	c.inner.DeleteAll()
}

// TTL returns the uniform entry lifetime.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Len returns the number of stored entries.
func (c *Cache) Len() int { return c.inner.Len() }
