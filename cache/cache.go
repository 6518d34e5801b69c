package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spektr-org/statchart/setting"
)

// ============================================================================
// CACHE — byte cache for upstream responses
// ============================================================================

// Cache stores opaque values under string keys with a per-item TTL.
// A zero TTL means the item never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// New builds the adapter named by cfg.Adapter.
func New(ctx context.Context, cfg setting.Cache) (Cache, error) {
	log := logrus.WithField("component", "cache")
	switch cfg.Adapter {
	case "", "memory":
		log.Infof("🔧 Using memory cache (size=%d)", cfg.Size)
		return NewMemoryCache(cfg.Size)
	case "redis":
		c, err := NewRedisCache(cfg.Conn)
		if err != nil {
			return nil, err
		}
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		log.Infof("🔧 Using redis cache")
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache adapter: %s", cfg.Adapter)
	}
}

// Remember returns the cached value for key, or calls fetch and stores its
// result. The bool reports a cache hit. Cache read and write failures are
// logged and fall through to fetch.
func Remember(ctx context.Context, c Cache, key string, ttl time.Duration, fetch func() ([]byte, error)) ([]byte, bool, error) {
	log := logrus.WithField("component", "cache")
	if c != nil {
		val, ok, err := c.Get(ctx, key)
		if err != nil {
			log.Warnf("⚠️ get %s failed: %v", key, err)
		} else if ok {
			return val, true, nil
		}
	}

	val, err := fetch()
	if err != nil {
		return nil, false, err
	}
	if c != nil {
		if err := c.Put(ctx, key, val, ttl); err != nil {
			log.Warnf("⚠️ put %s failed: %v", key, err)
		}
	}
	return val, false, nil
}
