package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryItem struct {
	val     []byte
	expires time.Time
}

// MemoryCache is an in-process LRU with per-item expiry.
type MemoryCache struct {
	lru *lru.Cache[string, memoryItem]
	now func() time.Time
}

// NewMemoryCache keeps at most size items; size <= 0 means 1024.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = 1024
	}
	l, err := lru.New[string, memoryItem](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{lru: l, now: time.Now}, nil
}

// Get implements Cache. Expired items are evicted on read.
func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !item.expires.IsZero() && !m.now().Before(item.expires) {
		m.lru.Remove(key)
		return nil, false, nil
	}
	return item.val, true, nil
}

// Put implements Cache.
func (m *MemoryCache) Put(_ context.Context, key string, val []byte, ttl time.Duration) error {
	item := memoryItem{val: append([]byte(nil), val...)}
	if ttl > 0 {
		item.expires = m.now().Add(ttl)
	}
	m.lru.Add(key, item)
	return nil
}

// Delete implements Cache.
func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

// Len returns the number of stored items, expired ones included.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
