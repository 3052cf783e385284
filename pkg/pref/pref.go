// Package pref provides per-user preference persistence for the admin panel.
//
// Preferences are small values keyed by (userID, key) — a collapsed sidebar
// section, a preferred list density. The Store interface is the persistence
// contract; Cache layers optimistic local writes on top so the UI never
// waits on the backend:
//
//	cache := pref.NewCache(store)
//	cache.Set(ctx, "u1", "sidebar:orders", true) // applied locally at once
//	v, _ := cache.Get(ctx, "u1", "sidebar:orders")
//
// A failed persistence reverts the optimistic entry and logs; readers
// tolerate the transient staleness in between.
package pref

import (
	"context"
	"log/slog"
	"sync"
)

// Store is the persistence contract for user preferences.
// Get returns nil for an unknown key, not an error.
type Store interface {
	Get(ctx context.Context, userID, key string) (any, error)
	Set(ctx context.Context, userID, key string, value any) error
}

// MemoryStore is an in-memory Store, suitable for tests and single-process
// deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, userID, key string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[userID+"\x00"+key], nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, userID, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[userID+"\x00"+key] = value
	return nil
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used when persistence fails.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

// Synchronous makes Set persist before returning instead of in the
// background. Mostly useful in tests.
func Synchronous() CacheOption {
	return func(c *Cache) {
		c.synchronous = true
	}
}

// cacheEntry remembers the previous value so a failed persistence can
// revert the optimistic write.
type cacheEntry struct {
	value    any
	hasValue bool

	// seq identifies the write that produced this entry, so a failed
	// persistence only reverts its own value, never a newer one.
	seq uint64
}

// Cache is an optimistic write-through layer over a Store.
//
// Set applies the value locally first, then persists. When persistence
// fails the local entry reverts to its prior state and the failure is
// logged; there is no retry.
type Cache struct {
	store  Store
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]cacheEntry
	seq     uint64

	synchronous bool
	pending     sync.WaitGroup
}

// NewCache creates a cache over the given store.
func NewCache(store Store, opts ...CacheOption) *Cache {
	c := &Cache{
		store:   store,
		entries: make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func cacheKey(userID, key string) string {
	return userID + "\x00" + key
}

// Get returns the locally cached value when present, falling back to the
// store. A store miss returns nil with no error.
func (c *Cache) Get(ctx context.Context, userID, key string) (any, error) {
	ck := cacheKey(userID, key)

	c.mu.Lock()
	if entry, ok := c.entries[ck]; ok && entry.hasValue {
		c.mu.Unlock()
		return entry.value, nil
	}
	c.mu.Unlock()

	value, err := c.store.Get(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if value != nil {
		c.mu.Lock()
		c.entries[ck] = cacheEntry{value: value, hasValue: true}
		c.mu.Unlock()
	}
	return value, nil
}

// Set applies the value optimistically and persists it.
func (c *Cache) Set(ctx context.Context, userID, key string, value any) {
	ck := cacheKey(userID, key)

	c.mu.Lock()
	prev := c.entries[ck]
	c.seq++
	seq := c.seq
	c.entries[ck] = cacheEntry{value: value, hasValue: true, seq: seq}
	c.mu.Unlock()

	persist := func() {
		if err := c.store.Set(ctx, userID, key, value); err != nil {
			c.logger.Warn("preference persistence failed, reverting optimistic write",
				"user", userID, "key", key, "error", err)
			c.mu.Lock()
			// Only revert our own write; a newer one supersedes the revert.
			if current := c.entries[ck]; current.seq == seq {
				if prev.hasValue {
					c.entries[ck] = prev
				} else {
					delete(c.entries, ck)
				}
			}
			c.mu.Unlock()
		}
	}

	if c.synchronous {
		persist()
		return
	}

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		persist()
	}()
}

// Flush waits for in-flight persistence to complete.
func (c *Cache) Flush() {
	c.pending.Wait()
}
