package cache

import (
	"context"
	"sync"
	"time"
)

type memEntry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
}

func (e memEntry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-memory cache backed by a mutex-guarded map.
//
// Expired entries are dropped lazily on access; there is no background
// sweeper. By default entries never expire, which suits memoization of
// immutable, fingerprint-keyed values for the lifetime of the process.
type Memory[V any] struct {
	items      map[string]memEntry[V]
	defaultTTL time.Duration
	maxEntries int
	mu         sync.Mutex
	closed     bool
}

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	defaultTTL time.Duration
	maxEntries int
}

// WithDefaultTTL sets the expiration applied when Set is called with a
// zero TTL. The default is no expiration.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(c *memoryConfig) {
		c.defaultTTL = d
	}
}

// WithMaxEntries caps the number of entries. When the cap is reached,
// an arbitrary entry is dropped to make room. Zero means unlimited.
func WithMaxEntries(n int) MemoryOption {
	return func(c *memoryConfig) {
		c.maxEntries = n
	}
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[*bundle.Bundle]()
//	defer c.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	cfg := &memoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Memory[V]{
		items:      make(map[string]memEntry[V]),
		defaultTTL: cfg.defaultTTL,
		maxEntries: cfg.maxEntries,
	}
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V

	e, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	if e.expired(time.Now()) {
		delete(m.items, key)
		return zero, ErrNotFound
	}

	return e.value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if _, exists := m.items[key]; !exists && m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		m.dropOne()
	}

	m.items[key] = memEntry[V]{value: value, expiresAt: expiresAt}

	return nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.items, key)
	return nil
}

// Has checks whether a key exists and has not expired.
func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return false, nil
	}
	if e.expired(time.Now()) {
		delete(m.items, key)
		return false, nil
	}

	return true, nil
}

// Clear removes all entries from the cache.
func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items = make(map[string]memEntry[V])
	return nil
}

// Close marks the cache as closed. Reads continue to work so that
// in-flight lookups drain cleanly; writes return ErrClosed.
// Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// dropOne evicts an arbitrary entry, preferring one that has already expired.
// Caller must hold the mutex.
func (m *Memory[V]) dropOne() {
	now := time.Now()
	for key, e := range m.items {
		if e.expired(now) {
			delete(m.items, key)
			return
		}
	}
	for key := range m.items {
		delete(m.items, key)
		return
	}
}

var _ Cache[any] = (*Memory[any])(nil)
