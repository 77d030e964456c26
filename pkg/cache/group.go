package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Group combines a Cache with request coalescing: concurrent lookups for
// the same key before the first resolves share a single execution of the
// fill function. Each Group owns its own coalescing state, so independent
// caches never contend on a shared process-wide group.
type Group[V any] struct {
	sf singleflight.Group
}

type groupResult[V any] struct {
	val V
	ttl time.Duration
}

// GetOrFetch retrieves a value from the cache, or calls fn to compute it
// on a miss. At most one invocation of fn is in flight per key; callers
// that arrive while it runs receive the same result.
//
// fn returns the value, a TTL for caching, and an error. On error nothing
// is cached, so a later call for the same key runs fn again.
func (g *Group[V]) GetOrFetch(ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	// Fast path: cache hit.
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := g.sf.Do(key, func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return groupResult[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := v.(groupResult[V])

	// Best-effort write; a failed Set only costs a refetch later.
	_ = c.Set(ctx, key, r.val, r.ttl)

	return r.val, nil
}

// Forget removes any recorded in-flight state for key, so the next
// GetOrFetch runs fn even if an earlier call is still pending.
func (g *Group[V]) Forget(key string) {
	g.sf.Forget(key)
}
