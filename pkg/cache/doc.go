// Package cache provides generic key-value caching with in-memory and
// Redis backends, plus request coalescing for expensive cache fills.
//
// The in-memory backend is a mutex-guarded map with lazy expiration,
// intended for process-lifetime memoization of immutable values. The
// Redis backend serializes values as JSON and supports key prefixing so
// multiple caches can share one Redis instance.
//
// # Basic Usage
//
//	c := cache.NewMemory[string]()
//	defer c.Close()
//
//	_ = c.Set(ctx, "greeting", "hello", -1) // never expires
//	v, err := c.Get(ctx, "greeting")
//
// # Coalesced Fills
//
// Group deduplicates concurrent fills for the same key:
//
//	var g cache.Group[string]
//
//	v, err := g.GetOrFetch(ctx, c, "expensive", func(ctx context.Context) (string, time.Duration, error) {
//	    return compute(ctx) // runs once even under concurrent callers
//	})
package cache
