package usecase

import (
	"fmt"
	"sync"
)

// requestCache memoizes gateway lookups for the lifetime of a single
// planning request. Both the value and the error of the first fetch are
// stored, so a route that came back empty or failed is never re-fetched
// while the combinatorial loop revisits it from another triple.
//
// The cache is safe for concurrent use by the assembly workers. Fetches for
// distinct keys run in parallel; concurrent callers for the same key share
// a single fetch.
type requestCache[T any] struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry[T]
}

type cacheEntry[T any] struct {
	once  sync.Once
	value T
	err   error
}

func newRequestCache[T any]() *requestCache[T] {
	return &requestCache[T]{entries: make(map[string]*cacheEntry[T])}
}

// GetOrFetch returns the memoized result for key, invoking fetch exactly
// once per key.
func (c *requestCache[T]) GetOrFetch(key string, fetch func() (T, error)) (T, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry[T]{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.value, e.err = fetch()
	})
	return e.value, e.err
}

// Len reports the number of memoized entries.
func (c *requestCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// flightKey identifies a one-way flight lookup.
func flightKey(origin, destination, date string) string {
	return fmt.Sprintf("%s-%s-%s", origin, destination, date)
}

// groundKey identifies a ground transport lookup. The preferred time is part
// of the key because schedule-aware modes return different options for
// different arrival hints.
func groundKey(from, to, date, preferredTime string) string {
	return fmt.Sprintf("%s|%s|%s|%s", from, to, date, preferredTime)
}
