package rag

import (
	"context"
	"sync"

	"github.com/askweb/askweb"
	"golang.org/x/sync/singleflight"
)

// Ensure Cache implements askweb.IndexSource at compile time.
var _ askweb.IndexSource = (*Cache)(nil)

// Cache holds at most one index for the life of the process. The first
// caller triggers a build; concurrent callers arriving during the build
// share its result rather than starting their own. Ingesting documents
// does not invalidate the cache; staleness is resolved through the
// explicit Rebuild action.
type Cache struct {
	builder IndexBuilder

	group singleflight.Group

	mu    sync.RWMutex
	index askweb.Index
}

// NewCache creates a Cache around the given builder.
func NewCache(builder IndexBuilder) *Cache {
	return &Cache{builder: builder}
}

// Index returns the cached index, building it on first use.
func (c *Cache) Index(ctx context.Context) (askweb.Index, error) {
	c.mu.RLock()
	idx := c.index
	c.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}

	v, err, _ := c.group.Do("build", func() (any, error) {
		// Re-check: a concurrent Rebuild may have populated the cache
		// between the fast path and entering the flight.
		c.mu.RLock()
		idx := c.index
		c.mu.RUnlock()
		if idx != nil {
			return idx, nil
		}
		return c.build(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(askweb.Index), nil
}

// Rebuild builds a fresh index from the current store state and swaps it
// in. Readers keep seeing the previous index until the new one is
// complete; a partially built index is never observable.
func (c *Cache) Rebuild(ctx context.Context) (askweb.Index, error) {
	v, err, _ := c.group.Do("build", func() (any, error) {
		return c.build(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(askweb.Index), nil
}

func (c *Cache) build(ctx context.Context) (askweb.Index, error) {
	idx, err := c.builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.index = idx
	c.mu.Unlock()
	return idx, nil
}
