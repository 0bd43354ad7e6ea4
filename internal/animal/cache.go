package animal

import (
	"context"
	"sync"
)

// Cached holds one snapshot of another DataSource. The snapshot is taken by
// Load (typically at startup) or lazily by the first TryRead, and is
// replaced only after Invalidate. A failed load is cached too, so callers
// keep falling back until the snapshot is invalidated.
type Cached struct {
	src DataSource

	mu     sync.RWMutex
	loaded bool
	table  *Table
	err    error
}

// NewCached wraps src.
func NewCached(src DataSource) *Cached {
	return &Cached{src: src}
}

// Load reads src now and stores the outcome. It returns the read error so
// the caller can report it; the error is also what TryRead will return.
// A failure while ctx is cancelled or expired is returned but not stored.
func (c *Cached) Load(ctx context.Context) error {
	_, err := c.load(ctx)
	return err
}

// TryRead returns the stored snapshot, loading it first if needed.
func (c *Cached) TryRead(ctx context.Context) (*Table, error) {
	c.mu.RLock()
	loaded, table, err := c.loaded, c.table, c.err
	c.mu.RUnlock()

	if loaded {
		return table, err
	}
	return c.load(ctx)
}

func (c *Cached) load(ctx context.Context) (*Table, error) {
	table, err := c.src.TryRead(ctx)
	if err != nil && ctx.Err() != nil {
		// The caller gave up; that says nothing about the source.
		return table, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.table, c.err, c.loaded = table, err, true
	return table, err
}

// Invalidate drops the snapshot. The next TryRead reloads from src.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table, c.err, c.loaded = nil, nil, false
}

// Loaded reports whether a snapshot is currently held.
func (c *Cached) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
