// Package fctx implements the per-filter process-wide state every cached
// filter (stopword, phrase, synonym) shares: a dictionary
// snapshot published by atomic pointer swap, and a staleness cursor
// checked against the meta registry on every tokenize call.
package fctx

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/fts5filters/internal/ferr"
	"github.com/cognicore/fts5filters/pkg/fts5filters/meta"
)

// Loader builds a fresh snapshot of type T from scratch. It must not
// mutate any previously returned snapshot.
type Loader[T any] func(ctx context.Context) (T, error)

// Context holds one filter's shared cache and staleness cursor. It is
// safe for concurrent use: Snapshot performs a lock-free read of the
// current cache, and Refresh publishes a fully built snapshot with one
// atomic store, so concurrent tokenize calls either see the old snapshot
// or a newly published one, never a partial one. Refresh takes no lock:
// concurrent calls that both observe a stale cursor each rebuild and
// publish, and the last store wins.
type Context[T any] struct {
	id       ulid.ULID
	reg      *meta.Registry
	load     Loader[T]
	lastSeen atomic.Int64
	snapshot atomic.Pointer[T]
}

// New creates a context whose cache is tracked by reg and populated by
// load. The cache starts empty; the first call to Refresh performs the
// initial load (lastSeen begins at 0, the cold-start sentinel).
func New[T any](reg *meta.Registry, load Loader[T]) *Context[T] {
	return &Context[T]{
		id:   ulid.Make(),
		reg:  reg,
		load: load,
	}
}

// ID returns the instance identifier minted when this context was
// created, for inclusion in rebuild log lines.
func (c *Context[T]) ID() ulid.ULID { return c.id }

// Snapshot returns the current cache. It may be nil if Refresh has never
// succeeded.
func (c *Context[T]) Snapshot() *T { return c.snapshot.Load() }

// Refresh checks the meta registry and rebuilds the cache if stale, or
// unconditionally while lastSeen is still 0 (including when the meta row
// does not exist yet, in which case lastSeen stays 0 and the next call
// rebuilds again). On a rebuild failure the previous snapshot is retained
// and lastSeen is not advanced, so the next call retries.
func (c *Context[T]) Refresh(ctx context.Context) error {
	lastSeen := c.lastSeen.Load()
	stale, date, err := c.reg.NeedsUpdate(ctx, lastSeen)
	if err != nil {
		return err
	}
	if !stale && lastSeen != 0 {
		return nil
	}

	fresh, err := c.load(ctx)
	if err != nil {
		var fe *ferr.Error
		if errors.As(err, &fe) {
			return ferr.Wrap(fe.Kind, "rebuild cache", err)
		}
		return ferr.Wrap(ferr.NOMEM, "rebuild cache", err)
	}

	log.Printf("fctx %s: rebuilt cache, lastSeen %d -> %d", c.id, c.lastSeen.Load(), date)
	c.snapshot.Store(&fresh)
	c.lastSeen.Store(date)
	return nil
}
