// Package meta tracks dictionary freshness for the filters that cache a
// dictionary snapshot in memory (stopword, phrase, synonym). A filter
// context calls NeedsUpdate before using its cache; when a loader mutates
// a dictionary table it calls Bump so that every other context's next
// NeedsUpdate check observes the change.
package meta

import (
	"context"

	"github.com/cognicore/fts5filters/internal/ferr"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
)

// Registry answers freshness questions against a single named row of the
// fts5_meta table.
type Registry struct {
	st   store.Store
	name string
}

// New returns a Registry tracking the freshness row identified by name
// (for example "stopwords", "phrases" or "synonyms").
func New(st store.Store, name string) *Registry {
	return &Registry{st: st, name: name}
}

// NeedsUpdate reports whether lastSeen is stale against the stored date,
// and returns the current stored date alongside the verdict.
//
// A lastSeen of 0 always reports stale: it is the sentinel a context uses
// before it has ever loaded a snapshot. Otherwise the comparison is a
// strict less-than against the stored date — equal values are not stale,
// matching how a context records lastSeen as exactly the date it observed
// on its most recent successful load. A row that does not exist yet is
// never stale (there is nothing to refresh against).
func (r *Registry) NeedsUpdate(ctx context.Context, lastSeen int64) (stale bool, date int64, err error) {
	date, ok, err := r.st.MetaDate(ctx, r.name)
	if err != nil {
		return false, 0, ferr.Wrap(ferr.DBError, "read meta date", err)
	}
	if !ok {
		return false, 0, nil
	}
	if lastSeen == 0 {
		return true, date, nil
	}
	return lastSeen < date, date, nil
}

// Bump records date as the freshness marker for this registry's row,
// creating it if absent. Callers invoke this after committing a change to
// the dictionary table the row tracks.
func (r *Registry) Bump(ctx context.Context, date int64) error {
	if err := r.st.BumpMeta(ctx, r.name, date); err != nil {
		return ferr.Wrap(ferr.DBError, "bump meta date", err)
	}
	return nil
}
