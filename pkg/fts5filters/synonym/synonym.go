// Package synonym implements query-time synonym expansion: each token is
// emitted unchanged, then followed by its known expansions marked
// COLOCATED, in the order they were loaded.
package synonym

import (
	"context"

	"github.com/cognicore/fts5filters/pkg/fts5filters/dict"
	"github.com/cognicore/fts5filters/pkg/fts5filters/fctx"
	"github.com/cognicore/fts5filters/pkg/fts5filters/meta"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

// Filter expands synonyms on query-side invocations only. On document
// invocations it is a pass-through, since only the literal terms are
// indexed.
type Filter struct {
	parent token.Filter
	ctx    *fctx.Context[dict.SynonymTable]
}

// New returns a synonym Filter wrapping parent, backed by st for its
// dictionary cache.
func New(parent token.Filter, st store.Store) *Filter {
	reg := meta.New(st, "synonyms")
	return &Filter{
		parent: parent,
		ctx: fctx.New(reg, func(ctx context.Context) (dict.SynonymTable, error) {
			return dict.LoadSynonyms(ctx, st)
		}),
	}
}

// Tokenize implements token.Filter.
func (f *Filter) Tokenize(flags token.Flags, text []byte, emit token.Emit) error {
	if !flags.Has(token.FlagQuery) {
		return f.parent.Tokenize(flags, text, emit)
	}

	if err := f.ctx.Refresh(context.Background()); err != nil {
		return err
	}
	table := f.ctx.Snapshot()

	return f.parent.Tokenize(flags, text, func(fl token.Flags, b []byte, s, e int) error {
		if err := emit(fl, b, s, e); err != nil {
			return err
		}
		if fl.Has(token.FlagFinal) || len(b) == 0 || table == nil {
			return nil
		}
		for _, exp := range table.Lookup(string(b)) {
			if err := emit(fl|token.FlagColocated, []byte(exp), s, e); err != nil {
				return err
			}
		}
		return nil
	})
}
