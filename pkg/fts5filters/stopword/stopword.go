// Package stopword implements the stopword-removal filter: tokens whose
// normalized form appears in the fts5_stopwords table are dropped from
// the stream, everything else passes through unchanged.
package stopword

import (
	"context"

	"github.com/cognicore/fts5filters/pkg/fts5filters/dict"
	"github.com/cognicore/fts5filters/pkg/fts5filters/fctx"
	"github.com/cognicore/fts5filters/pkg/fts5filters/meta"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

// Filter drops stopwords from its parent's output.
type Filter struct {
	parent token.Filter
	ctx    *fctx.Context[dict.StopwordSet]
}

// New returns a stopword Filter wrapping parent, backed by st for its
// dictionary cache.
func New(parent token.Filter, st store.Store) *Filter {
	reg := meta.New(st, "stopwords")
	return &Filter{
		parent: parent,
		ctx: fctx.New(reg, func(ctx context.Context) (dict.StopwordSet, error) {
			return dict.LoadStopwords(ctx, st)
		}),
	}
}

// Tokenize implements token.Filter.
func (f *Filter) Tokenize(flags token.Flags, text []byte, emit token.Emit) error {
	if err := f.ctx.Refresh(context.Background()); err != nil {
		return err
	}
	set := f.ctx.Snapshot()

	return f.parent.Tokenize(flags, text, func(fl token.Flags, b []byte, s, e int) error {
		if fl.Has(token.FlagFinal) || len(b) == 0 {
			return emit(fl, b, s, e)
		}
		if set != nil && set.Contains(string(b)) {
			return nil
		}
		return emit(fl, b, s, e)
	})
}
