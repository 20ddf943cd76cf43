// Package phrase implements the sliding-window, longest-match phrase
// collapsing filter: consecutive tokens matching a registered phrase key
// are replaced by that phrase's root, preserving the original span.
package phrase

import (
	"context"
	"sync"

	"github.com/cognicore/fts5filters/pkg/fts5filters/dict"
	"github.com/cognicore/fts5filters/pkg/fts5filters/fctx"
	"github.com/cognicore/fts5filters/pkg/fts5filters/meta"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

// Filter collapses multi-word phrases from its parent's output.
//
// The scratch ring buffer is guarded by mu for the full duration of one
// Tokenize call. MaxWords can change between calls when the phrase table
// is edited, so a per-invocation allocation sized from the cached value
// would need to be recomputed under the same lock anyway; a mutex around
// the whole invocation is no more costly and avoids a second place that
// needs to agree with the cache on sizing.
type Filter struct {
	parent token.Filter
	ctx    *fctx.Context[*dict.PhraseTable]

	mu   sync.Mutex
	ring ring
}

// New returns a phrase Filter wrapping parent, backed by st for its
// dictionary cache.
func New(parent token.Filter, st store.Store) *Filter {
	reg := meta.New(st, "phrases")
	return &Filter{
		parent: parent,
		ctx: fctx.New(reg, func(ctx context.Context) (*dict.PhraseTable, error) {
			return dict.LoadPhrases(ctx, st)
		}),
	}
}

// Tokenize implements token.Filter.
func (f *Filter) Tokenize(flags token.Flags, text []byte, emit token.Emit) error {
	if err := f.ctx.Refresh(context.Background()); err != nil {
		return err
	}
	table := f.ctx.Snapshot()

	f.mu.Lock()
	defer f.mu.Unlock()

	maxWords := 0
	if table != nil {
		maxWords = (*table).MaxWords
	}
	f.ring.ensureCapacity(maxWords + 1)

	return f.parent.Tokenize(flags, text, func(fl token.Flags, b []byte, s, e int) error {
		if fl.Has(token.FlagFinal) {
			return f.drainFinal(table, maxWords, emit)
		}

		f.ring.push(bufToken{flags: uint8(fl), text: append([]byte(nil), b...), start: s, end: e})

		if table != nil && maxWords > 0 && f.ring.len() >= maxWords {
			if matched, err := f.tryMatch(*table, maxWords, emit); err != nil {
				return err
			} else if matched {
				return nil
			}
		}
		if f.ring.len() > maxWords {
			old := f.ring.popOldest()
			return emit(token.Flags(old.flags), old.text, old.start, old.end)
		}
		return nil
	})
}

// drainFinal empties the buffer at end of stream. Unlike the per-push
// path, it is not gated on the buffer reaching maxWords: once no further
// tokens can arrive, a shorter registered phrase that never filled the
// window still deserves a match, so each round retries against whatever
// length the buffer actually holds. A miss evicts and emits the oldest
// token and the window shrinks by one for the next round. The incoming
// FINAL sentinel itself is consumed here, not forwarded.
func (f *Filter) drainFinal(table *dict.PhraseTable, maxWords int, emit token.Emit) error {
	for f.ring.len() > 0 {
		if table != nil && maxWords > 0 {
			matched, err := f.tryMatch(*table, f.ring.len(), emit)
			if err != nil {
				return err
			}
			if matched {
				continue
			}
		}
		old := f.ring.popOldest()
		if err := emit(token.Flags(old.flags), old.text, old.start, old.end); err != nil {
			return err
		}
	}
	return nil
}

// tryMatch searches the current window of the given size, longest suffix
// first, for a registered phrase key. On a hit it captures the matched
// span, shrinks the buffer, flushes the remainder, and emits the
// phrase's root words in place of the match. window is the per-push
// path's maxWords, or, during the final drain, the buffer's current
// (possibly shorter) length.
func (f *Filter) tryMatch(table *dict.PhraseTable, window int, emit token.Emit) (bool, error) {
	words := f.ring.window(window)

	for size := window; size >= 1; size-- {
		key := joinWindow(words[window-size:])
		entry, ok := table.Lookup(key)
		if !ok {
			continue
		}

		newest := f.ring.buf[f.ring.head(0)]
		first := f.ring.buf[f.ring.head(size - 1)]
		start, end := first.start, newest.end
		flags := token.Flags(newest.flags)

		f.ring.dropNewest(size)

		if err := f.flush(emit); err != nil {
			return true, err
		}
		for _, w := range entry.Root {
			if err := emit(flags, []byte(w), start, end); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	return false, nil
}

// flush emits every remaining buffered token in order, oldest first, with
// the flags it was admitted with, and empties the buffer.
func (f *Filter) flush(emit token.Emit) error {
	n := f.ring.len()
	for i := 0; i < n; i++ {
		t := f.ring.buf[f.ring.tail(i)]
		if err := emit(token.Flags(t.flags), t.text, t.start, t.end); err != nil {
			f.ring.dropNewest(f.ring.len())
			return err
		}
	}
	f.ring.dropNewest(f.ring.len())
	return nil
}
