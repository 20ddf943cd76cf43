// Package splitter provides the root of every tokenizer chain: a plain
// Unicode word-breaker that turns raw input bytes into lowercased,
// byte-offset tokens. It is a reference implementation of the external
// collaborator every other filter in this module wraps, built the same
// way the upstream word-splitter it is modeled on is: letters, numbers
// and hyphens extend a run, anything else ends it.
package splitter

import (
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

// Filter is the root tokenizer stage. It has no parent: it reads directly
// from the text passed to Tokenize.
type Filter struct{}

// New returns a ready-to-use splitter Filter.
func New() *Filter { return &Filter{} }

// Tokenize implements token.Filter. The incoming flags select QUERY vs
// DOCUMENT mode for the whole invocation; they are never copied onto an
// individual token, since COLOCATED lives in that same per-token flags
// byte and shares QUERY's bit value. Every ordinary token is emitted with
// flags 0. It emits one token per maximal run of letters, numbers or
// hyphens, lowercased, with byte offsets into text, and always finishes
// with a single FINAL-flagged empty token so downstream filters with
// buffered state know to flush.
func (f *Filter) Tokenize(flags token.Flags, text []byte, emit token.Emit) error {
	start := -1
	var buf []byte

	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		s, e := start, end
		start = -1
		b := buf
		buf = nil
		return emit(0, b, s, e)
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRune(text[i:])
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			buf = appendLower(buf, r)
		} else {
			if err := flush(i); err != nil {
				return err
			}
		}
		i += size
	}
	if err := flush(len(text)); err != nil {
		return err
	}

	return emit(token.FlagFinal, nil, len(text), len(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-'
}

func appendLower(buf []byte, r rune) []byte {
	return utf8.AppendRune(buf, unicode.ToLower(r))
}
