// Package stemmer implements the morphological stemming filter. It wraps
// the external kljensen/snowball stemmer, dispatching each in-range token
// to a configured sequence of languages and keeping the first one whose
// output changes the token's length.
package stemmer

import (
	"github.com/kljensen/snowball"

	"github.com/cognicore/fts5filters/internal/ferr"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

const (
	minStemLen = 3
	maxStemLen = 64
)

// DefaultLanguages is used when a Filter is created with no language
// arguments.
var DefaultLanguages = []string{"english"}

// Filter applies Snowball stemming to tokens from its parent.
type Filter struct {
	parent    token.Filter
	languages []string
}

// New returns a stemmer Filter wrapping parent, trying each of languages
// in order for every token. An unrecognized language name is rejected at
// construction time, not at first use.
func New(parent token.Filter, languages []string) (*Filter, error) {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	for _, lang := range languages {
		if !isKnownLanguage(lang) {
			return nil, ferr.Wrap(ferr.InvalidArg, "unknown stemmer language "+lang, ferr.ErrUnknownLang)
		}
	}
	return &Filter{parent: parent, languages: languages}, nil
}

// Tokenize implements token.Filter.
func (f *Filter) Tokenize(flags token.Flags, text []byte, emit token.Emit) error {
	return f.parent.Tokenize(flags, text, func(fl token.Flags, b []byte, s, e int) error {
		if fl.Has(token.FlagFinal) {
			return emit(fl, b, s, e)
		}
		return emit(fl, f.stem(b), s, e)
	})
}

// stem applies the configured languages in order, keeping the first
// result whose length differs from the input. This exact heuristic —
// short-circuit on the first length-changing stemmer, not the "best"
// one — is behaviorally load-bearing for index compatibility and must
// not be replaced with a more sophisticated selection rule.
func (f *Filter) stem(word []byte) []byte {
	n := len(word)
	if n <= minStemLen || n > maxStemLen {
		return word
	}

	s := string(word)
	for _, lang := range f.languages {
		stemmed, err := snowball.Stem(s, lang, true)
		if err != nil {
			continue
		}
		if len(stemmed) != n {
			return []byte(stemmed)
		}
	}
	return word
}

var knownLanguages = map[string]struct{}{
	"danish":     {},
	"dutch":      {},
	"english":    {},
	"finnish":    {},
	"french":     {},
	"german":     {},
	"hungarian":  {},
	"italian":    {},
	"norwegian":  {},
	"portuguese": {},
	"romanian":   {},
	"russian":    {},
	"spanish":    {},
	"swedish":    {},
	"turkish":    {},
}

func isKnownLanguage(lang string) bool {
	_, ok := knownLanguages[lang]
	return ok
}
