// Package dict loads the three dictionary tables — stopwords, phrases,
// synonyms — into in-memory lookup structures that the filter packages
// consult on every token. A loader never mutates a live structure; it
// builds a fresh one from a store.Store and hands it back to the caller,
// who is responsible for publishing it (see package fctx).
package dict

import (
	"context"
	"strings"

	"github.com/cognicore/fts5filters/internal/ferr"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
)

// StopwordSet is the set of normalized forms the stopword filter drops.
// Keys are raw byte sequences compared as-is — no casefolding happens
// here, it is the caller's responsibility upstream.
type StopwordSet map[string]struct{}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// LoadStopwords builds a fresh StopwordSet from st.
func LoadStopwords(ctx context.Context, st store.Store) (StopwordSet, error) {
	words, err := st.LoadStopwords(ctx)
	if err != nil {
		return nil, ferr.Wrap(ferr.DBError, "load stopwords", err)
	}
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// PhraseEntry is the value side of the phrase table: the root words a
// matched phrase is replaced by, and the word count of the phrase key
// itself (used only to track MaxWords; the root's own word count is just
// len(Root)).
type PhraseEntry struct {
	Root      []string
	WordCount int
}

// PhraseTable maps a space-joined, post-stemmed phrase key to its
// replacement root. MaxWords is the largest WordCount across every entry;
// it sizes the phrase filter's ring buffer.
type PhraseTable struct {
	entries  map[string]PhraseEntry
	MaxWords int
}

// Lookup returns the entry for key and whether it was found.
func (t *PhraseTable) Lookup(key string) (PhraseEntry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Len returns the number of phrase keys loaded.
func (t *PhraseTable) Len() int { return len(t.entries) }

// LoadPhrases builds a fresh PhraseTable from st.
func LoadPhrases(ctx context.Context, st store.Store) (*PhraseTable, error) {
	rows, err := st.LoadPhrases(ctx)
	if err != nil {
		return nil, ferr.Wrap(ferr.DBError, "load phrases", err)
	}

	t := &PhraseTable{entries: make(map[string]PhraseEntry, len(rows))}
	for _, r := range rows {
		wordCount := wordCount(r.Phrase)
		var root []string
		if r.Root != "" {
			root = strings.Split(r.Root, " ")
		}
		t.entries[r.Phrase] = PhraseEntry{Root: root, WordCount: wordCount}
		if wordCount > t.MaxWords {
			t.MaxWords = wordCount
		}
	}
	return t, nil
}

func wordCount(phrase string) int {
	if phrase == "" {
		return 0
	}
	return strings.Count(phrase, " ") + 1
}

// SynonymTable maps a word to its expansions, in the order they were
// inserted (the underlying store loads ORDER BY word, which groups
// duplicate rows for the same word together in insertion order).
type SynonymTable map[string][]string

// Lookup returns the expansions for word, if any.
func (t SynonymTable) Lookup(word string) []string {
	return t[word]
}

// LoadSynonyms builds a fresh SynonymTable from st.
func LoadSynonyms(ctx context.Context, st store.Store) (SynonymTable, error) {
	rows, err := st.LoadSynonyms(ctx)
	if err != nil {
		return nil, ferr.Wrap(ferr.DBError, "load synonyms", err)
	}
	t := make(SynonymTable)
	for _, r := range rows {
		t[r.Word] = append(t[r.Word], r.Expansion)
	}
	return t, nil
}
