// Package memstore implements store.Store in memory, for tests and for
// callers that don't need durability across process restarts.
package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
)

// Store is a sync.RWMutex-guarded in-memory implementation of store.Store.
type Store struct {
	mu sync.RWMutex

	meta      map[string]int64
	stopwords map[string]struct{}
	phrases   []store.PhraseRow
	synonyms  []store.SynonymRow
}

// New returns an empty Store, ready for use.
func New() *Store {
	return &Store{
		meta:      make(map[string]int64),
		stopwords: make(map[string]struct{}),
	}
}

// Close implements store.Store. It is a no-op: there is nothing to release.
func (s *Store) Close() error { return nil }

// EnsureSchema implements store.Store. It is a no-op: the maps and slices
// are already initialized by New.
func (s *Store) EnsureSchema(ctx context.Context) error { return nil }

// MetaDate implements store.Store.
func (s *Store) MetaDate(ctx context.Context, name string) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	date, ok := s.meta[name]
	return date, ok, nil
}

// BumpMeta implements store.Store.
func (s *Store) BumpMeta(ctx context.Context, name string, date int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta[name] = date
	return nil
}

// LoadStopwords implements store.Store.
func (s *Store) LoadStopwords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.stopwords))
	for w := range s.stopwords {
		out = append(out, w)
	}
	sortStrings(out)
	return out, nil
}

// UpsertStopword implements store.Store.
func (s *Store) UpsertStopword(ctx context.Context, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopwords[word] = struct{}{}
	return nil
}

// RemoveStopword implements store.Store.
func (s *Store) RemoveStopword(ctx context.Context, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stopwords, word)
	return nil
}

// LoadPhrases implements store.Store.
func (s *Store) LoadPhrases(ctx context.Context) ([]store.PhraseRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.PhraseRow, len(s.phrases))
	copy(out, s.phrases)
	sortPhrases(out)
	return out, nil
}

// UpsertPhrase implements store.Store.
func (s *Store) UpsertPhrase(ctx context.Context, phrase, root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.phrases {
		if r.Phrase == phrase && r.Root == root {
			s.phrases[i].Root = root
			return nil
		}
	}
	s.phrases = append(s.phrases, store.PhraseRow{Phrase: phrase, Root: root})
	return nil
}

// RemovePhrase implements store.Store.
func (s *Store) RemovePhrase(ctx context.Context, phrase, root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.phrases[:0]
	for _, r := range s.phrases {
		if r.Phrase == phrase && r.Root == root {
			continue
		}
		out = append(out, r)
	}
	s.phrases = out
	return nil
}

// LoadSynonyms implements store.Store.
func (s *Store) LoadSynonyms(ctx context.Context) ([]store.SynonymRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.SynonymRow, len(s.synonyms))
	copy(out, s.synonyms)
	sortSynonyms(out)
	return out, nil
}

// UpsertSynonym implements store.Store.
func (s *Store) UpsertSynonym(ctx context.Context, word, expansion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.synonyms {
		if r.Word == word && r.Expansion == expansion {
			return nil
		}
	}
	s.synonyms = append(s.synonyms, store.SynonymRow{Word: word, Expansion: expansion})
	return nil
}

// RemoveSynonym implements store.Store.
func (s *Store) RemoveSynonym(ctx context.Context, word, expansion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.synonyms[:0]
	for _, r := range s.synonyms {
		if r.Word == word && r.Expansion == expansion {
			continue
		}
		out = append(out, r)
	}
	s.synonyms = out
	return nil
}
