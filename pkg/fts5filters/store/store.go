// Package store defines the persistence surface the dictionary loaders
// and the meta registry need: fts5_meta, fts5_stopwords, fts5_phrases and
// fts5_synonyms behind a Store interface so filters can run against either
// a real database (store/sqlite) or an in-memory double (store/memstore)
// in tests.
package store

import "context"

// PhraseRow is one row of the phrase dictionary: phrase is the space-joined
// post-stemmed key, root is the space-joined replacement.
type PhraseRow struct {
	Phrase string
	Root   string
}

// SynonymRow is one row of the synonym dictionary.
type SynonymRow struct {
	Word      string
	Expansion string
}

// Store is the persistence surface consumed by package meta and package
// dict. Implementations must create their tables idempotently (EnsureSchema)
// and must never let a failed load mutate the caller's existing cache —
// loaders, not Store, own that guarantee, but Store's load methods must
// return a clear error rather than partial results when a query fails.
type Store interface {
	// EnsureSchema idempotently creates fts5_meta and the three dictionary
	// tables. Safe to call repeatedly and concurrently.
	EnsureSchema(ctx context.Context) error

	// MetaDate returns the stored date for name and true, or (0, false) if
	// no row exists for name.
	MetaDate(ctx context.Context, name string) (date int64, ok bool, err error)

	// BumpMeta sets (or inserts) the date for name. Callers mutate a
	// dictionary table and then call BumpMeta so that readers' cached
	// last_seen_date compares stale on their next refresh check.
	BumpMeta(ctx context.Context, name string, date int64) error

	// LoadStopwords returns every row of fts5_stopwords.
	LoadStopwords(ctx context.Context) ([]string, error)
	// UpsertStopword adds a stopword if not already present.
	UpsertStopword(ctx context.Context, word string) error
	// RemoveStopword deletes a stopword if present.
	RemoveStopword(ctx context.Context, word string) error

	// LoadPhrases returns every row of fts5_phrases, ordered by root.
	LoadPhrases(ctx context.Context) ([]PhraseRow, error)
	// UpsertPhrase adds a phrase/root pair if not already present. Rows for
	// the same phrase with a different root are kept, not replaced.
	UpsertPhrase(ctx context.Context, phrase, root string) error
	// RemovePhrase deletes a phrase/root pair.
	RemovePhrase(ctx context.Context, phrase, root string) error

	// LoadSynonyms returns every row of fts5_synonyms, ordered by word so
	// expansions group together in insertion order per word.
	LoadSynonyms(ctx context.Context) ([]SynonymRow, error)
	// UpsertSynonym adds a word/expansion pair if not already present.
	UpsertSynonym(ctx context.Context, word, expansion string) error
	// RemoveSynonym deletes a word/expansion pair.
	RemoveSynonym(ctx context.Context, word, expansion string) error

	Close() error
}
