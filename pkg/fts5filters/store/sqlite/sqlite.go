// Package sqlite implements store.Store over modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
)

// Store implements store.Store over a *sql.DB opened with the modernc
// pure-Go sqlite driver.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path, enables
// WAL mode for concurrent readers, and ensures the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close implements store.Store.
func (s *Store) Close() error { return s.db.Close() }

// EnsureSchema implements store.Store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS fts5_meta (
	name TEXT NOT NULL,
	date INTEGER NOT NULL,
	PRIMARY KEY (name)
);

CREATE TABLE IF NOT EXISTS fts5_stopwords (
	word TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS fts5_phrases (
	phrase TEXT NOT NULL,
	root TEXT NOT NULL,
	PRIMARY KEY (phrase, root)
);

CREATE TABLE IF NOT EXISTS fts5_synonyms (
	word TEXT NOT NULL,
	expansion TEXT NOT NULL,
	PRIMARY KEY (word, expansion)
);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// MetaDate implements store.Store.
func (s *Store) MetaDate(ctx context.Context, name string) (int64, bool, error) {
	var date int64
	err := s.db.QueryRowContext(ctx, `SELECT date FROM fts5_meta WHERE name = ?`, name).Scan(&date)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return date, true, nil
}

// BumpMeta implements store.Store.
func (s *Store) BumpMeta(ctx context.Context, name string, date int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO fts5_meta (name, date) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET date=excluded.date;
`, name, date)
	return err
}

// LoadStopwords implements store.Store.
func (s *Store) LoadStopwords(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM fts5_stopwords ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// UpsertStopword implements store.Store.
func (s *Store) UpsertStopword(ctx context.Context, word string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO fts5_stopwords (word) VALUES (?)`, word)
	return err
}

// RemoveStopword implements store.Store.
func (s *Store) RemoveStopword(ctx context.Context, word string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM fts5_stopwords WHERE word = ?`, word)
	return err
}

// LoadPhrases implements store.Store.
func (s *Store) LoadPhrases(ctx context.Context) ([]store.PhraseRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT phrase, root FROM fts5_phrases ORDER BY root`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.PhraseRow
	for rows.Next() {
		var r store.PhraseRow
		if err := rows.Scan(&r.Phrase, &r.Root); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertPhrase implements store.Store.
func (s *Store) UpsertPhrase(ctx context.Context, phrase, root string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO fts5_phrases (phrase, root) VALUES (?, ?)
ON CONFLICT(phrase, root) DO UPDATE SET root=excluded.root;
`, phrase, root)
	return err
}

// RemovePhrase implements store.Store.
func (s *Store) RemovePhrase(ctx context.Context, phrase, root string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM fts5_phrases WHERE phrase = ? AND root = ?`, phrase, root)
	return err
}

// LoadSynonyms implements store.Store.
func (s *Store) LoadSynonyms(ctx context.Context) ([]store.SynonymRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, expansion FROM fts5_synonyms ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.SynonymRow
	for rows.Next() {
		var r store.SynonymRow
		if err := rows.Scan(&r.Word, &r.Expansion); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpsertSynonym implements store.Store.
func (s *Store) UpsertSynonym(ctx context.Context, word, expansion string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO fts5_synonyms (word, expansion) VALUES (?, ?)`, word, expansion)
	return err
}

// RemoveSynonym implements store.Store.
func (s *Store) RemoveSynonym(ctx context.Context, word, expansion string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM fts5_synonyms WHERE word = ? AND expansion = ?`, word, expansion)
	return err
}
