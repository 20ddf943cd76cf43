package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenEnsuresSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fts5.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema (idempotent call): %v", err)
	}
}

func TestStopwordRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "fts5.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.UpsertStopword(ctx, "the"); err != nil {
		t.Fatalf("UpsertStopword: %v", err)
	}
	if err := s.UpsertStopword(ctx, "and"); err != nil {
		t.Fatalf("UpsertStopword: %v", err)
	}
	if err := s.UpsertStopword(ctx, "the"); err != nil {
		t.Fatalf("UpsertStopword (duplicate): %v", err)
	}

	got, err := s.LoadStopwords(ctx)
	if err != nil {
		t.Fatalf("LoadStopwords: %v", err)
	}
	want := []string{"and", "the"}
	if len(got) != len(want) {
		t.Fatalf("LoadStopwords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LoadStopwords = %v, want %v", got, want)
		}
	}

	if err := s.RemoveStopword(ctx, "and"); err != nil {
		t.Fatalf("RemoveStopword: %v", err)
	}
	got, err = s.LoadStopwords(ctx)
	if err != nil {
		t.Fatalf("LoadStopwords: %v", err)
	}
	if len(got) != 1 || got[0] != "the" {
		t.Fatalf("LoadStopwords after remove = %v, want [the]", got)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "fts5.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.MetaDate(ctx, "stopwords"); err != nil || ok {
		t.Fatalf("MetaDate before bump = (ok=%v, err=%v), want (false, nil)", ok, err)
	}

	if err := s.BumpMeta(ctx, "stopwords", 100); err != nil {
		t.Fatalf("BumpMeta: %v", err)
	}
	date, ok, err := s.MetaDate(ctx, "stopwords")
	if err != nil || !ok || date != 100 {
		t.Fatalf("MetaDate = (%d, %v, %v), want (100, true, nil)", date, ok, err)
	}

	if err := s.BumpMeta(ctx, "stopwords", 200); err != nil {
		t.Fatalf("BumpMeta (update): %v", err)
	}
	date, ok, err = s.MetaDate(ctx, "stopwords")
	if err != nil || !ok || date != 200 {
		t.Fatalf("MetaDate after update = (%d, %v, %v), want (200, true, nil)", date, ok, err)
	}
}
