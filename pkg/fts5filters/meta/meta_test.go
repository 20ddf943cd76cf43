package meta

import (
	"context"
	"testing"

	"github.com/cognicore/fts5filters/pkg/fts5filters/store/memstore"
)

func TestNeedsUpdate(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	r := New(st, "stopwords")

	stale, date, err := r.NeedsUpdate(ctx, 0)
	if err != nil {
		t.Fatalf("NeedsUpdate: %v", err)
	}
	if stale {
		t.Fatalf("no row yet: expected not stale, got stale (date=%d)", date)
	}

	if err := r.Bump(ctx, 5); err != nil {
		t.Fatalf("Bump: %v", err)
	}

	cases := []struct {
		name     string
		lastSeen int64
		want     bool
	}{
		{"cold start always stale", 0, true},
		{"equal is not stale", 5, false},
		{"less than is stale", 4, true},
		{"greater than is not stale", 6, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stale, date, err := r.NeedsUpdate(ctx, c.lastSeen)
			if err != nil {
				t.Fatalf("NeedsUpdate: %v", err)
			}
			if stale != c.want {
				t.Fatalf("lastSeen=%d: got stale=%v date=%d, want stale=%v", c.lastSeen, stale, date, c.want)
			}
		})
	}
}

func TestBumpCreatesRow(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	r := New(st, "phrases")

	if err := r.Bump(ctx, 42); err != nil {
		t.Fatalf("Bump: %v", err)
	}
	stale, date, err := r.NeedsUpdate(ctx, 42)
	if err != nil {
		t.Fatalf("NeedsUpdate: %v", err)
	}
	if stale {
		t.Fatalf("expected not stale at matching date")
	}
	if date != 42 {
		t.Fatalf("date = %d, want 42", date)
	}
}
