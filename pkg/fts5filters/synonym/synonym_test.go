package synonym

import (
	"context"
	"testing"

	"github.com/cognicore/fts5filters/pkg/fts5filters/splitter"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store/memstore"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

type emitted struct {
	flags      token.Flags
	text       string
	start, end int
}

func run(t *testing.T, f *Filter, input string, flags token.Flags) []emitted {
	t.Helper()
	var got []emitted
	err := f.Tokenize(flags, []byte(input), func(fl token.Flags, b []byte, s, e int) error {
		if fl.Has(token.FlagFinal) {
			return nil
		}
		got = append(got, emitted{fl, string(b), s, e})
		return nil
	})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return got
}

func TestSynonymExpandsOnQuery(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	st.UpsertSynonym(ctx, "quick", "fast")
	st.UpsertSynonym(ctx, "quick", "speedy")
	st.BumpMeta(ctx, "synonyms", 1)

	f := New(splitter.New(), st)
	got := run(t, f, "the quick fox", token.FlagQuery)

	want := []emitted{
		{0, "the", 0, 3},
		{0, "quick", 4, 9},
		{token.FlagColocated, "fast", 4, 9},
		{token.FlagColocated, "speedy", 4, 9},
		{0, "fox", 10, 13},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSynonymPassThroughOnDocument(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	st.UpsertSynonym(ctx, "quick", "fast")
	st.BumpMeta(ctx, "synonyms", 1)

	f := New(splitter.New(), st)
	got := run(t, f, "quick fox", 0)

	want := []emitted{
		{0, "quick", 0, 5},
		{0, "fox", 6, 9},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
