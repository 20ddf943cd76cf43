package stemmer

import (
	"testing"

	"github.com/cognicore/fts5filters/pkg/fts5filters/splitter"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

func tokenizeAll(t *testing.T, f token.Filter, input string) []string {
	t.Helper()
	var got []string
	err := f.Tokenize(0, []byte(input), func(fl token.Flags, b []byte, s, e int) error {
		if fl.Has(token.FlagFinal) {
			return nil
		}
		got = append(got, string(b))
		return nil
	})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return got
}

func TestNewRejectsUnknownLanguage(t *testing.T) {
	if _, err := New(splitter.New(), []string{"klingon"}); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestNewDefaultsToEnglish(t *testing.T) {
	f, err := New(splitter.New(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(f.languages) != 1 || f.languages[0] != "english" {
		t.Fatalf("languages = %v, want [english]", f.languages)
	}
}

func TestShortTokensPassThrough(t *testing.T) {
	f, err := New(splitter.New(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := tokenizeAll(t, f, "it is a fox")
	want := []string{"it", "is", "a", "fox"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLongTokenStemmed(t *testing.T) {
	f, err := New(splitter.New(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := tokenizeAll(t, f, "running")
	if len(got) != 1 {
		t.Fatalf("got %v, want one token", got)
	}
	if got[0] == "running" {
		t.Fatalf("expected stemmed form, got unchanged %q", got[0])
	}
}
