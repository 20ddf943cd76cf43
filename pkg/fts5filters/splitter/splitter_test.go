package splitter

import (
	"testing"

	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

type emitted struct {
	flags      token.Flags
	text       string
	start, end int
}

func collect(t *testing.T, input string, flags token.Flags) []emitted {
	t.Helper()
	var got []emitted
	f := New()
	err := f.Tokenize(flags, []byte(input), func(fl token.Flags, b []byte, s, e int) error {
		got = append(got, emitted{fl, string(b), s, e})
		return nil
	})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return got
}

func TestSplitBasic(t *testing.T) {
	got := collect(t, "the Quick fox", 0)
	want := []emitted{
		{0, "the", 0, 3},
		{0, "quick", 4, 9},
		{0, "fox", 10, 13},
		{token.FlagFinal, "", 13, 13},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	got := collect(t, "", 0)
	want := []emitted{{token.FlagFinal, "", 0, 0}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitHyphenKeptMixed(t *testing.T) {
	got := collect(t, "gpt-4 utf-8", 0)
	want := []string{"gpt-4", "utf-8"}
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	for i, w := range want {
		if got[i].text != w {
			t.Fatalf("token %d = %q, want %q", i, got[i].text, w)
		}
	}
}
