package memstore

import (
	"sort"

	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
)

func sortStrings(s []string) {
	sort.Strings(s)
}

func sortPhrases(rows []store.PhraseRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Root < rows[j].Root })
}

func sortSynonyms(rows []store.SynonymRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Word < rows[j].Word })
}
