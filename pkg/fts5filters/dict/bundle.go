package dict

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/fts5filters/internal/ferr"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
)

// Bundle is the YAML shape a dictionary seed file is parsed into: one
// section per table, written by hand or exported from another system.
type Bundle struct {
	Stopwords []string            `yaml:"stopwords"`
	Phrases   []BundlePhrase      `yaml:"phrases"`
	Synonyms  map[string][]string `yaml:"synonyms"`
}

// BundlePhrase is one phrase/root pair in a Bundle.
type BundlePhrase struct {
	Phrase string `yaml:"phrase"`
	Root   string `yaml:"root"`
}

// ParseBundle unmarshals a YAML dictionary bundle.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, ferr.Wrap(ferr.InvalidArg, "parse dictionary bundle", err)
	}
	return &b, nil
}

// Apply upserts every row of the bundle into st and bumps fts5_meta for
// each table touched, so every context's next Refresh picks up the
// change. Tables with no rows in the bundle are left untouched.
func (b *Bundle) Apply(ctx context.Context, st store.Store, date int64) error {
	if err := st.EnsureSchema(ctx); err != nil {
		return ferr.Wrap(ferr.DBError, "ensure schema", err)
	}

	if len(b.Stopwords) > 0 {
		for _, w := range b.Stopwords {
			if err := st.UpsertStopword(ctx, w); err != nil {
				return ferr.Wrap(ferr.DBError, "upsert stopword", err)
			}
		}
		if err := st.BumpMeta(ctx, "stopwords", date); err != nil {
			return ferr.Wrap(ferr.DBError, "bump stopwords meta", err)
		}
	}

	if len(b.Phrases) > 0 {
		for _, p := range b.Phrases {
			if err := st.UpsertPhrase(ctx, p.Phrase, p.Root); err != nil {
				return ferr.Wrap(ferr.DBError, "upsert phrase", err)
			}
		}
		if err := st.BumpMeta(ctx, "phrases", date); err != nil {
			return ferr.Wrap(ferr.DBError, "bump phrases meta", err)
		}
	}

	if len(b.Synonyms) > 0 {
		for word, expansions := range b.Synonyms {
			for _, exp := range expansions {
				if err := st.UpsertSynonym(ctx, word, exp); err != nil {
					return ferr.Wrap(ferr.DBError, "upsert synonym", err)
				}
			}
		}
		if err := st.BumpMeta(ctx, "synonyms", date); err != nil {
			return ferr.Wrap(ferr.DBError, "bump synonyms meta", err)
		}
	}

	return nil
}
