// Command fts5-seed loads a YAML dictionary bundle (stopwords, phrases,
// synonyms) into an fts5filters database, bumping fts5_meta so that any
// running process sharing the database picks up the change on its next
// tokenize call.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cognicore/fts5filters/pkg/fts5filters/dict"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "path to the sqlite database")
	bundlePath := flag.String("bundle", "", "path to the YAML dictionary bundle")
	flag.Parse()

	if *dbPath == "" || *bundlePath == "" {
		fmt.Fprintln(os.Stderr, "usage: fts5-seed -db PATH -bundle PATH")
		os.Exit(2)
	}

	if err := run(*dbPath, *bundlePath); err != nil {
		fmt.Fprintln(os.Stderr, "fts5-seed:", err)
		os.Exit(1)
	}
}

func run(dbPath, bundlePath string) error {
	data, err := os.ReadFile(bundlePath)
	if err != nil {
		return fmt.Errorf("read bundle: %w", err)
	}

	bundle, err := dict.ParseBundle(data)
	if err != nil {
		return fmt.Errorf("parse bundle: %w", err)
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	if err := bundle.Apply(ctx, st, time.Now().Unix()); err != nil {
		return fmt.Errorf("apply bundle: %w", err)
	}

	fmt.Printf("seeded %d stopwords, %d phrases, %d synonym words\n",
		len(bundle.Stopwords), len(bundle.Phrases), len(bundle.Synonyms))
	return nil
}
