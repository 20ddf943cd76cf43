// Command fts5-tokenize runs stdin through the default filter chain
// (synonyms → phrases → stopwords → splitter) and prints one emitted
// token per line, for inspecting how a given database's dictionaries
// would transform a document or query string.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cognicore/fts5filters/pkg/fts5filters/registry"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store/sqlite"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

func main() {
	dbPath := flag.String("db", "", "path to the sqlite database")
	query := flag.Bool("query", false, "tokenize as a query (enables synonym expansion)")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fts5-tokenize -db PATH [-query] < input.txt")
		os.Exit(2)
	}

	if err := run(*dbPath, *query); err != nil {
		fmt.Fprintln(os.Stderr, "fts5-tokenize:", err)
		os.Exit(1)
	}
}

func run(dbPath string, query bool) error {
	ctx := context.Background()
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	reg, err := registry.Bootstrap(st)
	if err != nil {
		return fmt.Errorf("bootstrap registry: %w", err)
	}
	chain, ok := reg.FindTokenizer("synonyms")
	if !ok {
		return fmt.Errorf("synonyms filter not registered")
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var flags token.Flags
	if query {
		flags = token.FlagQuery
	}

	return chain.Tokenize(flags, input, func(fl token.Flags, b []byte, s, e int) error {
		if fl.Has(token.FlagFinal) {
			return nil
		}
		marker := ""
		if fl.Has(token.FlagColocated) {
			marker = " colocated"
		}
		fmt.Printf("%s\t[%d,%d)%s\n", b, s, e, marker)
		return nil
	})
}
