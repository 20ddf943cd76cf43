// Package registry models the host search engine's extension-loading
// surface and wires the default filter chain onto it: an Engine is where
// filters are registered by name and resolved by name, mirroring the
// create_tokenizer/find_tokenizer pair a real FTS5-style host exposes.
package registry

import (
	"fmt"

	"github.com/cognicore/fts5filters/internal/ferr"
	"github.com/cognicore/fts5filters/pkg/fts5filters/phrase"
	"github.com/cognicore/fts5filters/pkg/fts5filters/splitter"
	"github.com/cognicore/fts5filters/pkg/fts5filters/stemmer"
	"github.com/cognicore/fts5filters/pkg/fts5filters/stopword"
	"github.com/cognicore/fts5filters/pkg/fts5filters/store"
	"github.com/cognicore/fts5filters/pkg/fts5filters/synonym"
	"github.com/cognicore/fts5filters/pkg/fts5filters/token"
)

// Engine is the host surface a registrar binds filters to: register a
// named filter, and look one up by name to use as another filter's
// parent.
type Engine interface {
	CreateTokenizer(name string, f token.Filter) error
	FindTokenizer(name string) (token.Filter, bool)
}

// Registry is an in-process Engine. It holds no host-specific state; a
// real extension-loading host would wrap a foreign ABI handle here
// instead.
type Registry struct {
	filters map[string]token.Filter
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{filters: make(map[string]token.Filter)}
}

// CreateTokenizer implements Engine.
func (r *Registry) CreateTokenizer(name string, f token.Filter) error {
	r.filters[name] = f
	return nil
}

// FindTokenizer implements Engine.
func (r *Registry) FindTokenizer(name string) (token.Filter, bool) {
	f, ok := r.filters[name]
	return f, ok
}

// Resolve looks up name or returns an InvalidArg error naming it as an
// unknown parent filter.
func (r *Registry) Resolve(name string) (token.Filter, error) {
	f, ok := r.FindTokenizer(name)
	if !ok {
		return nil, ferr.Wrap(ferr.InvalidArg, fmt.Sprintf("unknown parent filter %q", name), ferr.ErrUnknownParent)
	}
	return f, nil
}

// Bootstrap registers the default chain against st: splitter as the root
// "splitter" filter, stopwords wrapping it, phrases wrapping stopwords,
// synonyms wrapping phrases, and snowball wrapping stopwords directly
// (its own chain, independent of phrases/synonyms). Callers that need a
// different composition build filters directly and call CreateTokenizer
// themselves; Bootstrap exists for the common case.
func Bootstrap(st store.Store) (*Registry, error) {
	reg := New()

	root := splitter.New()
	if err := reg.CreateTokenizer("splitter", root); err != nil {
		return nil, err
	}

	sw := stopword.New(root, st)
	if err := reg.CreateTokenizer("stopwords", sw); err != nil {
		return nil, err
	}

	ph := phrase.New(sw, st)
	if err := reg.CreateTokenizer("phrases", ph); err != nil {
		return nil, err
	}

	syn := synonym.New(ph, st)
	if err := reg.CreateTokenizer("synonyms", syn); err != nil {
		return nil, err
	}

	sb, err := stemmer.New(sw, nil)
	if err != nil {
		return nil, err
	}
	if err := reg.CreateTokenizer("snowball", sb); err != nil {
		return nil, err
	}

	return reg, nil
}

// Create resolves parentName on eng and builds the named filter kind
// wrapping it, registering the result under name. This mirrors the host
// ABI's create(parent_name, ...) contract: an unknown parent or kind
// returns an InvalidArg error and nothing is registered.
func Create(eng *Registry, kind, name, parentName string, st store.Store, languages []string) error {
	parent, err := eng.Resolve(parentName)
	if err != nil {
		return err
	}

	var f token.Filter
	switch kind {
	case "stopwords":
		f = stopword.New(parent, st)
	case "phrases":
		f = phrase.New(parent, st)
	case "synonyms":
		f = synonym.New(parent, st)
	case "snowball":
		sb, err := stemmer.New(parent, languages)
		if err != nil {
			return err
		}
		f = sb
	default:
		return ferr.New(ferr.InvalidArg, fmt.Sprintf("unknown filter kind %q", kind))
	}

	return eng.CreateTokenizer(name, f)
}
