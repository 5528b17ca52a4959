package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// GazetteerEntry is one type with its known surface forms.
type GazetteerEntry struct {
	Type  string
	Forms []string
}

// Gazetteer maps surface forms to type names. Lookup iterates types in
// their declaration order and the first type whose form set contains the
// name wins; classification therefore depends on table order, which is
// preserved from the JSON file rather than left to Go map iteration.
type Gazetteer struct {
	types []gazType
	fold  bool
}

type gazType struct {
	name  string
	forms map[string]struct{}
}

// NewGazetteer builds a gazetteer from ordered entries. With fold set,
// membership tests are case-insensitive.
func NewGazetteer(entries []GazetteerEntry, fold bool) *Gazetteer {
	g := &Gazetteer{fold: fold}
	for _, e := range entries {
		t := gazType{name: e.Type, forms: make(map[string]struct{}, len(e.Forms))}
		for _, f := range e.Forms {
			if fold {
				f = strings.ToLower(f)
			}
			t.forms[f] = struct{}{}
		}
		g.types = append(g.types, t)
	}
	return g
}

// Lookup returns the first type whose form set contains name.
func (g *Gazetteer) Lookup(name string) (string, bool) {
	if g.fold {
		name = strings.ToLower(name)
	}
	for _, t := range g.types {
		if _, ok := t.forms[name]; ok {
			return t.name, true
		}
	}
	return "", false
}

// Types returns the type names in declaration order.
func (g *Gazetteer) Types() []string {
	out := make([]string, len(g.types))
	for i, t := range g.types {
		out[i] = t.name
	}
	return out
}

// LoadGazetteer reads a JSON object mapping type names to arrays of
// surface forms. The decoder walks tokens instead of unmarshaling into a
// map so the file's key order survives.
func LoadGazetteer(path string, fold bool) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse %s: expected object, got %v", path, tok)
	}

	var entries []GazetteerEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse %s: expected key, got %v", path, keyTok)
		}

		var forms []string
		if err := dec.Decode(&forms); err != nil {
			return nil, fmt.Errorf("parse %s: type %q: %w", path, key, err)
		}
		entries = append(entries, GazetteerEntry{Type: key, Forms: forms})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return NewGazetteer(entries, fold), nil
}
