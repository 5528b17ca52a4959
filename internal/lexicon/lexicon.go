// Package lexicon holds the three read-only lookup tables driving entity
// resolution: the raw-label mapping and the location and organisation
// gazetteers. All tables are loaded once and shared by reference across
// arbitrarily many concurrent documents; nothing here mutates after Load.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Lexicon bundles the immutable lookup tables.
type Lexicon struct {
	labels    map[string]string
	locations *Gazetteer
	orgs      *Gazetteer
}

// Load reads the three JSON files. A missing or unparseable file is a
// fatal initialization error: resolution must not silently run with an
// empty gazetteer.
func Load(labelsPath, locationsPath, orgsPath string) (*Lexicon, error) {
	labels, err := loadLabelMap(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("load label mapping: %w", err)
	}

	locations, err := LoadGazetteer(locationsPath, false)
	if err != nil {
		return nil, fmt.Errorf("load location gazetteer: %w", err)
	}

	orgs, err := LoadGazetteer(orgsPath, true)
	if err != nil {
		return nil, fmt.Errorf("load organisation gazetteer: %w", err)
	}

	return &Lexicon{labels: labels, locations: locations, orgs: orgs}, nil
}

// New builds a Lexicon from already-parsed tables. Gazetteer type order
// follows the order of the given entries.
func New(labels map[string]string, locations, orgs []GazetteerEntry) *Lexicon {
	return &Lexicon{
		labels:    labels,
		locations: NewGazetteer(locations, false),
		orgs:      NewGazetteer(orgs, true),
	}
}

// ResolveLabel maps a raw tagger label to its canonical name. The raw
// label is split on '_' and the final segment is looked up; codes absent
// from the mapping pass through unchanged.
func (l *Lexicon) ResolveLabel(raw string) string {
	parts := strings.Split(raw, "_")
	code := parts[len(parts)-1]
	if name, ok := l.labels[code]; ok {
		return name
	}
	return raw
}

// LocationType returns the gazetteer type for an exact (case-sensitive)
// surface form, or ok=false when no type set contains it.
func (l *Lexicon) LocationType(name string) (string, bool) {
	return l.locations.Lookup(name)
}

// OrganisationType returns the gazetteer type for a surface form,
// matched case-insensitively, or ok=false.
func (l *Lexicon) OrganisationType(name string) (string, bool) {
	return l.orgs.Lookup(name)
}

func loadLabelMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
