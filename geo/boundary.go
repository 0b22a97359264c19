package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// Boundaries is the world-countries boundary file indexed by feature name.
// Loaded once at startup, immutable afterwards.
type Boundaries struct {
	collection schema.FeatureCollection
	byName     map[string]*schema.Feature
}

// NewBoundaries indexes an already-parsed feature collection.
func NewBoundaries(collection schema.FeatureCollection) *Boundaries {
	b := &Boundaries{
		collection: collection,
		byName:     make(map[string]*schema.Feature, len(collection.Features)),
	}
	for i := range collection.Features {
		f := &collection.Features[i]
		b.byName[f.Properties.Name] = f
	}
	return b
}

// LoadBoundaries parses a GeoJSON feature collection from disk. A missing
// or unparsable file is a fatal startup condition and is returned as an
// error for the caller to abort on.
func LoadBoundaries(path string) (*Boundaries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to load boundary file %s: %w", path, err)
	}

	var collection schema.FeatureCollection
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, fmt.Errorf("fail to parse boundary file %s: %w", path, err)
	}

	b := NewBoundaries(collection)

	log.WithFields(log.Fields{
		"prefix":   "geo",
		"features": len(collection.Features),
	}).Info("boundary file loaded")

	return b, nil
}

// Collection returns the full feature collection for embedding into figure
// or map output.
func (b *Boundaries) Collection() schema.FeatureCollection { return b.collection }

// Contains reports whether the boundary file has a feature for the name.
func (b *Boundaries) Contains(name string) bool {
	_, ok := b.byName[name]
	return ok
}

// JoinedValue is one country that matched a boundary feature together with
// its aggregated value.
type JoinedValue struct {
	Country string
	Value   float64
}

// Join matches aggregated country values against boundary feature names by
// exact match. Countries without a matching feature are excluded from the
// result; the mismatch count is logged once for data-quality visibility
// but is never an error. Results come back sorted by country name.
func (b *Boundaries) Join(values map[string]float64) []JoinedValue {
	joined := make([]JoinedValue, 0, len(values))
	unmatched := 0
	for country, value := range values {
		if !b.Contains(country) {
			unmatched++
			continue
		}
		joined = append(joined, JoinedValue{Country: country, Value: value})
	}

	sort.Slice(joined, func(i, j int) bool { return joined[i].Country < joined[j].Country })

	if unmatched > 0 {
		log.WithFields(log.Fields{
			"prefix":    "geo",
			"unmatched": unmatched,
		}).Warn("countries without boundary geometry excluded from map")
	}

	return joined
}
