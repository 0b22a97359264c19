package store

import (
	"time"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// DefaultCacheTTL matches the one-hour timeout the dashboard has always
// used for filtered subsets.
const DefaultCacheTTL = time.Hour

// Filterer is the filter-engine surface chart handlers depend on.
type Filterer interface {
	Filter(sel schema.Selection) []schema.Observation
}

// FilterEngine derives filtered subsets of a dataset. Results are memoized
// by the canonical selection key; the engine is safe for concurrent use.
type FilterEngine struct {
	dataset *Dataset
	cache   *memoCache
}

// NewFilterEngine builds an engine over an immutable dataset. A ttl of 0
// disables cache expiry.
func NewFilterEngine(dataset *Dataset, ttl time.Duration) *FilterEngine {
	return &FilterEngine{
		dataset: dataset,
		cache:   newMemoCache(ttl),
	}
}

// Filter returns every observation with YearStart <= year <= YearEnd,
// further restricted to the selection's region set when it is non-empty.
// An empty region set means "all regions". Rows come back in source order,
// so identical selections always yield identical sequences. An empty
// result is a valid outcome, not an error.
func (e *FilterEngine) Filter(sel schema.Selection) []schema.Observation {
	key := sel.Key()
	if rows, ok := e.cache.get(key); ok {
		return rows
	}

	var regionSet map[string]struct{}
	if len(sel.Regions) > 0 {
		regionSet = make(map[string]struct{}, len(sel.Regions))
		for _, r := range sel.Regions {
			regionSet[r] = struct{}{}
		}
	}

	rows := make([]schema.Observation, 0)
	for _, o := range e.dataset.Rows() {
		if o.Year < sel.YearStart || o.Year > sel.YearEnd {
			continue
		}
		if regionSet != nil {
			if _, ok := regionSet[o.Region]; !ok {
				continue
			}
		}
		rows = append(rows, o)
	}

	e.cache.put(key, rows)

	return rows
}

// FilterCountry narrows a filtered subset to one country. The Global
// sentinel returns the subset unchanged.
func FilterCountry(rows []schema.Observation, country string) []schema.Observation {
	if country == "" || country == schema.GlobalCountry {
		return rows
	}

	out := make([]schema.Observation, 0)
	for _, o := range rows {
		if o.Country == country {
			out = append(out, o)
		}
	}
	return out
}

// FilterCountries narrows a subset to a set of countries, preserving
// source order. Used by the multi-country comparison chart.
func FilterCountries(rows []schema.Observation, countries []string) []schema.Observation {
	if len(countries) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		set[c] = struct{}{}
	}

	out := make([]schema.Observation, 0)
	for _, o := range rows {
		if _, ok := set[o.Country]; ok {
			out = append(out, o)
		}
	}
	return out
}
