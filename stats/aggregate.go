// Package stats holds the pure aggregation and derived-metric calculators.
// Every function is a deterministic transformation of its arguments; no
// clock, no shared state, no rounding (display rounding belongs to the
// presentation layer).
package stats

import (
	"sort"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// MeanBy groups observations with keyFn and averages the metric within
// each group. Rows without a value for the metric are skipped; groups with
// no usable values are omitted from the result rather than reported as NaN.
func MeanBy(rows []schema.Observation, keyFn func(schema.Observation) string, metric schema.MetricKind) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, o := range rows {
		v := metric.Value(o)
		if v == nil {
			continue
		}
		key := keyFn(o)
		sums[key] += *v
		counts[key]++
	}

	means := make(map[string]float64, len(sums))
	for key, sum := range sums {
		means[key] = sum / float64(counts[key])
	}
	return means
}

// MeanByCountry averages the metric per country.
func MeanByCountry(rows []schema.Observation, metric schema.MetricKind) map[string]float64 {
	return MeanBy(rows, func(o schema.Observation) string { return o.Country }, metric)
}

// MeanByRegion averages the metric per region code.
func MeanByRegion(rows []schema.Observation, metric schema.MetricKind) map[string]float64 {
	return MeanBy(rows, func(o schema.Observation) string { return o.Region }, metric)
}

// MeanByYear averages the metric per year.
func MeanByYear(rows []schema.Observation, metric schema.MetricKind) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)

	for _, o := range rows {
		v := metric.Value(o)
		if v == nil {
			continue
		}
		sums[o.Year] += *v
		counts[o.Year]++
	}

	means := make(map[int]float64, len(sums))
	for year, sum := range sums {
		means[year] = sum / float64(counts[year])
	}
	return means
}

// YearBand is the per-year mean of a metric together with the means of its
// confidence bounds, for trend charts with a shaded band.
type YearBand struct {
	Year int
	Mean float64
	Low  *float64
	High *float64
}

// MeanBandsByYear computes the yearly mean of the metric and of its
// low/high confidence bounds, sorted by year. Years with no metric value
// are dropped; a band side is nil when no row that year carried the bound.
func MeanBandsByYear(rows []schema.Observation, metric schema.MetricKind) []YearBand {
	type acc struct {
		sum, lowSum, highSum       float64
		count, lowCount, highCount int
	}

	accs := make(map[int]*acc)
	for _, o := range rows {
		v := metric.Value(o)
		if v == nil {
			continue
		}
		a := accs[o.Year]
		if a == nil {
			a = &acc{}
			accs[o.Year] = a
		}
		a.sum += *v
		a.count++
		if low := metric.LowBound(o); low != nil {
			a.lowSum += *low
			a.lowCount++
		}
		if high := metric.HighBound(o); high != nil {
			a.highSum += *high
			a.highCount++
		}
	}

	years := make([]int, 0, len(accs))
	for y := range accs {
		years = append(years, y)
	}
	sort.Ints(years)

	bands := make([]YearBand, 0, len(years))
	for _, y := range years {
		a := accs[y]
		band := YearBand{Year: y, Mean: a.sum / float64(a.count)}
		if a.lowCount > 0 {
			low := a.lowSum / float64(a.lowCount)
			band.Low = &low
		}
		if a.highCount > 0 {
			high := a.highSum / float64(a.highCount)
			band.High = &high
		}
		bands = append(bands, band)
	}
	return bands
}

// CountryRow is one line of the aggregated data table.
type CountryRow struct {
	Country    string
	Region     string
	Prevalence *float64
	Mortality  *float64
	Incidence  *float64
}

// CountryTable averages all three metrics per (country, region) pair and
// returns the rows sorted by country name.
func CountryTable(rows []schema.Observation) []CountryRow {
	type acc struct {
		region string
		sums   [3]float64
		counts [3]int
	}

	accs := make(map[string]*acc)
	for _, o := range rows {
		a := accs[o.Country]
		if a == nil {
			a = &acc{region: o.Region}
			accs[o.Country] = a
		}
		for i, m := range schema.AllMetrics {
			if v := m.Value(o); v != nil {
				a.sums[i] += *v
				a.counts[i]++
			}
		}
	}

	countries := make([]string, 0, len(accs))
	for c := range accs {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	table := make([]CountryRow, 0, len(countries))
	for _, c := range countries {
		a := accs[c]
		row := CountryRow{Country: c, Region: a.region}
		dests := []**float64{&row.Prevalence, &row.Mortality, &row.Incidence}
		for i := range schema.AllMetrics {
			if a.counts[i] > 0 {
				mean := a.sums[i] / float64(a.counts[i])
				*dests[i] = &mean
			}
		}
		table = append(table, row)
	}
	return table
}

// TopN returns the n observations with the highest metric value, highest
// first. Rows without a value are ignored; ties keep source order.
func TopN(rows []schema.Observation, metric schema.MetricKind, n int) []schema.Observation {
	withValue := make([]schema.Observation, 0, len(rows))
	for _, o := range rows {
		if metric.Value(o) != nil {
			withValue = append(withValue, o)
		}
	}

	sort.SliceStable(withValue, func(i, j int) bool {
		return *metric.Value(withValue[i]) > *metric.Value(withValue[j])
	})

	if n < len(withValue) {
		withValue = withValue[:n]
	}
	return withValue
}
