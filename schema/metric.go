package schema

import "fmt"

// MetricKind enumerates the three TB burden estimates the dashboard can
// display. The set is closed; every switch over MetricKind handles all
// three values.
type MetricKind string

const (
	MetricPrevalence MetricKind = "prevalence"
	MetricMortality  MetricKind = "mortality"
	MetricIncidence  MetricKind = "incidence"
)

// AllMetrics lists every MetricKind in display order.
var AllMetrics = []MetricKind{MetricPrevalence, MetricMortality, MetricIncidence}

var ErrUnknownMetric = fmt.Errorf("unknown metric")

// ParseMetricKind validates a raw widget value. The canonical column names
// from the source file (e.g. "prevalence_per_100k") are accepted as well.
func ParseMetricKind(s string) (MetricKind, error) {
	switch s {
	case "prevalence", "prevalence_per_100k":
		return MetricPrevalence, nil
	case "mortality", "mortality_per_100k":
		return MetricMortality, nil
	case "incidence", "incidence_per_100k":
		return MetricIncidence, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

type metricInfo struct {
	label      string
	column     string
	colorscale string
}

var metricInfoTable = map[MetricKind]metricInfo{
	MetricPrevalence: {"TB Prevalence per 100,000", "prevalence_per_100k", "YlOrBr"},
	MetricMortality:  {"TB Mortality per 100,000", "mortality_per_100k", "Reds"},
	MetricIncidence:  {"TB Incidence per 100,000", "incidence_per_100k", "YlOrRd"},
}

// Label returns the human-readable axis/legend title for the metric.
func (m MetricKind) Label() string {
	return metricInfoTable[m].label
}

// Column returns the canonical dataset column name for the metric.
func (m MetricKind) Column() string {
	return metricInfoTable[m].column
}

// Colorscale returns the plotly colorscale name used when rendering the
// metric as a choropleth.
func (m MetricKind) Colorscale() string {
	return metricInfoTable[m].colorscale
}

// Value returns the metric's estimate from an observation, nil when the
// source row carried no value.
func (m MetricKind) Value(o Observation) *float64 {
	switch m {
	case MetricPrevalence:
		return o.PrevalencePer100k
	case MetricMortality:
		return o.MortalityPer100k
	case MetricIncidence:
		return o.IncidencePer100k
	}
	return nil
}

// LowBound returns the metric's low confidence bound from an observation.
func (m MetricKind) LowBound(o Observation) *float64 {
	switch m {
	case MetricPrevalence:
		return o.PrevalencePer100kLow
	case MetricMortality:
		return o.MortalityPer100kLow
	case MetricIncidence:
		return o.IncidencePer100kLow
	}
	return nil
}

// HighBound returns the metric's high confidence bound from an observation.
func (m MetricKind) HighBound(o Observation) *float64 {
	switch m {
	case MetricPrevalence:
		return o.PrevalencePer100kHigh
	case MetricMortality:
		return o.MortalityPer100kHigh
	case MetricIncidence:
		return o.IncidencePer100kHigh
	}
	return nil
}
