package chart

import (
	"fmt"
	"sort"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// RegionBars draws the per-region mean of one metric as horizontal bars,
// sorted ascending so the highest-burden region lands on top.
func RegionBars(means map[string]float64, metric schema.MetricKind, yearStart, yearEnd int) *schema.Figure {
	title := fmt.Sprintf("%s by WHO Region (%d-%d)", metric.Label(), yearStart, yearEnd)

	if len(means) == 0 {
		return schema.NoDataFigure(title)
	}

	regions := sortedByValue(means, true)

	values := make([]any, 0, len(regions))
	names := make([]any, 0, len(regions))
	for _, r := range regions {
		names = append(names, r)
		values = append(values, means[r])
	}

	return &schema.Figure{
		Data: []schema.Trace{
			{
				Type:        "bar",
				Orientation: "h",
				X:           values,
				Y:           names,
				Marker:      &schema.Marker{Color: trendLineColor},
			},
		},
		Layout: schema.Layout{
			Title: &schema.Title{Text: title, X: 0.5},
			XAxis: &schema.Axis{Title: metric.Label()},
			YAxis: &schema.Axis{Title: "WHO Region"},
		},
	}
}

// GroupedRegionBars draws all three metrics per region side by side,
// regions sorted descending by the selected metric.
func GroupedRegionBars(perMetric map[schema.MetricKind]map[string]float64, selected schema.MetricKind, yearStart, yearEnd int) *schema.Figure {
	title := fmt.Sprintf("TB Burden by WHO Region (%d-%d)", yearStart, yearEnd)

	selectedMeans := perMetric[selected]
	if len(selectedMeans) == 0 {
		return schema.NoDataFigure(title)
	}

	regions := sortedByValue(selectedMeans, false)

	traces := make([]schema.Trace, 0, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		means := perMetric[m]
		names := make([]any, 0, len(regions))
		values := make([]any, 0, len(regions))
		for _, r := range regions {
			v, ok := means[r]
			if !ok {
				continue
			}
			names = append(names, r)
			values = append(values, v)
		}
		traces = append(traces, schema.Trace{
			Type: "bar",
			Name: m.Label(),
			X:    names,
			Y:    values,
		})
	}

	return &schema.Figure{
		Data: traces,
		Layout: schema.Layout{
			Title:   &schema.Title{Text: title, X: 0.5},
			BarMode: "group",
			XAxis:   &schema.Axis{Title: "WHO Region"},
			YAxis:   &schema.Axis{Title: "Rate per 100,000 population"},
		},
	}
}

func sortedByValue(means map[string]float64, ascending bool) []string {
	keys := make([]string, 0, len(means))
	for k := range means {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if means[keys[i]] == means[keys[j]] {
			return keys[i] < keys[j]
		}
		if ascending {
			return means[keys[i]] < means[keys[j]]
		}
		return means[keys[i]] > means[keys[j]]
	})
	return keys
}
