package chart

import (
	"fmt"
	"sort"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// RegionBoxPlot draws the distribution of a metric within each region as
// one box trace per region code.
func RegionBoxPlot(rows []schema.Observation, metric schema.MetricKind, yearStart, yearEnd int) *schema.Figure {
	title := fmt.Sprintf("Distribution of %s by Region (%d-%d)", metric.Label(), yearStart, yearEnd)

	byRegion := make(map[string][]any)
	for _, o := range rows {
		v := metric.Value(o)
		if v == nil {
			continue
		}
		byRegion[o.Region] = append(byRegion[o.Region], *v)
	}

	if len(byRegion) == 0 {
		return schema.NoDataFigure(title)
	}

	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	traces := make([]schema.Trace, 0, len(regions))
	for _, r := range regions {
		traces = append(traces, schema.Trace{
			Type:      "box",
			Name:      r,
			Y:         byRegion[r],
			BoxPoints: "outliers",
		})
	}

	return &schema.Figure{
		Data: traces,
		Layout: schema.Layout{
			Title: &schema.Title{Text: title, X: 0.5},
			XAxis: &schema.Axis{Title: "WHO Region"},
			YAxis: &schema.Axis{Title: metric.Label()},
		},
	}
}
