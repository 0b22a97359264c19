// Package chart translates aggregated tables into the figure shapes the
// dashboard's charting layer consumes. Every builder is a pure function and
// degrades to a "No data available" figure on empty input.
package chart

import (
	"fmt"

	"github.com/Peter6188/tb-visualization-dashboard-V2/geo"
	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// Choropleth maps joined country values onto the boundary geometry. The
// join has already dropped countries without a matching feature, so every
// location in the trace is renderable.
func Choropleth(joined []geo.JoinedValue, boundaries *geo.Boundaries, metric schema.MetricKind, yearStart, yearEnd int) *schema.Figure {
	title := fmt.Sprintf("%s (%d-%d)", metric.Label(), yearStart, yearEnd)

	if len(joined) == 0 {
		return schema.NoDataFigure(title)
	}

	locations := make([]string, 0, len(joined))
	values := make([]float64, 0, len(joined))
	texts := make([]string, 0, len(joined))
	for _, jv := range joined {
		locations = append(locations, jv.Country)
		values = append(values, jv.Value)
		texts = append(texts, fmt.Sprintf("%s: %.1f per 100,000", jv.Country, jv.Value))
	}

	return &schema.Figure{
		Data: []schema.Trace{
			{
				Type:         "choropleth",
				Locations:    locations,
				Z:            values,
				Text:         texts,
				ColorScale:   metric.Colorscale(),
				ShowScale:    true,
				GeoJSON:      boundaries.Collection(),
				FeatureIDKey: "properties.name",
			},
		},
		Layout: schema.Layout{
			Title:  &schema.Title{Text: title, X: 0.5},
			Geo:    &schema.GeoLayout{ShowFrame: false, ShowCoastline: false},
			Margin: &schema.Margin{L: 0, R: 0, T: 50, B: 0},
		},
	}
}
