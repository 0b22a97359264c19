package chart

import (
	"fmt"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
)

const (
	improvementColor = "#2e7d32"
	worseningColor   = "#c62828"
)

// YoYBars draws year-over-year percent changes as bars, colored by
// direction. Changes without a computable baseline are skipped.
func YoYBars(changes []stats.YearChange, metric schema.MetricKind, scope string) *schema.Figure {
	title := fmt.Sprintf("Year-over-Year %% Change in %s - %s", metric.Label(), scope)

	years := make([]any, 0, len(changes))
	values := make([]any, 0, len(changes))
	colors := make([]string, 0, len(changes))
	for _, c := range changes {
		if !c.Valid {
			continue
		}
		years = append(years, c.Year)
		values = append(values, c.Change)
		// a falling burden metric is an improvement
		if c.Change < 0 {
			colors = append(colors, improvementColor)
		} else {
			colors = append(colors, worseningColor)
		}
	}

	if len(years) == 0 {
		return schema.NoDataFigure(title)
	}

	return &schema.Figure{
		Data: []schema.Trace{
			{
				Type:   "bar",
				X:      years,
				Y:      values,
				Marker: &schema.Marker{Color: colors},
			},
		},
		Layout: schema.Layout{
			Title: &schema.Title{Text: title, X: 0.5},
			XAxis: &schema.Axis{Title: "Year"},
			YAxis: &schema.Axis{Title: "% change vs previous year"},
		},
	}
}
