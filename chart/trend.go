package chart

import (
	"fmt"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
)

const (
	trendLineColor = "#005b82"
	bandFillColor  = "rgba(0, 91, 130, 0.2)"
)

// TrendLine draws the yearly mean of a metric for one country (or the
// global mean) with a shaded confidence band where low/high bounds exist.
func TrendLine(bands []stats.YearBand, metric schema.MetricKind, country string) *schema.Figure {
	title := fmt.Sprintf("%s Trend - %s", metric.Label(), country)

	if len(bands) == 0 {
		return schema.NoDataFigure(title)
	}

	years := make([]any, 0, len(bands))
	means := make([]any, 0, len(bands))
	for _, b := range bands {
		years = append(years, b.Year)
		means = append(means, b.Mean)
	}

	traces := make([]schema.Trace, 0, 3)

	// band boundary traces go first so the mean line draws on top
	lowYears, lows, highYears, highs := bandSeries(bands)
	if len(lows) > 0 && len(highs) > 0 {
		traces = append(traces,
			schema.Trace{
				Type: "scatter",
				Name: "High bound",
				Mode: "lines",
				X:    highYears,
				Y:    highs,
				Line: &schema.Line{Width: 0},
			},
			schema.Trace{
				Type:      "scatter",
				Name:      "Low bound",
				Mode:      "lines",
				X:         lowYears,
				Y:         lows,
				Fill:      "tonexty",
				FillColor: bandFillColor,
				Line:      &schema.Line{Width: 0},
			},
		)
	}

	traces = append(traces, schema.Trace{
		Type: "scatter",
		Name: metric.Label(),
		Mode: "lines+markers",
		X:    years,
		Y:    means,
		Line: &schema.Line{Color: trendLineColor, Width: 2},
	})

	return &schema.Figure{
		Data: traces,
		Layout: schema.Layout{
			Title: &schema.Title{Text: title, X: 0.5},
			XAxis: &schema.Axis{Title: "Year"},
			YAxis: &schema.Axis{Title: metric.Label()},
		},
	}
}

func bandSeries(bands []stats.YearBand) (lowYears, lows, highYears, highs []any) {
	for _, b := range bands {
		if b.Low == nil || b.High == nil {
			continue
		}
		lowYears = append(lowYears, b.Year)
		lows = append(lows, *b.Low)
		highYears = append(highYears, b.Year)
		highs = append(highs, *b.High)
	}
	return lowYears, lows, highYears, highs
}

// ComparisonLines draws one trend line per country for side-by-side
// comparison. Countries without any value for the metric are skipped.
func ComparisonLines(bandsByCountry map[string][]stats.YearBand, order []string, metric schema.MetricKind) *schema.Figure {
	title := fmt.Sprintf("Country Comparison - %s", metric.Label())

	traces := make([]schema.Trace, 0, len(order))
	for _, country := range order {
		bands := bandsByCountry[country]
		if len(bands) == 0 {
			continue
		}
		years := make([]any, 0, len(bands))
		means := make([]any, 0, len(bands))
		for _, b := range bands {
			years = append(years, b.Year)
			means = append(means, b.Mean)
		}
		traces = append(traces, schema.Trace{
			Type: "scatter",
			Name: country,
			Mode: "lines+markers",
			X:    years,
			Y:    means,
		})
	}

	if len(traces) == 0 {
		return schema.NoDataFigure(title)
	}

	return &schema.Figure{
		Data: traces,
		Layout: schema.Layout{
			Title: &schema.Title{Text: title, X: 0.5},
			XAxis: &schema.Axis{Title: "Year"},
			YAxis: &schema.Axis{Title: metric.Label()},
		},
	}
}
