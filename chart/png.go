package chart

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
)

var ErrNoTrendData = fmt.Errorf("no data points for trend render")

// RenderTrendPNG writes a server-rendered PNG of the yearly trend series,
// with the confidence bounds as dashed companion lines where present. Used
// by the image endpoint for embedding outside the interactive dashboard.
func RenderTrendPNG(w io.Writer, bands []stats.YearBand, metric schema.MetricKind, country string) error {
	if len(bands) == 0 {
		return ErrNoTrendData
	}

	xs := make([]float64, 0, len(bands))
	ys := make([]float64, 0, len(bands))
	for _, b := range bands {
		xs = append(xs, float64(b.Year))
		ys = append(ys, b.Mean)
	}

	mainColor := drawing.Color{R: 0x00, G: 0x5b, B: 0x82, A: 0xff}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    metric.Label(),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: mainColor, StrokeWidth: 2},
		},
	}

	boundStyle := chart.Style{
		StrokeColor:     mainColor.WithAlpha(110),
		StrokeWidth:     1,
		StrokeDashArray: []float64{4, 3},
	}
	if lowXs, lowYs := boundValues(bands, func(b stats.YearBand) *float64 { return b.Low }); len(lowXs) > 1 {
		series = append(series, chart.ContinuousSeries{Name: "Low bound", XValues: lowXs, YValues: lowYs, Style: boundStyle})
	}
	if highXs, highYs := boundValues(bands, func(b stats.YearBand) *float64 { return b.High }); len(highXs) > 1 {
		series = append(series, chart.ContinuousSeries{Name: "High bound", XValues: highXs, YValues: highYs, Style: boundStyle})
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("%s - %s", metric.Label(), country),
		Width:  900,
		Height: 480,
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: metric.Label()},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

func boundValues(bands []stats.YearBand, pick func(stats.YearBand) *float64) ([]float64, []float64) {
	var xs, ys []float64
	for _, b := range bands {
		if v := pick(b); v != nil {
			xs = append(xs, float64(b.Year))
			ys = append(ys, *v)
		}
	}
	return xs, ys
}
