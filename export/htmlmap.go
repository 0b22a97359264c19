package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Peter6188/tb-visualization-dashboard-V2/geo"
	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

// markerCount is how many of the highest-burden countries get a marker.
const markerCount = 20

// yellow-to-red ramp matching the dashboard's YlOrRd choropleth scale
var choroplethRamp = []string{"#ffffb2", "#fed976", "#feb24c", "#fd8d3c", "#f03b20", "#bd0026"}

// Marker is one high-burden country pin on the static map.
type Marker struct {
	Country    string
	Lat        float64
	Lon        float64
	Region     string
	Prevalence string
	Mortality  string
	Incidence  string
}

type mapData struct {
	Title      string
	LegendName string
	Year       int
	GeoJSON    template.JS
	Colors     template.JS
	Values     template.JS
	Thresholds []float64
	Ramp       []string
	Markers    []Marker
	Regions    []string
}

// BuildMapHTML renders the self-contained choropleth map for the latest
// year in the dataset: boundary polygons colored by the mean of the chosen
// metric, plus markers for the highest-burden countries that have a known
// centroid. Countries without matching geometry are dropped by the join;
// marker countries without a centroid are skipped silently, mirroring the
// join policy.
func BuildMapHTML(w io.Writer, dataset *store.Dataset, boundaries *geo.Boundaries, metric schema.MetricKind) error {
	latest := dataset.LatestYear()
	sel := schema.Selection{YearStart: latest, YearEnd: latest, Metric: metric}

	engine := store.NewFilterEngine(dataset, 0)
	rows := engine.Filter(sel)

	means := stats.MeanByCountry(rows, metric)
	joined := boundaries.Join(means)

	colors := make(map[string]string, len(joined))
	values := make(map[string]float64, len(joined))
	thresholds := bucketThresholds(joined)
	for _, jv := range joined {
		colors[jv.Country] = bucketColor(jv.Value, thresholds)
		values[jv.Country] = jv.Value
	}

	markers := buildMarkers(rows, metric)

	geoRaw, err := json.Marshal(boundaries.Collection())
	if err != nil {
		return fmt.Errorf("fail to encode boundary geometry: %w", err)
	}
	colorRaw, err := json.Marshal(colors)
	if err != nil {
		return err
	}
	valueRaw, err := json.Marshal(values)
	if err != nil {
		return err
	}

	data := mapData{
		Title:      fmt.Sprintf("Tuberculosis (TB) Global %s - %d", metricShortName(metric), latest),
		LegendName: metric.Label(),
		Year:       latest,
		GeoJSON:    template.JS(geoRaw),
		Colors:     template.JS(colorRaw),
		Values:     template.JS(valueRaw),
		Thresholds: thresholds,
		Ramp:       choroplethRamp,
		Markers:    markers,
		Regions:    dataset.Regions(),
	}

	return mapTemplate.Execute(w, data)
}

// WriteMapHTML renders the map document to a file.
func WriteMapHTML(path string, dataset *store.Dataset, boundaries *geo.Boundaries, metric schema.MetricKind) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fail to create map file %s: %w", path, err)
	}
	defer f.Close()

	if err := BuildMapHTML(f, dataset, boundaries, metric); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix": "export",
		"path":   path,
	}).Info("static map written")

	return nil
}

func buildMarkers(rows []schema.Observation, metric schema.MetricKind) []Marker {
	markers := make([]Marker, 0, markerCount)
	for _, o := range stats.TopN(rows, metric, markerCount) {
		lat, lon, err := geo.LookupCoordinate(o.Country)
		if err != nil {
			continue
		}
		markers = append(markers, Marker{
			Country:    o.Country,
			Lat:        lat,
			Lon:        lon,
			Region:     o.Region,
			Prevalence: formatPer100k(o.PrevalencePer100k),
			Mortality:  formatPer100k(o.MortalityPer100k),
			Incidence:  formatPer100k(o.IncidencePer100k),
		})
	}
	return markers
}

func formatPer100k(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f per 100,000", *v)
}

// bucketThresholds splits the joined value range into equal-count buckets,
// one threshold per ramp color boundary.
func bucketThresholds(joined []geo.JoinedValue) []float64 {
	if len(joined) == 0 {
		return nil
	}

	values := make([]float64, 0, len(joined))
	for _, jv := range joined {
		values = append(values, jv.Value)
	}
	sort.Float64s(values)

	thresholds := make([]float64, 0, len(choroplethRamp)-1)
	for i := 1; i < len(choroplethRamp); i++ {
		idx := i * len(values) / len(choroplethRamp)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		thresholds = append(thresholds, values[idx])
	}
	return thresholds
}

func bucketColor(value float64, thresholds []float64) string {
	for i, t := range thresholds {
		if value < t {
			return choroplethRamp[i]
		}
	}
	return choroplethRamp[len(choroplethRamp)-1]
}

func metricShortName(metric schema.MetricKind) string {
	switch metric {
	case schema.MetricMortality:
		return "Mortality"
	case schema.MetricIncidence:
		return "Incidence"
	default:
		return "Prevalence"
	}
}
