package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peter6188/tb-visualization-dashboard-V2/geo"
	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

func f(v float64) *float64 { return &v }

func testServer(t *testing.T) *Server {
	t.Helper()

	dataset := store.NewDataset([]schema.Observation{
		{Country: "A", Region: "R1", Year: 2019, PrevalencePer100k: f(10), MortalityPer100k: f(1)},
		{Country: "B", Region: "R2", Year: 2019, PrevalencePer100k: f(20), MortalityPer100k: f(2)},
		{Country: "A", Region: "R1", Year: 2020, PrevalencePer100k: f(15), MortalityPer100k: f(1.5)},
		{Country: "B", Region: "R2", Year: 2020, PrevalencePer100k: f(18), MortalityPer100k: f(2.5)},
	})

	collection := schema.FeatureCollection{
		Type: "FeatureCollection",
		Features: []schema.Feature{
			{Type: "Feature", Properties: schema.FeatureProperties{Name: "A"}, Geometry: json.RawMessage(`{"type":"Polygon","coordinates":[]}`)},
		},
	}

	atlas := &AtlasContext{
		Dataset:    dataset,
		Engine:     store.NewFilterEngine(dataset, 0),
		Boundaries: geo.NewBoundaries(collection),
	}
	return NewServer(atlas, false)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeFigure(t *testing.T, w *httptest.ResponseRecorder) schema.Figure {
	t.Helper()

	var fig schema.Figure
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fig))
	return fig
}

func TestHealthz(t *testing.T) {
	w := get(t, testServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardPage(t *testing.T) {
	w := get(t, testServer(t), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Tuberculosis")
}

func TestMeta(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/meta")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Years     []int    `json:"years"`
		Regions   []string `json:"regions"`
		Countries []string `json:"countries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, []int{2019, 2020}, body.Years)
	assert.Equal(t, []string{"R1", "R2"}, body.Regions)
	assert.Equal(t, []string{"A", "B"}, body.Countries)
}

func TestChoroplethEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/choropleth?year_start=2019&year_end=2020&regions=R1")
	require.Equal(t, http.StatusOK, w.Code)

	fig := decodeFigure(t, w)
	require.Len(t, fig.Data, 1)
	assert.Equal(t, []string{"A"}, fig.Data[0].Locations)
	assert.Equal(t, []float64{12.5}, fig.Data[0].Z)
}

func TestChoroplethOmitsCountryWithoutGeometry(t *testing.T) {
	// B has no boundary feature: it drops from the map without an error
	w := get(t, testServer(t), "/api/v1/charts/choropleth?year_start=2019&year_end=2020")
	require.Equal(t, http.StatusOK, w.Code)

	fig := decodeFigure(t, w)
	require.Len(t, fig.Data, 1)
	assert.Equal(t, []string{"A"}, fig.Data[0].Locations)
}

func TestChoroplethEmptySelection(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/choropleth?year_start=1990&year_end=1995")
	require.Equal(t, http.StatusOK, w.Code)

	fig := decodeFigure(t, w)
	assert.Empty(t, fig.Data)
	require.Len(t, fig.Layout.Annotations, 1)
	assert.Equal(t, "No data available", fig.Layout.Annotations[0].Text)
}

func TestTrendEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/trend?country=A&metric=prevalence")
	require.Equal(t, http.StatusOK, w.Code)

	fig := decodeFigure(t, w)
	require.NotEmpty(t, fig.Data)
	line := fig.Data[len(fig.Data)-1]
	assert.Equal(t, []any{float64(2019), float64(2020)}, line.X)
	assert.Equal(t, []any{10.0, 15.0}, line.Y)
}

func TestSummaryEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/summary?year_start=2019&year_end=2020")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Country string `json:"country"`
		Year    int    `json:"year"`
		Cards   []struct {
			Label  string   `json:"label"`
			Value  *float64 `json:"value"`
			Change string   `json:"change"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, schema.GlobalCountry, body.Country)
	assert.Equal(t, 2020, body.Year)
	require.Len(t, body.Cards, 3)

	// 2020 mean prevalence (15+18)/2 = 16.5 vs 2019 mean 15 -> +10%
	assert.Equal(t, 16.5, *body.Cards[0].Value)
	assert.Equal(t, "+10.0%", body.Cards[0].Change)

	// incidence has no data in the fixture
	assert.Nil(t, body.Cards[2].Value)
	assert.Equal(t, "N/A", body.Cards[2].Change)
}

func TestYoYEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/yoy?metric=prevalence")
	require.Equal(t, http.StatusOK, w.Code)

	fig := decodeFigure(t, w)
	require.Len(t, fig.Data, 1)
	// 2019 mean 15 -> 2020 mean 16.5: +10%; 2019 itself is excluded
	assert.Equal(t, []any{float64(2020)}, fig.Data[0].X)
	assert.Equal(t, []any{10.0}, fig.Data[0].Y)
}

func TestComparisonEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/comparison?countries=A&countries=B")
	require.Equal(t, http.StatusOK, w.Code)

	fig := decodeFigure(t, w)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "A", fig.Data[0].Name)
	assert.Equal(t, "B", fig.Data[1].Name)
}

func TestComparisonRequiresCountries(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/comparison")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTableEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/table?regions=R1")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Title string `json:"title"`
		Rows  []struct {
			Country    string   `json:"country"`
			Prevalence *float64 `json:"prevalence_per_100k"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Data Table - R1", body.Title)
	require.Len(t, body.Rows, 1)
	assert.Equal(t, "A", body.Rows[0].Country)
	assert.Equal(t, 12.5, *body.Rows[0].Prevalence)
}

func TestTableXLSXEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/table.xlsx")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "tb-burden-table.xlsx")
}

func TestTrendPNGEndpoint(t *testing.T) {
	w := get(t, testServer(t), "/api/v1/charts/trend.png?country=A")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, byte(0x89), w.Body.Bytes()[0])
}

func TestBadParameters(t *testing.T) {
	s := testServer(t)

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/v1/summary?year_start=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/v1/summary?metric=bogus").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/v1/summary?year_start=2020&year_end=2019").Code)
}

func TestRequestIDHeader(t *testing.T) {
	w := get(t, testServer(t), "/healthz")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
