package api

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Peter6188/tb-visualization-dashboard-V2/chart"
	"github.com/Peter6188/tb-visualization-dashboard-V2/export"
	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

// parseSelection reads the widget values from query parameters. Bounds
// default to the dataset's full year span; an absent country means Global;
// an absent metric means prevalence.
func (s *Server) parseSelection(c *gin.Context) (schema.Selection, bool) {
	years := s.atlas.Dataset.Years()

	sel := schema.Selection{
		Country: schema.GlobalCountry,
		Metric:  schema.MetricPrevalence,
		Regions: c.QueryArray("regions"),
	}
	if len(years) > 0 {
		sel.YearStart = years[0]
		sel.YearEnd = years[len(years)-1]
	}

	if v := c.Query("year_start"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return sel, false
		}
		sel.YearStart = y
	}
	if v := c.Query("year_end"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return sel, false
		}
		sel.YearEnd = y
	}
	if v := c.Query("country"); v != "" {
		sel.Country = v
	}
	if v := c.Query("metric"); v != "" {
		metric, err := schema.ParseMetricKind(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownMetric, err)
			return sel, false
		}
		sel.Metric = metric
	}

	if err := sel.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidYearRange, err)
		return sel, false
	}

	return sel, true
}

// meta serves the option lists the dashboard widgets are built from.
func (s *Server) meta(c *gin.Context) {
	metrics := make([]gin.H, 0, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		metrics = append(metrics, gin.H{"value": string(m), "label": m.Label()})
	}

	c.JSON(http.StatusOK, gin.H{
		"years":     s.atlas.Dataset.Years(),
		"regions":   s.atlas.Dataset.Regions(),
		"countries": s.atlas.Dataset.Countries(),
		"metrics":   metrics,
	})
}

// summary serves the key-indicator cards: latest-year means within the
// selection and their change against the preceding year.
func (s *Server) summary(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := store.FilterCountry(s.atlas.Engine.Filter(sel), sel.Country)

	var current, previous []schema.Observation
	for _, o := range rows {
		switch o.Year {
		case sel.YearEnd:
			current = append(current, o)
		case sel.YearEnd - 1:
			previous = append(previous, o)
		}
	}
	if sel.YearEnd == sel.YearStart {
		// no prior year inside the selected range
		previous = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"country": sel.Country,
		"year":    sel.YearEnd,
		"cards":   chart.SummaryCards(current, previous),
	})
}

func (s *Server) choropleth(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)
	means := stats.MeanByCountry(rows, sel.Metric)
	joined := s.atlas.Boundaries.Join(means)

	c.JSON(http.StatusOK, chart.Choropleth(joined, s.atlas.Boundaries, sel.Metric, sel.YearStart, sel.YearEnd))
}

// trend charts cover the dataset's full year span for one country (or the
// global mean), matching the original dashboard behavior.
func (s *Server) trend(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := store.FilterCountry(s.atlas.Dataset.Rows(), sel.Country)
	bands := stats.MeanBandsByYear(rows, sel.Metric)

	c.JSON(http.StatusOK, chart.TrendLine(bands, sel.Metric, sel.Country))
}

func (s *Server) trendPNG(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := store.FilterCountry(s.atlas.Dataset.Rows(), sel.Country)
	bands := stats.MeanBandsByYear(rows, sel.Metric)

	var buf bytes.Buffer
	if err := chart.RenderTrendPNG(&buf, bands, sel.Metric, sel.Country); err != nil {
		if err == chart.ErrNoTrendData {
			c.Status(http.StatusNoContent)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) regionDistribution(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)
	means := stats.MeanByRegion(rows, sel.Metric)

	c.JSON(http.StatusOK, chart.RegionBars(means, sel.Metric, sel.YearStart, sel.YearEnd))
}

func (s *Server) regionBars(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)
	perMetric := make(map[schema.MetricKind]map[string]float64, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		perMetric[m] = stats.MeanByRegion(rows, m)
	}

	c.JSON(http.StatusOK, chart.GroupedRegionBars(perMetric, sel.Metric, sel.YearStart, sel.YearEnd))
}

func (s *Server) regionBox(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)

	c.JSON(http.StatusOK, chart.RegionBoxPlot(rows, sel.Metric, sel.YearStart, sel.YearEnd))
}

func (s *Server) comparison(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	countries := c.QueryArray("countries")
	if len(countries) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorCountryListMissing)
		return
	}

	subset := store.FilterCountries(s.atlas.Dataset.Rows(), countries)
	bandsByCountry := make(map[string][]stats.YearBand, len(countries))
	for _, country := range countries {
		rows := store.FilterCountry(subset, country)
		bandsByCountry[country] = stats.MeanBandsByYear(rows, sel.Metric)
	}

	c.JSON(http.StatusOK, chart.ComparisonLines(bandsByCountry, countries, sel.Metric))
}

func (s *Server) yearOverYear(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)
	series := stats.MeanByYear(rows, sel.Metric)
	changes := stats.YearOverYear(series)

	scope := "All Regions"
	if len(sel.Regions) > 0 {
		scope = strings.Join(sel.Regions, ", ")
	}

	c.JSON(http.StatusOK, chart.YoYBars(changes, sel.Metric, scope))
}

func (s *Server) dataTable(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)

	c.JSON(http.StatusOK, gin.H{
		"title": chart.TableTitle(sel.Regions),
		"rows":  chart.DataTable(stats.CountryTable(rows)),
	})
}

func (s *Server) dataTableXLSX(c *gin.Context) {
	sel, ok := s.parseSelection(c)
	if !ok {
		return
	}

	rows := s.atlas.Engine.Filter(sel)

	var buf bytes.Buffer
	if err := export.WriteTableXLSX(&buf, stats.CountryTable(rows)); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tb-burden-table.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
