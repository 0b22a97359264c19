package chart

import (
	"fmt"
	"strings"

	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
)

// TableRow is one display row of the aggregated data table, all three
// means rounded to one decimal for display. Rounding happens here, after
// aggregation, never before.
type TableRow struct {
	Country    string   `json:"country"`
	Region     string   `json:"region"`
	Prevalence *float64 `json:"prevalence_per_100k"`
	Mortality  *float64 `json:"mortality_per_100k"`
	Incidence  *float64 `json:"incidence_per_100k"`
}

// DataTable converts aggregated country rows into display rows.
func DataTable(rows []stats.CountryRow) []TableRow {
	out := make([]TableRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, TableRow{
			Country:    r.Country,
			Region:     r.Region,
			Prevalence: roundPtr(r.Prevalence),
			Mortality:  roundPtr(r.Mortality),
			Incidence:  roundPtr(r.Incidence),
		})
	}
	return out
}

// TableTitle mirrors the dashboard's table heading for the current region
// selection.
func TableTitle(regions []string) string {
	switch {
	case len(regions) == 0:
		return "Data Table - All Regions"
	case len(regions) == 1:
		return fmt.Sprintf("Data Table - %s", regions[0])
	case len(regions) <= 3:
		return fmt.Sprintf("Data Table - %s", strings.Join(regions, ", "))
	default:
		return fmt.Sprintf("Data Table - %d Selected Regions", len(regions))
	}
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := round1(*v)
	return &rounded
}
