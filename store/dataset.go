package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// LoadError reports a dataset file that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("fail to load dataset %s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports a source column that is absent after header renaming.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing expected column %q", e.Column)
}

// columnRenames maps the verbose WHO source headers to canonical names.
var columnRenames = map[string]string{
	"Country or territory name":                    "country",
	"ISO 3-character country/territory code":       "iso_code",
	"Region":                                       "region",
	"Year":                                         "year",
	"Estimated total population number":            "population",
	"Estimated prevalence of TB (all forms) per 100 000 population":             "prevalence_per_100k",
	"Estimated prevalence of TB (all forms) per 100 000 population, low bound":  "prevalence_per_100k_low",
	"Estimated prevalence of TB (all forms) per 100 000 population, high bound": "prevalence_per_100k_high",
	"Estimated mortality of TB cases (all forms, excluding HIV) per 100 000 population":              "mortality_per_100k",
	"Estimated mortality of TB cases (all forms, excluding HIV), per 100 000 population, low bound":  "mortality_per_100k_low",
	"Estimated mortality of TB cases (all forms, excluding HIV), per 100 000 population, high bound": "mortality_per_100k_high",
	"Estimated incidence (all forms) per 100 000 population":             "incidence_per_100k",
	"Estimated incidence (all forms) per 100 000 population, low bound":  "incidence_per_100k_low",
	"Estimated incidence (all forms) per 100 000 population, high bound": "incidence_per_100k_high",
}

// requiredColumns must all be present after renaming for the dataset to be
// usable. The low/high bounds are optional.
var requiredColumns = []string{
	"country", "iso_code", "region", "year",
	"prevalence_per_100k", "mortality_per_100k", "incidence_per_100k",
}

// Dataset is the immutable in-memory table every computation reads from.
// It is populated once at startup and never mutated afterwards.
type Dataset struct {
	rows      []schema.Observation
	years     []int
	regions   []string
	countries []string
}

// NewDataset builds a dataset directly from canonical observations.
func NewDataset(rows []schema.Observation) *Dataset {
	d := &Dataset{rows: rows}
	d.buildCatalogs()
	return d
}

// LoadDataset reads a delimited TB burden file, renames headers to the
// canonical names and parses each row into an Observation. A missing or
// unreadable file yields a LoadError; a missing required column yields a
// SchemaError. Duplicate (country, year) pairs survive loading — they are
// counted and reported with a single warning so aggregation over them is a
// visible decision rather than a silent one.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return readDataset(f, path)
}

func readDataset(r io.Reader, path string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if canonical, ok := columnRenames[name]; ok {
			name = canonical
		}
		index[name] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &SchemaError{Column: col}
		}
	}

	d := &Dataset{}
	pairs := make(map[string]struct{})
	duplicates := 0

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		year, err := strconv.Atoi(field(record, index, "year"))
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: invalid year: %w", line, err)}
		}

		o := schema.Observation{
			Country: field(record, index, "country"),
			ISOCode: field(record, index, "iso_code"),
			Region:  field(record, index, "region"),
			Year:    year,
		}

		if v := field(record, index, "population"); v != "" {
			// population arrives as a float-formatted count in some
			// revisions of the file
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: invalid population: %w", line, err)}
			}
			n := int64(p)
			o.Population = &n
		}

		o.PrevalencePer100k = floatField(record, index, "prevalence_per_100k")
		o.PrevalencePer100kLow = floatField(record, index, "prevalence_per_100k_low")
		o.PrevalencePer100kHigh = floatField(record, index, "prevalence_per_100k_high")
		o.MortalityPer100k = floatField(record, index, "mortality_per_100k")
		o.MortalityPer100kLow = floatField(record, index, "mortality_per_100k_low")
		o.MortalityPer100kHigh = floatField(record, index, "mortality_per_100k_high")
		o.IncidencePer100k = floatField(record, index, "incidence_per_100k")
		o.IncidencePer100kLow = floatField(record, index, "incidence_per_100k_low")
		o.IncidencePer100kHigh = floatField(record, index, "incidence_per_100k_high")

		pair := fmt.Sprintf("%s|%d", o.Country, o.Year)
		if _, ok := pairs[pair]; ok {
			duplicates++
		}
		pairs[pair] = struct{}{}

		d.rows = append(d.rows, o)
	}

	if duplicates > 0 {
		log.WithFields(log.Fields{
			"prefix":     "store",
			"duplicates": duplicates,
		}).Warn("dataset contains duplicate (country, year) rows; aggregates average over them")
	}

	d.buildCatalogs()

	log.WithFields(log.Fields{
		"prefix":    "store",
		"rows":      len(d.rows),
		"countries": len(d.countries),
		"years":     len(d.years),
	}).Info("dataset loaded")

	return d, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func floatField(record []string, index map[string]int, name string) *float64 {
	v := field(record, index, name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (d *Dataset) buildCatalogs() {
	yearSet := make(map[int]struct{})
	regionSet := make(map[string]struct{})
	countrySet := make(map[string]struct{})
	for _, o := range d.rows {
		yearSet[o.Year] = struct{}{}
		if o.Region != "" {
			regionSet[o.Region] = struct{}{}
		}
		countrySet[o.Country] = struct{}{}
	}

	d.years = make([]int, 0, len(yearSet))
	for y := range yearSet {
		d.years = append(d.years, y)
	}
	sort.Ints(d.years)

	d.regions = make([]string, 0, len(regionSet))
	for r := range regionSet {
		d.regions = append(d.regions, r)
	}
	sort.Strings(d.regions)

	d.countries = make([]string, 0, len(countrySet))
	for c := range countrySet {
		d.countries = append(d.countries, c)
	}
	sort.Strings(d.countries)
}

// Rows returns the full table in source order. The slice is shared
// read-only state; callers must not mutate it.
func (d *Dataset) Rows() []schema.Observation { return d.rows }

// Years returns the sorted distinct years present in the dataset.
func (d *Dataset) Years() []int { return d.years }

// Regions returns the sorted distinct region codes.
func (d *Dataset) Regions() []string { return d.regions }

// Countries returns the sorted distinct country names.
func (d *Dataset) Countries() []string { return d.countries }

// LatestYear returns the most recent year in the dataset, 0 when empty.
func (d *Dataset) LatestYear() int {
	if len(d.years) == 0 {
		return 0
	}
	return d.years[len(d.years)-1]
}
