package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

func f(v float64) *float64 { return &v }

func fixtureRows() []schema.Observation {
	return []schema.Observation{
		{Country: "A", Region: "R1", Year: 2019, PrevalencePer100k: f(10), PrevalencePer100kLow: f(8), PrevalencePer100kHigh: f(12)},
		{Country: "B", Region: "R2", Year: 2019, PrevalencePer100k: f(20)},
		{Country: "A", Region: "R1", Year: 2020, PrevalencePer100k: f(15), PrevalencePer100kLow: f(12), PrevalencePer100kHigh: f(18)},
	}
}

func TestMeanByCountry(t *testing.T) {
	means := MeanByCountry(fixtureRows(), schema.MetricPrevalence)

	assert.Equal(t, map[string]float64{"A": 12.5, "B": 20.0}, means)
}

func TestMeanBySkipsMissingValues(t *testing.T) {
	rows := []schema.Observation{
		{Country: "A", Region: "R1", Year: 2019, PrevalencePer100k: f(10)},
		{Country: "A", Region: "R1", Year: 2020},
		{Country: "C", Region: "R3", Year: 2019},
	}

	means := MeanByCountry(rows, schema.MetricPrevalence)

	// C has no usable values and is omitted, not reported as NaN
	assert.Equal(t, map[string]float64{"A": 10.0}, means)
}

func TestMeanByRegion(t *testing.T) {
	means := MeanByRegion(fixtureRows(), schema.MetricPrevalence)

	assert.Equal(t, map[string]float64{"R1": 12.5, "R2": 20.0}, means)
}

func TestMeanByYear(t *testing.T) {
	means := MeanByYear(fixtureRows(), schema.MetricPrevalence)

	assert.Equal(t, map[int]float64{2019: 15.0, 2020: 15.0}, means)
}

func TestMeanBandsByYear(t *testing.T) {
	bands := MeanBandsByYear(fixtureRows(), schema.MetricPrevalence)

	assert.Len(t, bands, 2)

	assert.Equal(t, 2019, bands[0].Year)
	assert.Equal(t, 15.0, bands[0].Mean)
	// only country A carried bounds in 2019
	assert.Equal(t, 8.0, *bands[0].Low)
	assert.Equal(t, 12.0, *bands[0].High)

	assert.Equal(t, 2020, bands[1].Year)
	assert.Equal(t, 15.0, bands[1].Mean)
	assert.Equal(t, 12.0, *bands[1].Low)
	assert.Equal(t, 18.0, *bands[1].High)
}

func TestMeanBandsByYearWithoutBounds(t *testing.T) {
	rows := []schema.Observation{
		{Country: "B", Region: "R2", Year: 2019, PrevalencePer100k: f(20)},
	}

	bands := MeanBandsByYear(rows, schema.MetricPrevalence)

	assert.Len(t, bands, 1)
	assert.Nil(t, bands[0].Low)
	assert.Nil(t, bands[0].High)
}

func TestCountryTable(t *testing.T) {
	rows := append(fixtureRows(), schema.Observation{
		Country: "A", Region: "R1", Year: 2021, MortalityPer100k: f(3),
	})

	table := CountryTable(rows)

	assert.Len(t, table, 2)
	assert.Equal(t, "A", table[0].Country)
	assert.Equal(t, "R1", table[0].Region)
	assert.Equal(t, 12.5, *table[0].Prevalence)
	assert.Equal(t, 3.0, *table[0].Mortality)
	assert.Nil(t, table[0].Incidence)

	assert.Equal(t, "B", table[1].Country)
	assert.Equal(t, 20.0, *table[1].Prevalence)
	assert.Nil(t, table[1].Mortality)
}

func TestTopN(t *testing.T) {
	top := TopN(fixtureRows(), schema.MetricPrevalence, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Country)
	assert.Equal(t, 20.0, *top[0].PrevalencePer100k)
	assert.Equal(t, 15.0, *top[1].PrevalencePer100k)
}

func TestTopNIgnoresMissingValues(t *testing.T) {
	rows := []schema.Observation{
		{Country: "A", Year: 2019},
		{Country: "B", Year: 2019, PrevalencePer100k: f(5)},
	}

	top := TopN(rows, schema.MetricPrevalence, 10)

	assert.Len(t, top, 1)
	assert.Equal(t, "B", top[0].Country)
}
