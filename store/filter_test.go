package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

func f(v float64) *float64 { return &v }

func testDataset() *Dataset {
	return NewDataset([]schema.Observation{
		{Country: "A", Region: "R1", Year: 2019, PrevalencePer100k: f(10)},
		{Country: "B", Region: "R2", Year: 2019, PrevalencePer100k: f(20)},
		{Country: "A", Region: "R1", Year: 2020, PrevalencePer100k: f(15)},
		{Country: "C", Region: "R3", Year: 2021, PrevalencePer100k: f(30)},
	})
}

func TestFilterYearRangeInclusive(t *testing.T) {
	engine := NewFilterEngine(testDataset(), 0)

	rows := engine.Filter(schema.Selection{YearStart: 2019, YearEnd: 2019})

	require.Len(t, rows, 2)
	for _, o := range rows {
		assert.Equal(t, 2019, o.Year)
	}
}

func TestFilterRegionRestriction(t *testing.T) {
	engine := NewFilterEngine(testDataset(), 0)

	rows := engine.Filter(schema.Selection{
		YearStart: 2019,
		YearEnd:   2020,
		Regions:   []string{"R1"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Country)
	assert.Equal(t, 2019, rows[0].Year)
	assert.Equal(t, "A", rows[1].Country)
	assert.Equal(t, 2020, rows[1].Year)
}

func TestFilterEmptyRegionsMeansAll(t *testing.T) {
	engine := NewFilterEngine(testDataset(), 0)

	unrestricted := engine.Filter(schema.Selection{YearStart: 2019, YearEnd: 2021})
	allRegions := engine.Filter(schema.Selection{
		YearStart: 2019,
		YearEnd:   2021,
		Regions:   []string{"R1", "R2", "R3"},
	})

	assert.Equal(t, unrestricted, allRegions)
}

func TestFilterDeterminism(t *testing.T) {
	engine := NewFilterEngine(testDataset(), 0)
	sel := schema.Selection{YearStart: 2019, YearEnd: 2021, Regions: []string{"R1", "R2"}}

	first := engine.Filter(sel)
	second := engine.Filter(sel)

	assert.Equal(t, first, second)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	engine := NewFilterEngine(testDataset(), 0)

	rows := engine.Filter(schema.Selection{YearStart: 1990, YearEnd: 1995})

	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestFilterCacheKeyIgnoresRegionOrder(t *testing.T) {
	a := schema.Selection{YearStart: 2019, YearEnd: 2020, Regions: []string{"R2", "R1"}}
	b := schema.Selection{YearStart: 2019, YearEnd: 2020, Regions: []string{"R1", "R2", "R1"}}

	assert.Equal(t, a.Key(), b.Key())
}

func TestFilterCountry(t *testing.T) {
	rows := testDataset().Rows()

	assert.Len(t, FilterCountry(rows, "A"), 2)
	assert.Len(t, FilterCountry(rows, schema.GlobalCountry), 4)
	assert.Len(t, FilterCountry(rows, ""), 4)
	assert.Len(t, FilterCountry(rows, "Nowhere"), 0)
}

func TestFilterCountries(t *testing.T) {
	rows := testDataset().Rows()

	subset := FilterCountries(rows, []string{"A", "C"})
	require.Len(t, subset, 3)
	assert.Equal(t, "A", subset[0].Country)
	assert.Equal(t, "C", subset[2].Country)

	assert.Nil(t, FilterCountries(rows, nil))
}
