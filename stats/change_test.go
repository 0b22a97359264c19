package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	change, ok := PercentChange(10, 15)
	assert.True(t, ok)
	assert.Equal(t, 50.0, change)

	change, ok = PercentChange(20, 10)
	assert.True(t, ok)
	assert.Equal(t, -50.0, change)
}

func TestPercentChangeZeroBaseline(t *testing.T) {
	for _, end := range []float64{0, 1, -3, 1e12} {
		_, ok := PercentChange(0, end)
		assert.False(t, ok)
	}
}

func TestPercentChangePtrMissingEndpoint(t *testing.T) {
	v := 10.0

	_, ok := PercentChangePtr(nil, &v)
	assert.False(t, ok)

	_, ok = PercentChangePtr(&v, nil)
	assert.False(t, ok)

	change, ok := PercentChangePtr(&v, &v)
	assert.True(t, ok)
	assert.Equal(t, 0.0, change)
}

func TestYearOverYearExcludesFirstYear(t *testing.T) {
	changes := YearOverYear(map[int]float64{
		2010: 5,
		2011: 10,
		2012: 20,
	})

	assert.Equal(t, []YearChange{
		{Year: 2011, Change: 100.0, Valid: true},
		{Year: 2012, Change: 100.0, Valid: true},
	}, changes)
}

func TestYearOverYearSkipsGapsWithoutInterpolation(t *testing.T) {
	// 2013 is absent; 2015 is compared against 2012
	changes := YearOverYear(map[int]float64{
		2012: 10,
		2015: 25,
	})

	assert.Equal(t, []YearChange{
		{Year: 2015, Change: 150.0, Valid: true},
	}, changes)
}

func TestYearOverYearZeroBaseline(t *testing.T) {
	changes := YearOverYear(map[int]float64{
		2010: 0,
		2011: 7,
	})

	assert.Len(t, changes, 1)
	assert.Equal(t, 2011, changes[0].Year)
	assert.False(t, changes[0].Valid)
}

func TestYearOverYearTooShort(t *testing.T) {
	assert.Nil(t, YearOverYear(nil))
	assert.Nil(t, YearOverYear(map[int]float64{2010: 5}))
}
