package stats

import "sort"

// PercentChange computes the relative change from start to end as a
// percentage. The second return value is false when the change is not
// computable (zero baseline); callers render that as "N/A" rather than
// zero or infinity.
func PercentChange(start, end float64) (float64, bool) {
	if start == 0 {
		return 0, false
	}
	return (end - start) / start * 100, true
}

// PercentChangePtr is PercentChange over optional endpoints: a missing
// endpoint is not computable.
func PercentChangePtr(start, end *float64) (float64, bool) {
	if start == nil || end == nil {
		return 0, false
	}
	return PercentChange(*start, *end)
}

// YearChange is the percent change of a yearly series value against the
// immediately preceding year present in the series. Valid is false when
// the baseline year's value was zero.
type YearChange struct {
	Year   int
	Change float64
	Valid  bool
}

// YearOverYear computes per-year percent changes over a yearly series.
// Years are processed in ascending order; each change is taken against the
// immediately preceding year present in the series, so gaps are not
// interpolated. The first year has no baseline and is excluded from the
// result.
func YearOverYear(series map[int]float64) []YearChange {
	years := make([]int, 0, len(series))
	for y := range series {
		years = append(years, y)
	}
	sort.Ints(years)

	if len(years) < 2 {
		return nil
	}

	changes := make([]YearChange, 0, len(years)-1)
	for i := 1; i < len(years); i++ {
		change, ok := PercentChange(series[years[i-1]], series[years[i]])
		changes = append(changes, YearChange{Year: years[i], Change: change, Valid: ok})
	}
	return changes
}
