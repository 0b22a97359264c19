package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Selection is the complete set of user-chosen filter values. A selection
// is created wholesale on every widget change and never partially mutated.
type Selection struct {
	YearStart int
	YearEnd   int
	Regions   []string
	Country   string
	Metric    MetricKind
}

var ErrInvalidYearRange = fmt.Errorf("year_start must not exceed year_end")

// Validate checks the internal consistency of the selection. An empty
// region list and the Global country sentinel are both valid (meaning "no
// restriction").
func (s Selection) Validate() error {
	if s.YearStart > s.YearEnd {
		return fmt.Errorf("%w: %d > %d", ErrInvalidYearRange, s.YearStart, s.YearEnd)
	}
	return nil
}

// Key returns the canonical memoization key for the selection's filter
// arguments. Region codes are sorted and deduplicated so that two
// selections with the same region set always hit the same cache entry,
// regardless of construction order. Country and metric do not participate:
// the filter step depends only on the year range and region set.
func (s Selection) Key() string {
	regions := make([]string, 0, len(s.Regions))
	seen := make(map[string]struct{}, len(s.Regions))
	for _, r := range s.Regions {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		regions = append(regions, r)
	}
	sort.Strings(regions)

	return fmt.Sprintf("%d|%d|%s", s.YearStart, s.YearEnd, strings.Join(regions, ","))
}
