package chart

import (
	"fmt"
	"math"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
	"github.com/Peter6188/tb-visualization-dashboard-V2/stats"
)

// NotComputable is the display sentinel for a percent change without a
// usable baseline.
const NotComputable = "N/A"

// SummaryCard is one key-indicator tile: the latest-year mean of a metric
// and its change against the preceding year.
type SummaryCard struct {
	Metric schema.MetricKind `json:"metric"`
	Label  string            `json:"label"`
	Value  *float64          `json:"value"`
	Change string            `json:"change"`
}

// SummaryCards builds one card per metric from current-year and
// previous-year observation subsets. A metric with no current-year data
// gets a nil value; a change without a baseline renders as N/A.
func SummaryCards(current, previous []schema.Observation) []SummaryCard {
	cards := make([]SummaryCard, 0, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		card := SummaryCard{Metric: m, Label: m.Label(), Change: NotComputable}

		if cur, ok := meanOf(current, m); ok {
			rounded := round1(cur)
			card.Value = &rounded

			if prev, okPrev := meanOf(previous, m); okPrev {
				if change, okChange := stats.PercentChange(prev, cur); okChange {
					card.Change = fmt.Sprintf("%+.1f%%", change)
				}
			}
		}

		cards = append(cards, card)
	}
	return cards
}

func meanOf(rows []schema.Observation, metric schema.MetricKind) (float64, bool) {
	sum := 0.0
	count := 0
	for _, o := range rows {
		if v := metric.Value(o); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
