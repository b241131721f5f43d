package report

import "github.com/oohdesk/revenue-atlas/pkg/models/domain"

// LacUnit scales raw currency totals to lac for display.
const LacUnit = 100_000

// chartPalette is the fixed six-entry palette the chart renderer
// cycles over by index.
var chartPalette = []string{
	"rgba(255, 99, 132, 1)",
	"rgba(54, 162, 235, 1)",
	"rgba(255, 206, 86, 1)",
	"rgba(75, 192, 192, 1)",
	"rgba(153, 102, 255, 1)",
	"rgba(255, 159, 64, 1)",
}

// BuildChartSeries collapses totals into one lac-scaled value per
// group key, in insertion order. An all-zero result collapses to empty
// labels and values so the caller can render a placeholder instead of
// an empty chart.
func BuildChartSeries(totals *domain.AggregatedTotals) domain.ChartSeries {
	groups := totals.Groups()
	if len(groups) == 0 {
		return domain.ChartSeries{}
	}

	values := make([]float64, 0, len(groups))
	colors := make([]string, 0, len(groups))
	allZero := true
	for i, group := range groups {
		v := totals.GroupTotal(group) / LacUnit
		if v != 0 {
			allZero = false
		}
		values = append(values, v)
		colors = append(colors, chartPalette[i%len(chartPalette)])
	}

	if allZero {
		return domain.ChartSeries{}
	}

	return domain.ChartSeries{Labels: groups, Values: values, Colors: colors}
}
