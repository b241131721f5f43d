package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

func TestBuildChartSeries_ScalesToLacInInsertionOrder(t *testing.T) {
	totals := domain.NewAggregatedTotals()
	totals.Add("Hoarding", "Jun", 150000)
	totals.Add("Hoarding", "Jul", 50000)
	totals.Add("Digital", "Jun", 300000)

	series := BuildChartSeries(totals)

	assert.Equal(t, []string{"Hoarding", "Digital"}, series.Labels)
	assert.Equal(t, []float64{2.0, 3.0}, series.Values)
}

func TestBuildChartSeries_PaletteCyclesOverSix(t *testing.T) {
	totals := domain.NewAggregatedTotals()
	groups := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, g := range groups {
		totals.Add(g, "Jun", 100000)
	}

	series := BuildChartSeries(totals)

	assert.Len(t, series.Colors, 8)
	assert.Equal(t, series.Colors[0], series.Colors[6])
	assert.Equal(t, series.Colors[1], series.Colors[7])
	assert.NotEqual(t, series.Colors[0], series.Colors[5])
}

func TestBuildChartSeries_AllZeroCollapsesToEmpty(t *testing.T) {
	totals := domain.NewAggregatedTotals()
	totals.Add("Hoarding", "Jun", 0)

	series := BuildChartSeries(totals)

	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Values)
}

func TestBuildChartSeries_EmptyTotals(t *testing.T) {
	series := BuildChartSeries(domain.NewAggregatedTotals())
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Values)
}
