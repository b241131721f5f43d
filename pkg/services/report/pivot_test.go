package report

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

func TestBuildPivotTable_CurrentYearHasAllTwelveMonthColumns(t *testing.T) {
	e := NewEngine(Options{})
	totals := domain.NewAggregatedTotals()
	totals.Add("Hoarding", "Jun", 200000)

	table := e.BuildPivotTable(totals, query(domain.TimeModeCurrentYear))

	// dimension + 12 months + grand total
	require.Len(t, table.Columns, 14)
	assert.Equal(t, "Media Type", table.Columns[0].Header)
	assert.Equal(t, "mediaType", table.Columns[0].AccessorKey)
	assert.Equal(t, "Apr", table.Columns[1].Header)
	assert.Equal(t, "Mar", table.Columns[12].Header)
	assert.Equal(t, GrandTotalKey, table.Columns[13].Header)
}

func TestBuildPivotTable_CellsAndGrandTotals(t *testing.T) {
	e := NewEngine(Options{})
	totals := domain.NewAggregatedTotals()
	totals.Add("Hoarding", "Jun", 150000)
	totals.Add("Hoarding", "Jul", 50000)
	totals.Add("Digital", "Jun", 300000)

	table := e.BuildPivotTable(totals, query(domain.TimeModeCurrentYear))

	require.Len(t, table.Rows, 3)

	hoarding := table.Rows[0]
	assert.Equal(t, "Hoarding", hoarding["mediaType"])
	assert.Equal(t, "1.50", hoarding["Jun"])
	assert.Equal(t, "0.50", hoarding["Jul"])
	assert.Equal(t, EmptyCell, hoarding["Aug"])
	assert.Equal(t, "2.00", hoarding[GrandTotalKey])

	digital := table.Rows[1]
	assert.Equal(t, "3.00", digital["Jun"])
	assert.Equal(t, EmptyCell, digital["Jul"])
	assert.Equal(t, "3.00", digital[GrandTotalKey])

	grand := table.Rows[2]
	assert.Equal(t, GrandTotalKey, grand["mediaType"])
	assert.Equal(t, "4.50", grand["Jun"])
	assert.Equal(t, "0.50", grand["Jul"])
	assert.Equal(t, EmptyCell, grand["Aug"])
	assert.Equal(t, "5.00", grand[GrandTotalKey])
}

func TestBuildPivotTable_EmptyTotalsReturnsNoDataRow(t *testing.T) {
	e := NewEngine(Options{})

	table := e.BuildPivotTable(domain.NewAggregatedTotals(), query(domain.TimeModePast7))

	require.Len(t, table.Columns, 1)
	assert.Equal(t, "mediaType", table.Columns[0].AccessorKey)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, NoDataCell, table.Rows[0]["mediaType"])
}

func TestBuildPivotTable_UnsetDimensionReturnsZeroTable(t *testing.T) {
	e := NewEngine(Options{})
	q := domain.ReportQuery{Mode: domain.TimeModeCurrentYear, Today: today}

	table := e.BuildPivotTable(domain.NewAggregatedTotals(), q)

	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

// Conservation: the pivot's cell sum equals the chart's value sum,
// modulo the lac scale factor, since both project the same totals.
func TestPivotAndChartConserveTotals(t *testing.T) {
	e := NewEngine(Options{})
	records := []domain.BookingRecord{
		booking("b1", 100000, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), mediaSpace("Hoarding")),
		booking("b2", 250000, time.Date(2024, time.August, 7, 0, 0, 0, 0, time.UTC), mediaSpace("Hoarding")),
		booking("b3", 400000, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), mediaSpace("Digital")),
	}
	q := query(domain.TimeModeCurrentYear)
	totals := e.Aggregate(context.Background(), records, q)

	table := e.BuildPivotTable(totals, q)
	series := BuildChartSeries(totals)

	var chartSum float64
	for _, v := range series.Values {
		chartSum += v
	}

	var cellSum float64
	for _, row := range table.Rows[:len(table.Rows)-1] {
		for _, col := range table.Columns[1 : len(table.Columns)-1] {
			cell := row[col.AccessorKey]
			if cell == EmptyCell {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
			cellSum += v
		}
	}

	assert.InDelta(t, chartSum, cellSum, 0.001)
	assert.InDelta(t, 7.5, cellSum, 0.001)
}
