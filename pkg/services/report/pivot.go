package report

import (
	"fmt"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

const (
	// GrandTotalKey is the accessor for the appended total column and
	// the dimension cell of the appended total row.
	GrandTotalKey = "Grand Total"

	// EmptyCell marks a bucket with no revenue.
	EmptyCell = "-"

	// NoDataCell is the single-cell row returned for an empty result.
	NoDataCell = "No Data Available"
)

// BuildPivotTable expands totals into one row per group key and one
// column per bucket of the query's full column set, with a grand total
// column per row and a grand total row per column. Cells are
// lac-scaled two-decimal strings, "-" when empty. An unset dimension
// means no selection was made yet; that yields a zero table rather
// than columns keyed by the empty string.
func (e *Engine) BuildPivotTable(totals *domain.AggregatedTotals, q domain.ReportQuery) domain.PivotTable {
	if q.Dimension == domain.DimensionUnset {
		return domain.PivotTable{}
	}

	dimKey := string(q.Dimension)

	if totals.Empty() {
		return domain.PivotTable{
			Columns: []domain.Column{{Header: q.Dimension.Label(), AccessorKey: dimKey}},
			Rows:    []domain.PivotRow{{dimKey: NoDataCell}},
		}
	}

	buckets := e.BucketColumns(q)

	columns := make([]domain.Column, 0, len(buckets)+2)
	columns = append(columns, domain.Column{Header: q.Dimension.Label(), AccessorKey: dimKey})
	for _, b := range buckets {
		columns = append(columns, domain.Column{Header: b, AccessorKey: b})
	}
	columns = append(columns, domain.Column{Header: GrandTotalKey, AccessorKey: GrandTotalKey})

	rows := make([]domain.PivotRow, 0, len(totals.Groups())+1)
	columnTotals := make(map[string]float64, len(buckets))
	var overall float64

	for _, group := range totals.Groups() {
		row := domain.PivotRow{dimKey: group}
		var rowTotal float64
		for _, b := range buckets {
			raw := totals.Cell(group, b)
			row[b] = formatLacCell(raw)
			rowTotal += raw
			columnTotals[b] += raw
		}
		row[GrandTotalKey] = formatLac(rowTotal)
		overall += rowTotal
		rows = append(rows, row)
	}

	totalRow := domain.PivotRow{dimKey: GrandTotalKey}
	for _, b := range buckets {
		totalRow[b] = formatLacCell(columnTotals[b])
	}
	totalRow[GrandTotalKey] = formatLac(overall)
	rows = append(rows, totalRow)

	return domain.PivotTable{Columns: columns, Rows: rows}
}

func formatLac(raw float64) string {
	return fmt.Sprintf("%.2f", raw/LacUnit)
}

func formatLacCell(raw float64) string {
	if raw > 0 {
		return formatLac(raw)
	}
	return EmptyCell
}
