package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

const maxColumnWidth = 24

// Reporter renders report projections as plain-text grids. Column
// widths follow the content of each column, capped at maxColumnWidth.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// HandleTable prints the pivot table with a separator-framed header.
func (r *Reporter) HandleTable(title string, table domain.PivotTable) error {
	if len(table.Columns) == 0 {
		_, err := fmt.Fprintf(r.writer, "%s\n\nNo columns to render\n", title)
		return err
	}

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = clampWidth(len(col.Header))
		for _, row := range table.Rows {
			if w := clampWidth(len(row[col.AccessorKey])); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("\n" + title + "\n\n")
	b.WriteString(r.separator(widths))

	headers := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		headers[i] = col.Header
	}
	b.WriteString(r.formatRow(headers, widths))
	b.WriteString(r.separator(widths))

	for _, row := range table.Rows {
		cells := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			cells[i] = row[col.AccessorKey]
		}
		b.WriteString(r.formatRow(cells, widths))
	}
	b.WriteString(r.separator(widths))

	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

// HandleChart prints one "label: value L" line per group.
func (r *Reporter) HandleChart(title string, series domain.ChartSeries) error {
	var b strings.Builder
	b.WriteString("\n" + title + "\n\n")

	if len(series.Labels) == 0 {
		b.WriteString("Nothing to chart\n")
		_, err := fmt.Fprint(r.writer, b.String())
		return err
	}

	width := 0
	for _, l := range series.Labels {
		if len(l) > width {
			width = len(l)
		}
	}
	for i, label := range series.Labels {
		b.WriteString(fmt.Sprintf("%-*s  %.2f L\n", width, label, series.Values[i]))
	}

	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

// HandleCards prints the headline revenue cards.
func (r *Reporter) HandleCards(cards []domain.RevenueCard) error {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(fmt.Sprintf("\n%s (%s)\n%s: %s\n", c.Title, c.DateRange, c.Label, c.Value))
	}
	_, err := fmt.Fprint(r.writer, b.String())
	return err
}

func (r *Reporter) formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if len(cell) > widths[i] {
			cell = cell[:widths[i]-1] + "…"
		}
		parts[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
	}
	return "|" + strings.Join(parts, "|") + "|\n"
}

func (r *Reporter) separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

func clampWidth(w int) int {
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}
