package domain

import "time"

// TimeMode selects the bucketing policy for a report.
type TimeMode string

const (
	TimeModeUnset        TimeMode = ""
	TimeModePast10Years  TimeMode = "past10Years"
	TimeModePast5Years   TimeMode = "past5Years"
	TimeModePreviousYear TimeMode = "previousYear"
	TimeModeCurrentYear  TimeMode = "currentYear"
	TimeModeQuarter      TimeMode = "quarter"
	TimeModeCurrentMonth TimeMode = "currentMonth"
	TimeModePast7        TimeMode = "past7"
	TimeModeCustomDate   TimeMode = "customDate"
)

func (m TimeMode) Valid() bool {
	switch m {
	case TimeModePast10Years, TimeModePast5Years, TimeModePreviousYear,
		TimeModeCurrentYear, TimeModeQuarter, TimeModeCurrentMonth,
		TimeModePast7, TimeModeCustomDate:
		return true
	}
	return false
}

// Dimension selects the grouping axis.
type Dimension string

const (
	DimensionUnset     Dimension = ""
	DimensionMediaType Dimension = "mediaType"
	DimensionCategory  Dimension = "category"
)

func (d Dimension) Valid() bool {
	return d == DimensionMediaType || d == DimensionCategory
}

// Label is the human-facing column header for the dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionMediaType:
		return "Media Type"
	case DimensionCategory:
		return "Category"
	}
	return ""
}

// YearPolicy fixes the year/quarter semantics for the whole engine.
// Fiscal years start in April and carry the calendar year of their
// April; fiscal is the default everywhere.
type YearPolicy string

const (
	YearPolicyFiscal   YearPolicy = "fiscal"
	YearPolicyCalendar YearPolicy = "calendar"
)

// ReportQuery is the filter selection state one report run is keyed
// by. Today is threaded explicitly so time-relative modes stay
// deterministic. StartDate/EndDate apply to customDate only; both
// must be set or the selection matches nothing.
type ReportQuery struct {
	Mode      TimeMode
	Dimension Dimension
	Today     time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

// AggregatedTotals is the two-level revenue mapping produced by one
// aggregation pass: group key -> bucket label -> raw summed amount.
// Group order is insertion order (first-seen wins), which downstream
// projections rely on for stable labels and rows.
type AggregatedTotals struct {
	groups []string
	cells  map[string]map[string]float64
}

func NewAggregatedTotals() *AggregatedTotals {
	return &AggregatedTotals{cells: make(map[string]map[string]float64)}
}

// Add accumulates amount into (group, bucket), initializing nested
// entries on first touch.
func (t *AggregatedTotals) Add(group, bucket string, amount float64) {
	buckets, ok := t.cells[group]
	if !ok {
		buckets = make(map[string]float64)
		t.cells[group] = buckets
		t.groups = append(t.groups, group)
	}
	buckets[bucket] += amount
}

// Groups returns group keys in insertion order.
func (t *AggregatedTotals) Groups() []string {
	out := make([]string, len(t.groups))
	copy(out, t.groups)
	return out
}

// Cell returns the raw amount for (group, bucket), zero when absent.
func (t *AggregatedTotals) Cell(group, bucket string) float64 {
	return t.cells[group][bucket]
}

// GroupTotal sums every bucket of one group.
func (t *AggregatedTotals) GroupTotal(group string) float64 {
	var total float64
	for _, v := range t.cells[group] {
		total += v
	}
	return total
}

func (t *AggregatedTotals) Empty() bool {
	return len(t.groups) == 0
}

// ChartSeries is the chart-ready projection: one value per group key,
// scaled to lac units. Colors cycle over the fixed palette.
type ChartSeries struct {
	Labels []string
	Values []float64
	Colors []string
}

// Column describes one pivot table column in render order.
type Column struct {
	Header      string
	AccessorKey string
}

// PivotRow maps accessor keys to display strings.
type PivotRow map[string]string

// PivotTable is the table-ready projection: ordered column
// descriptors plus one row per group and a trailing grand total row.
type PivotTable struct {
	Columns []Column
	Rows    []PivotRow
}

// RevenueCard is a single headline revenue figure over a date range.
type RevenueCard struct {
	Title     string
	DateRange string
	Label     string
	Value     string
}
