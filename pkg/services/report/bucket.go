package report

import (
	"strconv"
	"time"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/services/calendar"
)

// SelectBucket maps a record timestamp to its bucket label under the
// query's time mode, or ok=false when the record falls outside the
// window. Records outside the window are excluded entirely, never
// zero-filled.
func (e *Engine) SelectBucket(q domain.ReportQuery, ts time.Time) (string, bool) {
	switch q.Mode {
	case domain.TimeModePast10Years:
		return e.pastYearsBucket(q.Today, ts, 10)

	case domain.TimeModePast5Years:
		return e.pastYearsBucket(q.Today, ts, 5)

	case domain.TimeModePreviousYear:
		if e.year(ts) != e.year(q.Today)-1 {
			return "", false
		}
		return calendar.MonthAbbrev(ts.Month()), true

	case domain.TimeModeCurrentYear:
		if e.year(ts) != e.year(q.Today) {
			return "", false
		}
		return calendar.MonthAbbrev(ts.Month()), true

	case domain.TimeModeCurrentMonth:
		if ts.Year() != q.Today.Year() || ts.Month() != q.Today.Month() {
			return "", false
		}
		return strconv.Itoa(ts.Day()), true

	case domain.TimeModePast7:
		label := calendar.DayLabel(ts)
		for _, l := range calendar.Past7DayLabels(q.Today) {
			if l == label {
				return label, true
			}
		}
		return "", false

	case domain.TimeModeCustomDate:
		// An incomplete range matches nothing.
		if q.StartDate == nil || q.EndDate == nil {
			return "", false
		}
		if !calendar.InInclusiveRange(ts, *q.StartDate, *q.EndDate) {
			return "", false
		}
		return calendar.DayLabel(ts), true

	case domain.TimeModeQuarter:
		if e.year(ts) != e.year(q.Today) {
			return "", false
		}
		return "Q" + strconv.Itoa(e.quarter(ts)), true
	}

	return "", false
}

func (e *Engine) pastYearsBucket(today, ts time.Time, span int) (string, bool) {
	refYear := e.year(today)
	y := e.year(ts)
	if y < refYear-span || y >= refYear {
		return "", false
	}
	return strconv.Itoa(y), true
}

// BucketColumns returns the full ordered column label set for the
// query's mode, independent of which buckets actually hold data, so
// sparse data still renders complete, stable columns.
func (e *Engine) BucketColumns(q domain.ReportQuery) []string {
	switch q.Mode {
	case domain.TimeModePast10Years:
		return e.pastYearColumns(q.Today, 10)

	case domain.TimeModePast5Years:
		return e.pastYearColumns(q.Today, 5)

	case domain.TimeModePreviousYear, domain.TimeModeCurrentYear:
		return e.monthColumns()

	case domain.TimeModeQuarter:
		return []string{"Q1", "Q2", "Q3", "Q4"}

	case domain.TimeModeCurrentMonth:
		days := calendar.DaysInMonth(q.Today)
		cols := make([]string, 0, days)
		for d := 1; d <= days; d++ {
			cols = append(cols, strconv.Itoa(d))
		}
		return cols

	case domain.TimeModePast7:
		labels := calendar.Past7DayLabels(q.Today)
		cols := make([]string, 0, len(labels))
		for i := len(labels) - 1; i >= 0; i-- {
			cols = append(cols, labels[i])
		}
		return cols

	case domain.TimeModeCustomDate:
		if q.StartDate == nil || q.EndDate == nil {
			return nil
		}
		var cols []string
		end := calendar.StartOfDay(*q.EndDate)
		for d := calendar.StartOfDay(*q.StartDate); !d.After(end); d = d.AddDate(0, 0, 1) {
			cols = append(cols, calendar.DayLabel(d))
		}
		return cols
	}

	return nil
}

func (e *Engine) pastYearColumns(today time.Time, span int) []string {
	refYear := e.year(today)
	cols := make([]string, 0, span)
	for y := refYear - span; y < refYear; y++ {
		cols = append(cols, strconv.Itoa(y))
	}
	return cols
}

// monthColumns runs April..March under fiscal policy so a fiscal year
// reads contiguously, and January..December under calendar policy.
func (e *Engine) monthColumns() []string {
	start := calendar.FiscalStartMonth
	if e.policy == domain.YearPolicyCalendar {
		start = time.January
	}
	cols := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		m := time.Month((int(start)-1+i)%12 + 1)
		cols = append(cols, calendar.MonthAbbrev(m))
	}
	return cols
}
