// Package calendar holds the pure date arithmetic the reporting
// engine is built on. The fiscal year starts in April and is named
// after the calendar year of its April.
package calendar

import "time"

const FiscalStartMonth = time.April

// FiscalYear returns the fiscal year a date falls in: the calendar
// year for April..December, the previous one for January..March.
func FiscalYear(d time.Time) int {
	if d.Month() >= FiscalStartMonth {
		return d.Year()
	}
	return d.Year() - 1
}

// FiscalQuarter returns 1..4 counted from the fiscal year start, so
// April..June is Q1 and January..March is Q4.
func FiscalQuarter(d time.Time) int {
	fiscalMonth := (int(d.Month()) - int(FiscalStartMonth) + 12) % 12
	return fiscalMonth/3 + 1
}

// CalendarQuarter returns 1..4 over the calendar year. Distinct from
// FiscalQuarter; a report variant must pick one and stay with it.
func CalendarQuarter(d time.Time) int {
	return (int(d.Month())-1)/3 + 1
}

// MonthAbbrev is the three-letter month label used for year buckets.
func MonthAbbrev(m time.Month) string {
	return time.Date(2000, m, 1, 0, 0, 0, 0, time.UTC).Format("Jan")
}

// DayLabel formats a date as "Jan 2", the bucket label for day-level
// modes.
func DayLabel(d time.Time) string {
	return d.Format("Jan 2")
}

// Past7DayLabels returns the day labels for today back through six
// days ago, most recent first.
func Past7DayLabels(today time.Time) []string {
	labels := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		labels = append(labels, DayLabel(today.AddDate(0, 0, -i)))
	}
	return labels
}

// StartOfDay normalizes to 00:00:00.000.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay normalizes to 23:59:59.999.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), d.Location())
}

// InInclusiveRange reports whether ts falls inside [start, end] after
// start is floored to the start of its day and end is pushed to the
// end of its day.
func InInclusiveRange(ts, start, end time.Time) bool {
	from := StartOfDay(start)
	to := EndOfDay(end)
	return !ts.Before(from) && !ts.After(to)
}

// DaysInMonth returns the number of days in the month containing d.
func DaysInMonth(d time.Time) int {
	firstOfNext := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
