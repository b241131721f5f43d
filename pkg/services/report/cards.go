package report

import (
	"fmt"
	"time"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/services/calendar"
)

const cardDateFormat = "2 Jan, 2006"

// MonthToDateCard sums booking totals created between the first of the
// current month and the end of today.
func (e *Engine) MonthToDateCard(records []domain.BookingRecord, today time.Time) domain.RevenueCard {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return e.revenueCard("Month to Date", records, start, today)
}

// YearToDateCard sums booking totals created since the year opened:
// April 1st under fiscal policy, January 1st under calendar policy.
func (e *Engine) YearToDateCard(records []domain.BookingRecord, today time.Time) domain.RevenueCard {
	var start time.Time
	if e.policy == domain.YearPolicyCalendar {
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	} else {
		start = time.Date(calendar.FiscalYear(today), calendar.FiscalStartMonth, 1, 0, 0, 0, 0, today.Location())
	}
	return e.revenueCard("Year to Date", records, start, today)
}

func (e *Engine) revenueCard(title string, records []domain.BookingRecord, start, today time.Time) domain.RevenueCard {
	var total float64
	for _, b := range records {
		if calendar.InInclusiveRange(b.CreatedAt, start, today) {
			total += b.TotalAmount
		}
	}

	return domain.RevenueCard{
		Title:     title,
		DateRange: fmt.Sprintf("%s - %s", start.Format(cardDateFormat), today.Format(cardDateFormat)),
		Label:     "Revenue (lac)",
		Value:     formatLac(total),
	}
}
