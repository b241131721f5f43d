package report

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

// Aggregate walks every detail of every booking and every space of
// each detail's campaign, accumulating booking totals into
// (group, bucket) cells. Malformed or out-of-window line items are
// skipped silently; an unset mode or dimension yields an empty result,
// the valid "no selection yet" state.
func (e *Engine) Aggregate(
	ctx context.Context,
	records []domain.BookingRecord,
	q domain.ReportQuery,
) *domain.AggregatedTotals {
	logger := zerolog.Ctx(ctx)
	totals := domain.NewAggregatedTotals()

	if !q.Mode.Valid() || !q.Dimension.Valid() {
		return totals
	}

	for _, booking := range records {
		for _, detail := range booking.Details {
			if detail.Campaign == nil {
				e.skip(SkipNoCampaign, booking.ID)
				continue
			}
			if len(detail.Campaign.Spaces) == 0 {
				e.skip(SkipNoSpaces, booking.ID)
				continue
			}

			bucket, ok := e.SelectBucket(q, detail.CreatedAt)
			if !ok {
				e.skip(SkipNoBucket, booking.ID)
				continue
			}

			counted := false
			for _, space := range detail.Campaign.Spaces {
				group, ok := space.GroupKey(q.Dimension)
				if !ok {
					e.skip(SkipNoGroupKey, booking.ID)
					continue
				}
				if e.singleCount && counted {
					continue
				}
				totals.Add(group, bucket, booking.TotalAmount)
				counted = true
			}
		}
	}

	logger.Debug().
		Str("mode", string(q.Mode)).
		Str("dimension", string(q.Dimension)).
		Int("groups", len(totals.Groups())).
		Int("bookings", len(records)).
		Msg("aggregated booking revenue")

	return totals
}
