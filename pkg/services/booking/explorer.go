// Package booking is the query layer the reporting engine depends on:
// it fetches already-paginated booking records and hands them over as
// immutable domain input.
package booking

import (
	"context"
	"fmt"

	"github.com/oohdesk/revenue-atlas/pkg/adapters"
	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/store/bookingsql"
)

// DefaultLimit is the page size applied when the caller leaves the
// limit unset.
const DefaultLimit = bookingsql.DefaultLimit

// Query carries the caller-facing pagination parameters. Zero values
// fall back to the dashboard defaults: page 1, limit 1000, newest
// first by createdAt.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type Explorer interface {
	ListBookings(ctx context.Context, q Query) ([]domain.BookingRecord, error)
}

type explorer struct {
	store bookingsql.Store
}

func NewExplorer(store bookingsql.Store) Explorer {
	return &explorer{store: store}
}

func (e *explorer) ListBookings(ctx context.Context, q Query) ([]domain.BookingRecord, error) {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return nil, fmt.Errorf("invalid page %d: must be positive", q.Page)
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 {
		return nil, fmt.Errorf("invalid limit %d: must be positive", q.Limit)
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}

	rows, err := e.store.ListBookings(ctx, bookingsql.Query{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.BookingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, adapters.MapStoreBookingToDomain(row))
	}
	return records, nil
}
