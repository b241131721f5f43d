// Package bookingsql reads booking records out of the bookings MySQL
// schema. It owns pagination and sorting; the reporting engine never
// touches the database.
package bookingsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/oohdesk/revenue-atlas/pkg/models/store"
)

const (
	DefaultLimit = 1000
	maxLimit     = 5000
)

// sortColumns whitelists the caller-facing sort keys.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"totalAmount": "total_amount",
}

// Query is the pagination and sorting envelope of the query layer.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type Store interface {
	ListBookings(ctx context.Context, q Query) ([]store.Booking, error)
	InsertBooking(ctx context.Context, b store.Booking) (string, error)
}

type bookingStore struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) Store {
	return &bookingStore{db: db}
}

func (s *bookingStore) ListBookings(ctx context.Context, q Query) ([]store.Booking, error) {
	logger := zerolog.Ctx(ctx)

	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = sortColumns["createdAt"]
	}
	dir := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		dir = "ASC"
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var bookings []store.Booking
	query := fmt.Sprintf(
		`SELECT id, total_amount, created_at FROM bookings ORDER BY %s %s LIMIT ? OFFSET ?`,
		col, dir,
	)
	err := s.db.SelectContext(ctx, &bookings, query, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	bookingIDs := make([]string, 0, len(bookings))
	index := make(map[string]int, len(bookings))
	for i, b := range bookings {
		bookingIDs = append(bookingIDs, b.ID)
		index[b.ID] = i
	}

	details, err := s.listDetails(ctx, bookingIDs)
	if err != nil {
		return nil, err
	}

	for _, d := range details {
		i, ok := index[d.BookingID]
		if !ok {
			continue
		}
		bookings[i].Details = append(bookings[i].Details, d)
	}

	logger.Debug().
		Int("bookings", len(bookings)).
		Int("details", len(details)).
		Msg("listed bookings")

	return bookings, nil
}

func (s *bookingStore) listDetails(ctx context.Context, bookingIDs []string) ([]store.BookingDetail, error) {
	query, args, err := sqlx.In(
		`SELECT id, booking_id, campaign_id, created_at FROM booking_details WHERE booking_id IN (?)`,
		bookingIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build details query failed: %w", err)
	}

	var details []store.BookingDetail
	err = s.db.SelectContext(ctx, &details, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list booking details failed: %w", err)
	}
	if len(details) == 0 {
		return nil, nil
	}

	var campaignIDs []string
	seen := make(map[string]bool)
	for _, d := range details {
		if d.CampaignID.Valid && !seen[d.CampaignID.String] {
			seen[d.CampaignID.String] = true
			campaignIDs = append(campaignIDs, d.CampaignID.String)
		}
	}
	if len(campaignIDs) == 0 {
		return details, nil
	}

	spaces, err := s.listSpaces(ctx, campaignIDs)
	if err != nil {
		return nil, err
	}

	byCampaign := make(map[string][]store.Space)
	for _, sp := range spaces {
		byCampaign[sp.CampaignID] = append(byCampaign[sp.CampaignID], sp)
	}
	for i := range details {
		if details[i].CampaignID.Valid {
			details[i].Spaces = byCampaign[details[i].CampaignID.String]
		}
	}

	return details, nil
}

func (s *bookingStore) listSpaces(ctx context.Context, campaignIDs []string) ([]store.Space, error) {
	query, args, err := sqlx.In(
		`SELECT id, campaign_id, media_type, category FROM campaign_spaces WHERE campaign_id IN (?)`,
		campaignIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build spaces query failed: %w", err)
	}

	var spaces []store.Space
	err = s.db.SelectContext(ctx, &spaces, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list campaign spaces failed: %w", err)
	}
	return spaces, nil
}

// InsertBooking writes one booking with its details and spaces, minting
// ids where missing. Seeded records come in without ids, so a detail
// that carries spaces but no campaign gets a fresh campaign id shared
// with its spaces. Backs the seed command, not report serving.
func (s *bookingStore) InsertBooking(ctx context.Context, b store.Booking) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin insert booking failed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookings (id, total_amount, created_at) VALUES (?, ?, ?)`,
		b.ID, b.TotalAmount, b.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert booking failed: %w", err)
	}

	for _, d := range b.Details {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		if len(d.Spaces) > 0 && !d.CampaignID.Valid {
			d.CampaignID = sql.NullString{String: uuid.NewString(), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO booking_details (id, booking_id, campaign_id, created_at) VALUES (?, ?, ?, ?)`,
			d.ID, b.ID, d.CampaignID, d.CreatedAt,
		)
		if err != nil {
			return "", fmt.Errorf("insert booking detail failed: %w", err)
		}

		for _, sp := range d.Spaces {
			if sp.ID == "" {
				sp.ID = uuid.NewString()
			}
			if sp.CampaignID == "" {
				sp.CampaignID = d.CampaignID.String
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO campaign_spaces (id, campaign_id, media_type, category) VALUES (?, ?, ?, ?)`,
				sp.ID, sp.CampaignID, sp.MediaType, sp.Category,
			)
			if err != nil {
				return "", fmt.Errorf("insert campaign space failed: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit insert booking failed: %w", err)
	}
	return b.ID, nil
}
