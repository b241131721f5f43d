package store

import (
	"database/sql"
	"time"
)

// Booking is the assembled row shape handed to adapters. Details and
// spaces are joined in by the store, not by SQL nesting.
type Booking struct {
	ID          string    `db:"id"`
	TotalAmount float64   `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
	Details     []BookingDetail
}

type BookingDetail struct {
	ID         string         `db:"id"`
	BookingID  string         `db:"booking_id"`
	CampaignID sql.NullString `db:"campaign_id"`
	CreatedAt  time.Time      `db:"created_at"`
	Spaces     []Space
}

type Space struct {
	ID         string         `db:"id"`
	CampaignID string         `db:"campaign_id"`
	MediaType  sql.NullString `db:"media_type"`
	Category   sql.NullString `db:"category"`
}
