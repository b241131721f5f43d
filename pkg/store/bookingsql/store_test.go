package bookingsql

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oohdesk/revenue-atlas/pkg/models/store"
)

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestListBookings_AssemblesNestedRows(t *testing.T) {
	// Given
	s, mock := newMockStore(t)
	created := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, total_amount, created_at FROM bookings ORDER BY created_at DESC LIMIT ? OFFSET ?`)).
		WithArgs(1000, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "created_at"}).
			AddRow("b1", 100000.0, created))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, booking_id, campaign_id, created_at FROM booking_details WHERE booking_id IN (?)`)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "campaign_id", "created_at"}).
			AddRow("d1", "b1", "c1", created).
			AddRow("d2", "b1", nil, created))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, campaign_id, media_type, category FROM campaign_spaces WHERE campaign_id IN (?)`)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "media_type", "category"}).
			AddRow("s1", "c1", "Hoarding", "Retail").
			AddRow("s2", "c1", nil, nil))

	// When
	bookings, err := s.ListBookings(context.Background(), Query{})

	// Then
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, 100000.0, b.TotalAmount)
	require.Len(t, b.Details, 2)
	require.Len(t, b.Details[0].Spaces, 2)
	assert.Equal(t, "Hoarding", b.Details[0].Spaces[0].MediaType.String)
	assert.False(t, b.Details[0].Spaces[1].MediaType.Valid)
	// detail without a campaign keeps no spaces
	assert.Empty(t, b.Details[1].Spaces)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookings_SortWhitelistAndClamping(t *testing.T) {
	s, mock := newMockStore(t)

	// Unknown sort key falls back to created_at; page/limit clamp.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, total_amount, created_at FROM bookings ORDER BY created_at DESC LIMIT ? OFFSET ?`)).
		WithArgs(1000, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "created_at"}))

	bookings, err := s.ListBookings(context.Background(), Query{SortBy: "id; DROP TABLE", Page: -3})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookings_ExplicitSort(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, total_amount, created_at FROM bookings ORDER BY total_amount ASC LIMIT ? OFFSET ?`)).
		WithArgs(50, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "created_at"}))

	_, err := s.ListBookings(context.Background(), Query{
		Page: 3, Limit: 50, SortBy: "totalAmount", SortOrder: "asc",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBooking_MintsIdentifiers(t *testing.T) {
	// Given a seeded record with no ids anywhere
	s, mock := newMockStore(t)
	created := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO bookings (id, total_amount, created_at) VALUES (?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), 200000.0, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO booking_details (id, booking_id, campaign_id, created_at) VALUES (?, ?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO campaign_spaces (id, campaign_id, media_type, category) VALUES (?, ?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Hoarding", "Retail").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// When
	id, err := s.InsertBooking(context.Background(), store.Booking{
		TotalAmount: 200000,
		CreatedAt:   created,
		Details: []store.BookingDetail{{
			CreatedAt: created,
			Spaces: []store.Space{{
				MediaType: sql.NullString{String: "Hoarding", Valid: true},
				Category:  sql.NullString{String: "Retail", Valid: true},
			}},
		}},
	})

	// Then the booking id is a freshly minted uuid and all three rows landed
	require.NoError(t, err)
	assert.NoError(t, uuid.Validate(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBooking_PreservesGivenIdentifiers(t *testing.T) {
	s, mock := newMockStore(t)
	created := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO bookings (id, total_amount, created_at) VALUES (?, ?, ?)`)).
		WithArgs("b1", 100000.0, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO booking_details (id, booking_id, campaign_id, created_at) VALUES (?, ?, ?, ?)`)).
		WithArgs("d1", "b1", "c1", created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO campaign_spaces (id, campaign_id, media_type, category) VALUES (?, ?, ?, ?)`)).
		WithArgs("s1", "c1", "Digital", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := s.InsertBooking(context.Background(), store.Booking{
		ID: "b1", TotalAmount: 100000, CreatedAt: created,
		Details: []store.BookingDetail{{
			ID:         "d1",
			CampaignID: sql.NullString{String: "c1", Valid: true},
			CreatedAt:  created,
			Spaces: []store.Space{{
				ID: "s1", CampaignID: "c1",
				MediaType: sql.NullString{String: "Digital", Valid: true},
			}},
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBooking_RollsBackOnDetailFailure(t *testing.T) {
	s, mock := newMockStore(t)
	created := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO bookings (id, total_amount, created_at) VALUES (?, ?, ?)`)).
		WithArgs("b1", 100000.0, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO booking_details (id, booking_id, campaign_id, created_at) VALUES (?, ?, ?, ?)`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := s.InsertBooking(context.Background(), store.Booking{
		ID: "b1", TotalAmount: 100000, CreatedAt: created,
		Details: []store.BookingDetail{{ID: "d1", CreatedAt: created}},
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
