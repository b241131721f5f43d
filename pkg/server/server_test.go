package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oohdesk/revenue-atlas/pkg/models/api"
	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/services/booking"
	"github.com/oohdesk/revenue-atlas/pkg/services/report"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) ListBookings(ctx context.Context, q booking.Query) ([]domain.BookingRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRecord), args.Error(1)
}

func newTestAPI(explorer booking.Explorer) *WebAPI {
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return NewWebAPI(logger, Config{
		Addr: ":0",
		Dependencies: Dependencies{
			Bookings: explorer,
			Engine:   report.NewEngine(report.Options{}),
		},
	})
}

func TestRoutes_RevenueTable(t *testing.T) {
	detailAt := time.Now().AddDate(0, 0, -1)
	explorer := new(mockExplorer)
	explorer.On("ListBookings", mock.Anything, booking.Query{}).Return([]domain.BookingRecord{{
		ID: "b1", TotalAmount: 100000, CreatedAt: detailAt,
		Details: []domain.BookingDetail{{
			CreatedAt: detailAt,
			Campaign: &domain.Campaign{Spaces: []domain.Space{{
				BasicInformation: domain.BasicInformation{MediaType: &domain.MediaType{Name: "Hoarding"}},
			}}},
		}},
	}}, nil)

	webAPI := newTestAPI(explorer)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue/table?mode=past7&dimension=mediaType", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response api.TableResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	// dimension + 7 days + grand total
	assert.Len(t, response.Columns, 9)
	require.Len(t, response.Rows, 2)
	assert.Equal(t, "Hoarding", response.Rows[0]["mediaType"])
}

func TestRoutes_NoMatchingBookings(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListBookings", mock.Anything, booking.Query{}).Return([]domain.BookingRecord{}, nil)

	webAPI := newTestAPI(explorer)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue/table?mode=past7&dimension=mediaType", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var table api.TableResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&table))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "No Data Available", table.Rows[0]["mediaType"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reports/revenue/chart?mode=past7&dimension=mediaType", nil)
	rec = httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var chart api.ChartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&chart))
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Values)
}

func TestRoutes_UnknownPath(t *testing.T) {
	webAPI := newTestAPI(new(mockExplorer))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
