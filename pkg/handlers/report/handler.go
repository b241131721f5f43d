package report

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/oohdesk/revenue-atlas/pkg/adapters"
	"github.com/oohdesk/revenue-atlas/pkg/models/api"
	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/services/booking"
	reportsvc "github.com/oohdesk/revenue-atlas/pkg/services/report"
)

const dateLayout = "2006-01-02"

type Handler struct {
	bookings booking.Explorer
	engine   *reportsvc.Engine
	now      func() time.Time
}

// NewHandler wires the report endpoints. now may be nil outside tests.
func NewHandler(bookings booking.Explorer, engine *reportsvc.Engine, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{bookings: bookings, engine: engine, now: now}
}

func (h *Handler) GetRevenueChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	q, ok := h.parseReportQuery(w, r)
	if !ok {
		return
	}

	records, err := h.bookings.ListBookings(ctx, booking.Query{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list bookings for chart")
		http.Error(w, "failed to load bookings", http.StatusInternalServerError)
		return
	}

	totals := h.engine.Aggregate(ctx, records, q)
	series := reportsvc.BuildChartSeries(totals)

	h.writeJSON(ctx, w, adapters.MapChartSeriesDomainToAPI(series))
}

func (h *Handler) GetRevenueTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	q, ok := h.parseReportQuery(w, r)
	if !ok {
		return
	}

	records, err := h.bookings.ListBookings(ctx, booking.Query{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list bookings for table")
		http.Error(w, "failed to load bookings", http.StatusInternalServerError)
		return
	}

	totals := h.engine.Aggregate(ctx, records, q)
	table := h.engine.BuildPivotTable(totals, q)

	h.writeJSON(ctx, w, adapters.MapPivotTableDomainToAPI(table))
}

func (h *Handler) GetRevenueCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	records, err := h.bookings.ListBookings(ctx, booking.Query{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list bookings for cards")
		http.Error(w, "failed to load bookings", http.StatusInternalServerError)
		return
	}

	today := h.now()
	response := api.RevenueCardsResponse{Cards: []api.RevenueCard{
		adapters.MapRevenueCardDomainToAPI(h.engine.MonthToDateCard(records, today)),
		adapters.MapRevenueCardDomainToAPI(h.engine.YearToDateCard(records, today)),
	}}

	h.writeJSON(ctx, w, response)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	q := booking.Query{
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}
	var ok bool
	if q.Page, ok = h.parseIntParam(w, r, "page"); !ok {
		return
	}
	if q.Limit, ok = h.parseIntParam(w, r, "limit"); !ok {
		return
	}

	records, err := h.bookings.ListBookings(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list bookings")
		http.Error(w, "failed to load bookings", http.StatusInternalServerError)
		return
	}

	// the envelope echoes the pagination the explorer actually applied
	page := api.BookingPage{Docs: []api.Booking{}, Page: q.Page, Limit: q.Limit}
	if page.Page == 0 {
		page.Page = 1
	}
	if page.Limit == 0 {
		page.Limit = booking.DefaultLimit
	}
	for _, rec := range records {
		page.Docs = append(page.Docs, adapters.MapDomainBookingToAPI(rec))
	}

	h.writeJSON(ctx, w, page)
}

// parseReportQuery reads the filter selection. Unset mode or dimension
// is a valid "awaiting selection" state; unknown values are rejected.
func (h *Handler) parseReportQuery(w http.ResponseWriter, r *http.Request) (domain.ReportQuery, bool) {
	params := r.URL.Query()

	q := domain.ReportQuery{
		Mode:      domain.TimeMode(params.Get("mode")),
		Dimension: domain.Dimension(params.Get("dimension")),
		Today:     h.now(),
	}

	if q.Mode != domain.TimeModeUnset && !q.Mode.Valid() {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return domain.ReportQuery{}, false
	}
	if q.Dimension != domain.DimensionUnset && !q.Dimension.Valid() {
		http.Error(w, "unknown dimension", http.StatusBadRequest)
		return domain.ReportQuery{}, false
	}

	for name, dst := range map[string]**time.Time{
		"startDate": &q.StartDate,
		"endDate":   &q.EndDate,
	} {
		raw := params.Get(name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "invalid "+name+": expected YYYY-MM-DD", http.StatusBadRequest)
			return domain.ReportQuery{}, false
		}
		*dst = &parsed
	}

	return q, true
}

func (h *Handler) parseIntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid "+name+": expected integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
