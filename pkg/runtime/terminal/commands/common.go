package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oohdesk/revenue-atlas/pkg/adapters"
	"github.com/oohdesk/revenue-atlas/pkg/models/api"
	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/services/report"
)

const dateLayout = "2006-01-02"

// reportFlags are the filter selection flags shared by every report
// subcommand.
type reportFlags struct {
	input       string
	mode        string
	dimension   string
	start       string
	end         string
	policy      string
	singleCount bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Path to a bookings JSON file (required)")
	cmd.Flags().StringVar(&f.policy, "policy", string(domain.YearPolicyFiscal), "Year semantics: fiscal or calendar")
	cmd.Flags().BoolVar(&f.singleCount, "single-count", false, "Attribute a detail's total once instead of once per space")
	_ = cmd.MarkFlagRequired("input")
}

func (f *reportFlags) registerSelection(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Time window: past10Years|past5Years|previousYear|currentYear|quarter|currentMonth|past7|customDate")
	cmd.Flags().StringVarP(&f.dimension, "dimension", "d", "", "Grouping: mediaType|category")
	cmd.Flags().StringVar(&f.start, "start", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "Custom range end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.MarkFlagRequired("dimension")
}

func (f *reportFlags) engine() (*report.Engine, error) {
	policy := domain.YearPolicy(f.policy)
	if policy != domain.YearPolicyFiscal && policy != domain.YearPolicyCalendar {
		return nil, fmt.Errorf("unknown policy %q: must be fiscal or calendar", f.policy)
	}
	return report.NewEngine(report.Options{
		Policy:            policy,
		SingleCountSpaces: f.singleCount,
	}), nil
}

func (f *reportFlags) query(today time.Time) (domain.ReportQuery, error) {
	mode := domain.TimeMode(f.mode)
	if !mode.Valid() {
		return domain.ReportQuery{}, fmt.Errorf("unknown mode %q", f.mode)
	}
	dimension := domain.Dimension(f.dimension)
	if !dimension.Valid() {
		return domain.ReportQuery{}, fmt.Errorf("unknown dimension %q", f.dimension)
	}

	q := domain.ReportQuery{Mode: mode, Dimension: dimension, Today: today}

	for _, p := range []struct {
		raw string
		dst **time.Time
	}{
		{f.start, &q.StartDate},
		{f.end, &q.EndDate},
	} {
		if p.raw == "" {
			continue
		}
		parsed, err := time.Parse(dateLayout, p.raw)
		if err != nil {
			return domain.ReportQuery{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", p.raw)
		}
		*p.dst = &parsed
	}

	return q, nil
}

func (f *reportFlags) loadBookings() ([]domain.BookingRecord, error) {
	file, err := os.Open(f.input)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookings file: %w", err)
	}
	defer file.Close()

	var docs []api.Booking
	if err := json.NewDecoder(file).Decode(&docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings file: %w", err)
	}

	records := make([]domain.BookingRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, adapters.MapAPIBookingToDomain(doc))
	}
	return records, nil
}
