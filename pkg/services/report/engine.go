// Package report implements the temporal revenue aggregation engine:
// one pass over booking records produces a two-level revenue mapping,
// from which the chart series and the pivot table are projected.
package report

import (
	"time"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/services/calendar"
)

// SkipReason tags a line item excluded from aggregation.
type SkipReason string

const (
	SkipNoCampaign SkipReason = "no_campaign"
	SkipNoSpaces   SkipReason = "no_spaces"
	SkipNoGroupKey SkipReason = "no_group_key"
	SkipNoBucket   SkipReason = "no_bucket"
)

// SkipCollector receives one call per excluded line item. Exclusion is
// never an error; this exists for diagnostics and tests.
type SkipCollector func(reason SkipReason, bookingID string)

// Options configure an Engine. The zero value reproduces the upstream
// dashboard behavior: fiscal year semantics and one contribution of
// the booking total per qualifying space.
type Options struct {
	// Policy picks fiscal or calendar year/quarter semantics for every
	// mode at once. Empty means fiscal.
	Policy domain.YearPolicy

	// SingleCountSpaces attributes a detail's booking total once per
	// detail instead of once per qualifying space.
	SingleCountSpaces bool

	// OnSkip, when set, observes every excluded line item.
	OnSkip SkipCollector
}

// Engine is a stateless aggregation pass factory. Every call allocates
// its own output, so concurrent callers never alias.
type Engine struct {
	policy      domain.YearPolicy
	singleCount bool
	onSkip      SkipCollector
}

func NewEngine(opts Options) *Engine {
	policy := opts.Policy
	if policy == "" {
		policy = domain.YearPolicyFiscal
	}
	return &Engine{
		policy:      policy,
		singleCount: opts.SingleCountSpaces,
		onSkip:      opts.OnSkip,
	}
}

func (e *Engine) year(d time.Time) int {
	if e.policy == domain.YearPolicyCalendar {
		return d.Year()
	}
	return calendar.FiscalYear(d)
}

func (e *Engine) quarter(d time.Time) int {
	if e.policy == domain.YearPolicyCalendar {
		return calendar.CalendarQuarter(d)
	}
	return calendar.FiscalQuarter(d)
}

func (e *Engine) skip(reason SkipReason, bookingID string) {
	if e.onSkip != nil {
		e.onSkip(reason, bookingID)
	}
}
