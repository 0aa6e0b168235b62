// Package revenue contains the revenue reporting engine and its use cases.
//
// The engine is a pure transform: two fetched snapshots (payments, leases)
// plus a period request and an injected clock produce one immutable summary.
// It performs no I/O, mutates nothing, and resolves every degenerate input to
// a zero contribution instead of an error.
package revenue

import (
	"time"

	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// PeriodKind selects how a reporting window is scoped.
type PeriodKind string

const (
	// PeriodAll covers the entire history.
	PeriodAll PeriodKind = "all"
	// PeriodYear covers a single calendar year.
	PeriodYear PeriodKind = "year"
	// PeriodMonth covers a single calendar month.
	PeriodMonth PeriodKind = "month"
)

// PeriodRequest is a requested reporting window. Year and Month are only
// meaningful for the year/month kinds.
type PeriodRequest struct {
	Kind  PeriodKind
	Year  int
	Month int // 1-12
}

// PeriodFilter is a predicate over month keys.
type PeriodFilter func(valueobject.MonthKey) bool

// Filter normalizes the request into a month-key predicate.
//
// A malformed request (unknown kind, or missing/out-of-range year or month
// for a non-"all" kind) degrades silently to the all-time predicate. Callers
// that want strict validation must reject bad input before building the
// request; the engine stays permissive so a bad query never fails a report.
func (p PeriodRequest) Filter() PeriodFilter {
	switch p.Kind {
	case PeriodYear:
		if p.Year <= 0 {
			return allMonths
		}
		year := p.Year
		return func(k valueobject.MonthKey) bool {
			return k.Year() == year
		}
	case PeriodMonth:
		if p.Year <= 0 || p.Month < 1 || p.Month > 12 {
			return allMonths
		}
		want := valueobject.NewMonthKey(p.Year, time.Month(p.Month))
		return func(k valueobject.MonthKey) bool {
			return k == want
		}
	default:
		return allMonths
	}
}

// IsAll reports whether the request effectively covers all time, either
// explicitly or after degradation of a malformed year/month request.
func (p PeriodRequest) IsAll() bool {
	switch p.Kind {
	case PeriodYear:
		return p.Year <= 0
	case PeriodMonth:
		return p.Year <= 0 || p.Month < 1 || p.Month > 12
	default:
		return true
	}
}

func allMonths(valueobject.MonthKey) bool {
	return true
}
