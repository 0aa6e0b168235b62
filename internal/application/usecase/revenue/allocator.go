package revenue

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// Allocation is the per-lease accrual result: earned rent cents and occupied
// night counts for every calendar month the lease touches. Both maps are
// freshly built per call and never shared.
type Allocation struct {
	EarnedCents map[valueobject.MonthKey]valueobject.Money
	Nights      map[valueobject.MonthKey]int
}

// Allocate prorates a lease's monthly rent across the calendar months it
// spans, proportional to the days occupied in each month against that
// month's own day count.
//
// Each month is rounded to the nearest cent independently (half up), so the
// allocated total may drift from monthlyRent x monthsSpanned by up to one
// cent per month touched. The drift is intentional: partial-month billing is
// quoted per month, not reconciled against a contract total.
//
// A lease with a missing or inverted date range, or with zero rent, yields
// empty allocations. Night counts use the inclusive day span (end - start
// + 1), which counts the checkout day as occupied.
func Allocate(lease *entity.Lease) Allocation {
	alloc := Allocation{
		EarnedCents: make(map[valueobject.MonthKey]valueobject.Money),
		Nights:      make(map[valueobject.MonthKey]int),
	}

	if !lease.HasAccrualRange() || !lease.MonthlyRent.IsPositive() {
		return alloc
	}

	rentCents := valueobject.MoneyFromDecimal(lease.MonthlyRent)
	leaseStart := entity.DateOnly(*lease.StartDate)
	leaseEnd := entity.DateOnly(*lease.EndDate)

	for monthStart := startOfMonth(leaseStart); !monthStart.After(leaseEnd); monthStart = monthStart.AddDate(0, 1, 0) {
		monthEnd := monthStart.AddDate(0, 1, -1)

		activeStart := maxDate(monthStart, leaseStart)
		activeEnd := minDate(monthEnd, leaseEnd)
		if activeEnd.Before(activeStart) {
			continue
		}

		activeDays := daysBetween(activeStart, activeEnd) + 1
		daysInMonth := daysBetween(monthStart, monthEnd) + 1

		monthCents := prorate(rentCents, activeDays, daysInMonth)

		key := valueobject.MonthKeyFor(monthStart)
		alloc.EarnedCents[key] = alloc.EarnedCents[key].Add(monthCents)
		alloc.Nights[key] += activeDays
	}

	return alloc
}

// prorate computes round(rentCents x activeDays / daysInMonth) with half-up
// rounding to the nearest cent.
func prorate(rentCents valueobject.Money, activeDays, daysInMonth int) valueobject.Money {
	scaled := decimal.NewFromInt(rentCents.Cents() * int64(activeDays))
	q := scaled.DivRound(decimal.NewFromInt(int64(daysInMonth)), 0)
	return valueobject.MoneyFromCents(q.IntPart())
}

// daysBetween counts whole days from a to b; both are date-only UTC values.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
