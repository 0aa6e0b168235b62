package revenue

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// cashWindowMonths is the fixed size of the cash monthly timeline. The cash
// timeline always shows the trailing window ending at the month containing
// now; the period request applies only to accrual quantities.
const cashWindowMonths = 12

// recentPaymentsLimit bounds the recent-payments sample.
const recentPaymentsLimit = 50

// Aggregate folds the payment and lease snapshots into a Summary.
//
// refunds is the snapshot of refund records used for deposit matching;
// passing the full payment list is fine, non-deposit-refund rows are
// ignored. now is injected so two calls with identical inputs produce
// identical output.
func Aggregate(payments []*entity.Payment, leases []*entity.Lease, refunds []*entity.Payment, period PeriodRequest, now time.Time) *Summary {
	succeeded := make([]*entity.Payment, 0, len(payments))
	for _, p := range payments {
		if p.IsSucceeded() {
			succeeded = append(succeeded, p)
		}
	}

	summary := &Summary{
		Cash:          cashSummary(succeeded),
		RevenueByType: revenueByType(succeeded),
		MonthlyCash:   cashTimeline(succeeded, now),
	}

	// Fold every qualifying lease through the allocator; the timelines stay
	// global, the period filter is applied afterwards as a projection.
	accrual := make(map[valueobject.MonthKey]valueobject.Money)
	occupancy := make(map[valueobject.MonthKey]int)
	for _, lease := range leases {
		alloc := Allocate(lease)
		for month, cents := range alloc.EarnedCents {
			accrual[month] = accrual[month].Add(cents)
		}
		for month, nights := range alloc.Nights {
			occupancy[month] += nights
		}
	}

	summary.MonthlyAccrual = projectAmounts(accrual)
	summary.MonthlyOccupancy = projectNights(occupancy)
	summary.Accrual = accrualSummary(accrual, occupancy, period, now)

	outstanding, released := depositTotals(leases, refunds, now)
	summary.Accrual.OutstandingDeposits = outstanding
	summary.Accrual.ReleasedDeposits = released

	summary.RecentPayments = recentPayments(succeeded)

	return summary
}

// cashSummary totals money actually collected across all succeeded
// payments. Refunds count the absolute value of refund-typed or negative
// rows; the average divides the signed total by the row count.
func cashSummary(succeeded []*entity.Payment) CashSummary {
	var s CashSummary
	for _, p := range succeeded {
		s.Total = s.Total.Add(p.Amount)
		s.Fees = s.Fees.Add(p.Fee)
		if p.Type == entity.PaymentTypeRefund || p.Amount < 0 {
			s.Refunds = s.Refunds.Add(p.Amount.Abs())
		}
	}
	s.Net = s.Total.Sub(s.Fees)
	s.PaymentCount = len(succeeded)
	s.Average = s.Total.DivCount(int64(s.PaymentCount))
	return s
}

// revenueByType groups succeeded payments into per-type buckets.
func revenueByType(succeeded []*entity.Payment) map[string]TypeRevenue {
	byType := make(map[string]TypeRevenue)
	for _, p := range succeeded {
		bucket := byType[string(p.Type)]
		bucket.Count++
		bucket.Total = bucket.Total.Add(p.Amount)
		byType[string(p.Type)] = bucket
	}
	return byType
}

// cashTimeline buckets succeeded payments into the trailing window ending at
// the month containing now. Every month of the window appears, zero-filled
// when nothing was collected.
func cashTimeline(succeeded []*entity.Payment, now time.Time) []MonthlyAmount {
	first := startOfMonth(entity.DateOnly(now)).AddDate(0, -(cashWindowMonths - 1), 0)

	window := make(map[valueobject.MonthKey]valueobject.Money, cashWindowMonths)
	keys := make([]valueobject.MonthKey, 0, cashWindowMonths)
	for i := 0; i < cashWindowMonths; i++ {
		key := valueobject.MonthKeyFor(first.AddDate(0, i, 0))
		window[key] = valueobject.Zero
		keys = append(keys, key)
	}

	for _, p := range succeeded {
		if p.PaidAt == nil {
			continue
		}
		key := valueobject.MonthKeyFor(*p.PaidAt)
		if _, ok := window[key]; ok {
			window[key] = window[key].Add(p.Amount)
		}
	}

	timeline := make([]MonthlyAmount, 0, cashWindowMonths)
	for _, key := range keys {
		timeline = append(timeline, MonthlyAmount{Month: key, Amount: window[key]})
	}
	return timeline
}

// accrualSummary applies the period filter to the global accrual and
// occupancy timelines and derives the period-scoped totals.
func accrualSummary(accrual map[valueobject.MonthKey]valueobject.Money, occupancy map[valueobject.MonthKey]int, period PeriodRequest, now time.Time) AccrualSummary {
	filter := period.Filter()

	var s AccrualSummary
	months := make(map[valueobject.MonthKey]struct{})
	for month, cents := range accrual {
		if !filter(month) {
			continue
		}
		s.TotalEarned = s.TotalEarned.Add(cents)
		months[month] = struct{}{}
	}
	for month, nights := range occupancy {
		if !filter(month) {
			continue
		}
		s.OccupiedNights += nights
		months[month] = struct{}{}
	}

	s.MonthsInPeriod = len(months)
	if s.MonthsInPeriod == 0 {
		// Nothing accrued in the window; fall back to the window's nominal
		// size so averages divide by something meaningful.
		switch {
		case period.IsAll():
			s.MonthsInPeriod = len(accrual)
		case period.Kind == PeriodMonth:
			s.MonthsInPeriod = 1
		default:
			s.MonthsInPeriod = 12
		}
	}

	s.AverageMonthlyEarned = s.TotalEarned.DivCount(int64(s.MonthsInPeriod))
	s.AverageNightlyRate = s.TotalEarned.DivCount(int64(s.OccupiedNights))

	// Upcoming revenue is always measured from now, never period-filtered.
	current := valueobject.MonthKeyFor(now)
	for month, cents := range accrual {
		if month.After(current) {
			s.UpcomingRevenue = s.UpcomingRevenue.Add(cents)
		}
	}

	return s
}

// depositTotals runs the deposit ledger over every lease, matching refund
// records to leases beforehand.
func depositTotals(leases []*entity.Lease, refunds []*entity.Payment, now time.Time) (outstanding, released valueobject.Money) {
	refundedByLease := make(map[uuid.UUID]valueobject.Money)
	for _, p := range refunds {
		if p.LeaseID == nil || !p.IsDepositRefund() {
			continue
		}
		refundedByLease[*p.LeaseID] = refundedByLease[*p.LeaseID].Add(p.Amount.Abs())
	}

	for _, lease := range leases {
		state := ClassifyDeposit(lease, refundedByLease[lease.ID], now)
		outstanding = outstanding.Add(state.Outstanding)
		released = released.Add(state.Released)
	}
	return outstanding, released
}

// recentPayments returns up to recentPaymentsLimit succeeded payments,
// most recently paid first.
func recentPayments(succeeded []*entity.Payment) []RecentPayment {
	paid := make([]*entity.Payment, 0, len(succeeded))
	for _, p := range succeeded {
		if p.PaidAt != nil {
			paid = append(paid, p)
		}
	}
	sort.SliceStable(paid, func(i, j int) bool {
		return paid[i].PaidAt.After(*paid[j].PaidAt)
	})
	if len(paid) > recentPaymentsLimit {
		paid = paid[:recentPaymentsLimit]
	}

	recent := make([]RecentPayment, 0, len(paid))
	for _, p := range paid {
		recent = append(recent, RecentPayment{
			ID:          p.ID,
			LeaseID:     p.LeaseID,
			Amount:      p.Amount,
			Fee:         p.Fee,
			Type:        p.Type,
			PaidAt:      p.PaidAt,
			Description: p.Description,
		})
	}
	return recent
}

// projectAmounts projects an accumulating month map into a slice sorted by
// month key.
func projectAmounts(byMonth map[valueobject.MonthKey]valueobject.Money) []MonthlyAmount {
	out := make([]MonthlyAmount, 0, len(byMonth))
	for month, amount := range byMonth {
		out = append(out, MonthlyAmount{Month: month, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// projectNights projects an occupancy month map into a slice sorted by month
// key.
func projectNights(byMonth map[valueobject.MonthKey]int) []MonthlyNights {
	out := make([]MonthlyNights, 0, len(byMonth))
	for month, nights := range byMonth {
		out = append(out, MonthlyNights{Month: month, Nights: nights})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
