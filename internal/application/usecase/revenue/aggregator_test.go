package revenue

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

func succeededPayment(amount, fee int64, paymentType entity.PaymentType, paidAt time.Time, leaseID *uuid.UUID) *entity.Payment {
	return &entity.Payment{
		ID:      uuid.New(),
		LeaseID: leaseID,
		Amount:  valueobject.Money(amount),
		Fee:     valueobject.Money(fee),
		Type:    paymentType,
		Status:  entity.PaymentStatusSucceeded,
		PaidAt:  &paidAt,
	}
}

func TestAggregate_CashSummary(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	paid := now.AddDate(0, -1, 0)

	payments := []*entity.Payment{
		succeededPayment(10000, 0, entity.PaymentTypeRent, paid, nil),
		succeededPayment(-5000, 0, entity.PaymentTypeRefund, paid, nil),
		succeededPayment(2500, 100, entity.PaymentTypeLateFee, paid, nil),
		{ // pending payments never count
			ID:     uuid.New(),
			Amount: 99999,
			Type:   entity.PaymentTypeRent,
			Status: entity.PaymentStatusPending,
		},
	}

	summary := Aggregate(payments, nil, nil, PeriodRequest{Kind: PeriodAll}, now)

	if summary.Cash.Total != 7500 {
		t.Errorf("expected total 7500, got %d", summary.Cash.Total)
	}
	if summary.Cash.Fees != 100 {
		t.Errorf("expected fees 100, got %d", summary.Cash.Fees)
	}
	if summary.Cash.Net != 7400 {
		t.Errorf("expected net 7400, got %d", summary.Cash.Net)
	}
	if summary.Cash.Refunds != 5000 {
		t.Errorf("expected refunds 5000, got %d", summary.Cash.Refunds)
	}
	if summary.Cash.PaymentCount != 3 {
		t.Errorf("expected 3 counted payments, got %d", summary.Cash.PaymentCount)
	}
	if summary.Cash.Average != 2500 {
		t.Errorf("expected average 2500, got %d", summary.Cash.Average)
	}
}

func TestAggregate_RevenueByType(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	paid := now.AddDate(0, -2, 0)

	payments := []*entity.Payment{
		succeededPayment(10000, 0, entity.PaymentTypeRent, paid, nil),
		succeededPayment(20000, 0, entity.PaymentTypeRent, paid, nil),
		succeededPayment(5000, 0, entity.PaymentTypeDeposit, paid, nil),
	}

	summary := Aggregate(payments, nil, nil, PeriodRequest{Kind: PeriodAll}, now)

	rent := summary.RevenueByType["rent"]
	if rent.Count != 2 || rent.Total != 30000 {
		t.Errorf("expected rent bucket 2/30000, got %d/%d", rent.Count, rent.Total)
	}
	deposit := summary.RevenueByType["deposit"]
	if deposit.Count != 1 || deposit.Total != 5000 {
		t.Errorf("expected deposit bucket 1/5000, got %d/%d", deposit.Count, deposit.Total)
	}
}

func TestAggregate_CashTimelineTrailingWindow(t *testing.T) {
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	payments := []*entity.Payment{
		succeededPayment(10000, 0, entity.PaymentTypeRent, time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), nil),
		// Thirteen months back: outside the window, still in cash totals.
		succeededPayment(7000, 0, entity.PaymentTypeRent, time.Date(2023, time.May, 3, 0, 0, 0, 0, time.UTC), nil),
	}

	summary := Aggregate(payments, nil, nil, PeriodRequest{Kind: PeriodAll}, now)

	if len(summary.MonthlyCash) != 12 {
		t.Fatalf("expected a 12-month window, got %d", len(summary.MonthlyCash))
	}
	if summary.MonthlyCash[0].Month != "2023-07" {
		t.Errorf("expected window to start at 2023-07, got %s", summary.MonthlyCash[0].Month)
	}
	if summary.MonthlyCash[11].Month != "2024-06" {
		t.Errorf("expected window to end at 2024-06, got %s", summary.MonthlyCash[11].Month)
	}

	var may valueobject.Money
	for _, point := range summary.MonthlyCash {
		if point.Month == "2024-05" {
			may = point.Amount
		}
	}
	if may != 10000 {
		t.Errorf("expected 2024-05 bucket 10000, got %d", may)
	}

	// The out-of-window payment is excluded from the timeline but not from
	// the cash totals.
	if summary.Cash.Total != 17000 {
		t.Errorf("expected cash total 17000, got %d", summary.Cash.Total)
	}
}

func TestAggregate_UnlinkedPaymentStaysOutOfAccrual(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	payments := []*entity.Payment{
		succeededPayment(10000, 0, entity.PaymentTypeRent, now.AddDate(0, -1, 0), nil),
	}

	summary := Aggregate(payments, nil, payments, PeriodRequest{Kind: PeriodAll}, now)

	if summary.Cash.Total != 10000 {
		t.Errorf("expected unlinked payment in cash totals, got %d", summary.Cash.Total)
	}
	if summary.RevenueByType["rent"].Count != 1 {
		t.Error("expected unlinked payment in revenue-by-type")
	}
	if len(summary.MonthlyAccrual) != 0 || len(summary.MonthlyOccupancy) != 0 {
		t.Error("expected empty accrual and occupancy timelines without leases")
	}
}

func TestAggregate_AccrualPeriodScoping(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	leases := []*entity.Lease{
		{
			ID:          uuid.New(),
			StartDate:   date(2023, time.January, 1),
			EndDate:     date(2024, time.December, 31),
			MonthlyRent: decimal.RequireFromString("1000.00"),
		},
	}

	t.Run("year scope", func(t *testing.T) {
		summary := Aggregate(nil, leases, nil, PeriodRequest{Kind: PeriodYear, Year: 2024}, now)

		// Twelve full months of 2024 at 100000 cents each.
		if summary.Accrual.TotalEarned != 1200000 {
			t.Errorf("expected 1200000 earned in 2024, got %d", summary.Accrual.TotalEarned)
		}
		if summary.Accrual.MonthsInPeriod != 12 {
			t.Errorf("expected 12 months in period, got %d", summary.Accrual.MonthsInPeriod)
		}
		if summary.Accrual.AverageMonthlyEarned != 100000 {
			t.Errorf("expected average monthly 100000, got %d", summary.Accrual.AverageMonthlyEarned)
		}
		// 2024 is a leap year: 366 occupied nights.
		if summary.Accrual.OccupiedNights != 366 {
			t.Errorf("expected 366 occupied nights, got %d", summary.Accrual.OccupiedNights)
		}
	})

	t.Run("month scope", func(t *testing.T) {
		summary := Aggregate(nil, leases, nil, PeriodRequest{Kind: PeriodMonth, Year: 2024, Month: 2}, now)

		if summary.Accrual.TotalEarned != 100000 {
			t.Errorf("expected 100000 earned in 2024-02, got %d", summary.Accrual.TotalEarned)
		}
		if summary.Accrual.OccupiedNights != 29 {
			t.Errorf("expected 29 nights in 2024-02, got %d", summary.Accrual.OccupiedNights)
		}
		if summary.Accrual.MonthsInPeriod != 1 {
			t.Errorf("expected 1 month in period, got %d", summary.Accrual.MonthsInPeriod)
		}
	})

	t.Run("empty month falls back to one month", func(t *testing.T) {
		summary := Aggregate(nil, leases, nil, PeriodRequest{Kind: PeriodMonth, Year: 2030, Month: 1}, now)

		if summary.Accrual.TotalEarned != 0 {
			t.Errorf("expected 0 earned, got %d", summary.Accrual.TotalEarned)
		}
		if summary.Accrual.MonthsInPeriod != 1 {
			t.Errorf("expected fallback months 1, got %d", summary.Accrual.MonthsInPeriod)
		}
	})

	t.Run("global timelines ignore the period request", func(t *testing.T) {
		summary := Aggregate(nil, leases, nil, PeriodRequest{Kind: PeriodMonth, Year: 2024, Month: 2}, now)

		if len(summary.MonthlyAccrual) != 24 {
			t.Errorf("expected 24 global accrual months, got %d", len(summary.MonthlyAccrual))
		}
	})

	t.Run("upcoming revenue counts months after now", func(t *testing.T) {
		summary := Aggregate(nil, leases, nil, PeriodRequest{Kind: PeriodAll}, now)

		// July through December 2024: six months at 100000.
		if summary.Accrual.UpcomingRevenue != 600000 {
			t.Errorf("expected upcoming 600000, got %d", summary.Accrual.UpcomingRevenue)
		}
	})
}

func TestAggregate_DepositTotals(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	activeID := uuid.New()
	endedID := uuid.New()
	leases := []*entity.Lease{
		{
			ID:            activeID,
			StartDate:     date(2024, time.January, 1),
			EndDate:       date(2024, time.December, 31),
			MonthlyRent:   decimal.RequireFromString("1000.00"),
			DepositAmount: decimal.RequireFromString("500.00"),
		},
		{
			ID:            endedID,
			StartDate:     date(2023, time.January, 1),
			EndDate:       date(2023, time.December, 31),
			MonthlyRent:   decimal.RequireFromString("900.00"),
			DepositAmount: decimal.RequireFromString("300.00"),
		},
	}

	refundCategory := entity.RefundCategoryDeposit
	refunds := []*entity.Payment{
		{
			ID:             uuid.New(),
			LeaseID:        &activeID,
			Amount:         -10000,
			Type:           entity.PaymentTypeRefund,
			Status:         entity.PaymentStatusSucceeded,
			RefundCategory: &refundCategory,
		},
	}

	summary := Aggregate(nil, leases, refunds, PeriodRequest{Kind: PeriodAll}, now)

	// Active lease: 50000 deposit - 10000 refunded = 40000 outstanding,
	// 10000 released. Ended lease: full 30000 released.
	if summary.Accrual.OutstandingDeposits != 40000 {
		t.Errorf("expected outstanding 40000, got %d", summary.Accrual.OutstandingDeposits)
	}
	if summary.Accrual.ReleasedDeposits != 40000 {
		t.Errorf("expected released 40000, got %d", summary.Accrual.ReleasedDeposits)
	}
}

func TestAggregate_RecentPaymentsBoundedAndOrdered(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	var payments []*entity.Payment
	for i := 0; i < 60; i++ {
		payments = append(payments,
			succeededPayment(1000, 0, entity.PaymentTypeRent, now.Add(-time.Duration(i)*time.Hour), nil))
	}

	summary := Aggregate(payments, nil, nil, PeriodRequest{Kind: PeriodAll}, now)

	if len(summary.RecentPayments) != 50 {
		t.Fatalf("expected 50 recent payments, got %d", len(summary.RecentPayments))
	}
	for i := 1; i < len(summary.RecentPayments); i++ {
		if summary.RecentPayments[i].PaidAt.After(*summary.RecentPayments[i-1].PaidAt) {
			t.Fatal("recent payments must be ordered most recent first")
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	leaseID := uuid.New()

	payments := []*entity.Payment{
		succeededPayment(10000, 250, entity.PaymentTypeRent, now.AddDate(0, -1, 0), &leaseID),
		succeededPayment(-2000, 0, entity.PaymentTypeRefund, now.AddDate(0, 0, -3), &leaseID),
	}
	leases := []*entity.Lease{
		{
			ID:            leaseID,
			StartDate:     date(2024, time.January, 15),
			EndDate:       date(2024, time.August, 10),
			MonthlyRent:   decimal.RequireFromString("1250.50"),
			DepositAmount: decimal.RequireFromString("1250.50"),
		},
	}

	first := Aggregate(payments, leases, payments, PeriodRequest{Kind: PeriodYear, Year: 2024}, now)
	second := Aggregate(payments, leases, payments, PeriodRequest{Kind: PeriodYear, Year: 2024}, now)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs and now must produce identical summaries")
	}
}
