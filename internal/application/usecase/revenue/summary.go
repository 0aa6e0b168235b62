package revenue

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// Summary is the complete revenue report. It is an immutable value: it is
// recomputed from scratch on every request and never mutated after Aggregate
// returns it. All monetary fields are integer cents.
type Summary struct {
	Cash             CashSummary            `json:"cash"`
	RevenueByType    map[string]TypeRevenue `json:"revenue_by_type"`
	MonthlyCash      []MonthlyAmount        `json:"monthly_cash"`
	MonthlyAccrual   []MonthlyAmount        `json:"monthly_accrual"`
	MonthlyOccupancy []MonthlyNights        `json:"monthly_occupancy"`
	Accrual          AccrualSummary         `json:"accrual"`
	RecentPayments   []RecentPayment        `json:"recent_payments"`
}

// CashSummary aggregates money actually collected, over all succeeded
// payments regardless of the requested period.
type CashSummary struct {
	Total        valueobject.Money `json:"total"`
	Net          valueobject.Money `json:"net"`
	Fees         valueobject.Money `json:"fees"`
	Refunds      valueobject.Money `json:"refunds"`
	PaymentCount int               `json:"payment_count"`
	Average      valueobject.Money `json:"average"`
}

// TypeRevenue is one bucket of the revenue-by-type breakdown.
type TypeRevenue struct {
	Count int               `json:"count"`
	Total valueobject.Money `json:"total"`
}

// MonthlyAmount is one point of a monetary monthly timeline.
type MonthlyAmount struct {
	Month  valueobject.MonthKey `json:"month"`
	Amount valueobject.Money    `json:"amount"`
}

// MonthlyNights is one point of the occupancy timeline.
type MonthlyNights struct {
	Month  valueobject.MonthKey `json:"month"`
	Nights int                  `json:"nights"`
}

// AccrualSummary aggregates rent earned for the periods occupied, scoped to
// the requested reporting window (deposits and upcoming revenue stay
// global).
type AccrualSummary struct {
	TotalEarned          valueobject.Money `json:"total_earned"`
	OccupiedNights       int               `json:"occupied_nights"`
	MonthsInPeriod       int               `json:"months_in_period"`
	AverageMonthlyEarned valueobject.Money `json:"average_monthly_earned"`
	AverageNightlyRate   valueobject.Money `json:"average_nightly_rate"`
	OutstandingDeposits  valueobject.Money `json:"outstanding_deposits"`
	ReleasedDeposits     valueobject.Money `json:"released_deposits"`
	UpcomingRevenue      valueobject.Money `json:"upcoming_revenue"`
}

// RecentPayment is one row of the bounded recent-payments sample used by the
// detail view.
type RecentPayment struct {
	ID          uuid.UUID          `json:"id"`
	LeaseID     *uuid.UUID         `json:"lease_id,omitempty"`
	Amount      valueobject.Money  `json:"amount"`
	Fee         valueobject.Money  `json:"fee"`
	Type        entity.PaymentType `json:"type"`
	PaidAt      *time.Time         `json:"paid_at,omitempty"`
	Description string             `json:"description,omitempty"`
}
