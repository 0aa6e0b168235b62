// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lease represents a rental agreement for a unit. StartDate and EndDate are
// calendar dates (time-of-day is ignored); MonthlyRent and DepositAmount are
// in currency units, converted to cents only inside the revenue engine.
type Lease struct {
	ID            uuid.UUID
	TenantName    string
	UnitLabel     string
	StartDate     *time.Time
	EndDate       *time.Time
	MonthlyRent   decimal.Decimal
	DepositAmount decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewLease creates a new Lease.
func NewLease(tenantName, unitLabel string, startDate, endDate *time.Time, monthlyRent, depositAmount decimal.Decimal, notes string) *Lease {
	now := time.Now().UTC()
	return &Lease{
		ID:            uuid.New(),
		TenantName:    tenantName,
		UnitLabel:     unitLabel,
		StartDate:     startDate,
		EndDate:       endDate,
		MonthlyRent:   monthlyRent,
		DepositAmount: depositAmount,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasAccrualRange reports whether the lease carries a usable date range:
// both dates present and end not before start. Leases without one simply do
// not accrue; this is not an error condition.
func (l *Lease) HasAccrualRange() bool {
	if l.StartDate == nil || l.EndDate == nil {
		return false
	}
	return !l.EndDate.Before(*l.StartDate)
}

// EndedBy reports whether the lease term has ended at the given instant,
// comparing calendar dates in UTC. A lease ending today is considered ended;
// an open-ended lease never is.
func (l *Lease) EndedBy(now time.Time) bool {
	if l.EndDate == nil {
		return false
	}
	end := DateOnly(*l.EndDate)
	return !end.After(DateOnly(now))
}

// DateOnly strips the time-of-day component, keeping the UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
