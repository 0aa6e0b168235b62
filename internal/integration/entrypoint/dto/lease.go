// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// dateLayout is the wire format for lease dates.
const dateLayout = "2006-01-02"

// LeaseRequest represents the request body for creating or updating a lease.
// Dates are "YYYY-MM-DD" strings; both are optional.
type LeaseRequest struct {
	TenantName    string          `json:"tenant_name" binding:"required,min=1,max=255"`
	UnitLabel     string          `json:"unit_label" binding:"required,min=1,max=100"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Notes         string          `json:"notes"`
}

// ParseDates parses the optional date strings. An unparseable date is an
// input error; an empty string is simply a lease without that date.
func (r *LeaseRequest) ParseDates() (start, end *time.Time, err error) {
	start, err = parseOptionalDate(r.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err = parseOptionalDate(r.EndDate)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// LeaseResponse represents the lease data in API responses.
type LeaseResponse struct {
	ID            string          `json:"id"`
	TenantName    string          `json:"tenant_name"`
	UnitLabel     string          `json:"unit_label"`
	StartDate     *string         `json:"start_date"`
	EndDate       *string         `json:"end_date"`
	MonthlyRent   decimal.Decimal `json:"monthly_rent"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LeaseListResponse represents a list of leases.
type LeaseListResponse struct {
	Leases []LeaseResponse `json:"leases"`
}

// ToLeaseResponse converts a domain Lease entity to a LeaseResponse DTO.
func ToLeaseResponse(lease *entity.Lease) LeaseResponse {
	return LeaseResponse{
		ID:            lease.ID.String(),
		TenantName:    lease.TenantName,
		UnitLabel:     lease.UnitLabel,
		StartDate:     formatOptionalDate(lease.StartDate),
		EndDate:       formatOptionalDate(lease.EndDate),
		MonthlyRent:   lease.MonthlyRent,
		DepositAmount: lease.DepositAmount,
		Notes:         lease.Notes,
		CreatedAt:     lease.CreatedAt,
		UpdatedAt:     lease.UpdatedAt,
	}
}

// ToLeaseListResponse converts domain leases to a list response.
func ToLeaseListResponse(leases []*entity.Lease) LeaseListResponse {
	out := LeaseListResponse{
		Leases: make([]LeaseResponse, len(leases)),
	}
	for i, l := range leases {
		out.Leases[i] = ToLeaseResponse(l)
	}
	return out
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}
