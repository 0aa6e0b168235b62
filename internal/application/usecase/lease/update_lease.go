// Package lease contains lease management use cases.
package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// UpdateLeaseInput represents the input for updating a lease. All fields are
// full replacements; partial patches are a transport concern.
type UpdateLeaseInput struct {
	ID            uuid.UUID
	TenantName    string
	UnitLabel     string
	StartDate     *time.Time
	EndDate       *time.Time
	MonthlyRent   decimal.Decimal
	DepositAmount decimal.Decimal
	Notes         string
}

// UpdateLeaseUseCase handles lease updates.
type UpdateLeaseUseCase struct {
	leaseRepo adapter.LeaseRepository
	cache     revenue.SummaryCache
}

// NewUpdateLeaseUseCase creates a new UpdateLeaseUseCase instance.
func NewUpdateLeaseUseCase(leaseRepo adapter.LeaseRepository, cache revenue.SummaryCache) *UpdateLeaseUseCase {
	return &UpdateLeaseUseCase{
		leaseRepo: leaseRepo,
		cache:     cache,
	}
}

// Execute updates an existing lease.
func (uc *UpdateLeaseUseCase) Execute(ctx context.Context, input UpdateLeaseInput) (*entity.Lease, error) {
	if err := validateLeaseInput(input.StartDate, input.EndDate, input.MonthlyRent, input.DepositAmount); err != nil {
		return nil, err
	}

	lease, err := uc.leaseRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLeaseNotFound) {
			return nil, domainerror.NewLeaseError(
				domainerror.ErrCodeLeaseNotFound,
				"lease not found",
				domainerror.ErrLeaseNotFound,
			)
		}
		return nil, err
	}

	lease.TenantName = input.TenantName
	lease.UnitLabel = input.UnitLabel
	lease.StartDate = input.StartDate
	lease.EndDate = input.EndDate
	lease.MonthlyRent = input.MonthlyRent
	lease.DepositAmount = input.DepositAmount
	lease.Notes = input.Notes
	lease.UpdatedAt = time.Now().UTC()

	if err := uc.leaseRepo.Update(ctx, lease); err != nil {
		return nil, fmt.Errorf("failed to update lease: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return lease, nil
}
