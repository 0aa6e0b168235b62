// Package lease contains lease management use cases.
package lease

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// CreateLeaseInput represents the input for creating a lease.
type CreateLeaseInput struct {
	TenantName    string
	UnitLabel     string
	StartDate     *time.Time
	EndDate       *time.Time
	MonthlyRent   decimal.Decimal
	DepositAmount decimal.Decimal
	Notes         string
}

// CreateLeaseUseCase handles lease creation.
type CreateLeaseUseCase struct {
	leaseRepo adapter.LeaseRepository
	cache     revenue.SummaryCache
}

// NewCreateLeaseUseCase creates a new CreateLeaseUseCase instance.
func NewCreateLeaseUseCase(leaseRepo adapter.LeaseRepository, cache revenue.SummaryCache) *CreateLeaseUseCase {
	return &CreateLeaseUseCase{
		leaseRepo: leaseRepo,
		cache:     cache,
	}
}

// Execute creates a new lease.
func (uc *CreateLeaseUseCase) Execute(ctx context.Context, input CreateLeaseInput) (*entity.Lease, error) {
	if err := validateLeaseInput(input.StartDate, input.EndDate, input.MonthlyRent, input.DepositAmount); err != nil {
		return nil, err
	}

	lease := entity.NewLease(
		input.TenantName,
		input.UnitLabel,
		input.StartDate,
		input.EndDate,
		input.MonthlyRent,
		input.DepositAmount,
		input.Notes,
	)

	if err := uc.leaseRepo.Create(ctx, lease); err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return lease, nil
}

// validateLeaseInput rejects input that would silently never accrue by
// accident. A missing date is allowed (the lease just will not accrue yet);
// an inverted range or negative money is an operator mistake.
func validateLeaseInput(start, end *time.Time, rent, deposit decimal.Decimal) error {
	if start != nil && end != nil && end.Before(*start) {
		return domainerror.NewLeaseError(
			domainerror.ErrCodeLeaseInvalidDates,
			"end_date must not be before start_date",
			domainerror.ErrLeaseInvalidDates,
		)
	}
	if rent.IsNegative() {
		return domainerror.NewLeaseError(
			domainerror.ErrCodeLeaseNegativeRent,
			"monthly_rent must not be negative",
			domainerror.ErrLeaseNegativeRent,
		)
	}
	if deposit.IsNegative() {
		return domainerror.NewLeaseError(
			domainerror.ErrCodeLeaseNegativeDeposit,
			"deposit_amount must not be negative",
			domainerror.ErrLeaseNegativeDeposit,
		)
	}
	return nil
}

// invalidateSummaries drops cached revenue summaries after a write. Cache
// failures are logged, never surfaced.
func invalidateSummaries(ctx context.Context, cache revenue.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Debug("Summary cache invalidation failed", "error", err)
	}
}
