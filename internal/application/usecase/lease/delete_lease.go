// Package lease contains lease management use cases.
package lease

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// DeleteLeaseUseCase handles lease deletion.
type DeleteLeaseUseCase struct {
	leaseRepo adapter.LeaseRepository
	cache     revenue.SummaryCache
}

// NewDeleteLeaseUseCase creates a new DeleteLeaseUseCase instance.
func NewDeleteLeaseUseCase(leaseRepo adapter.LeaseRepository, cache revenue.SummaryCache) *DeleteLeaseUseCase {
	return &DeleteLeaseUseCase{
		leaseRepo: leaseRepo,
		cache:     cache,
	}
}

// Execute soft-deletes a lease. Payments linked to it keep their lease
// reference; from the report's perspective the lease simply stops accruing.
func (uc *DeleteLeaseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.leaseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrLeaseNotFound) {
			return domainerror.NewLeaseError(
				domainerror.ErrCodeLeaseNotFound,
				"lease not found",
				domainerror.ErrLeaseNotFound,
			)
		}
		return err
	}

	if err := uc.leaseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete lease: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
