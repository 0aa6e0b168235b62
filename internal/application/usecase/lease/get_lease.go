// Package lease contains lease management use cases.
package lease

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// GetLeaseUseCase handles fetching a single lease.
type GetLeaseUseCase struct {
	leaseRepo adapter.LeaseRepository
}

// NewGetLeaseUseCase creates a new GetLeaseUseCase instance.
func NewGetLeaseUseCase(leaseRepo adapter.LeaseRepository) *GetLeaseUseCase {
	return &GetLeaseUseCase{
		leaseRepo: leaseRepo,
	}
}

// Execute retrieves a lease by ID.
func (uc *GetLeaseUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	lease, err := uc.leaseRepo.GetByID(ctx, id)
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
	return lease, nil
}
