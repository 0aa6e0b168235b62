// Package lease contains lease management use cases.
package lease

import (
	"context"
	"fmt"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// ListLeasesUseCase handles listing all leases.
type ListLeasesUseCase struct {
	leaseRepo adapter.LeaseRepository
}

// NewListLeasesUseCase creates a new ListLeasesUseCase instance.
func NewListLeasesUseCase(leaseRepo adapter.LeaseRepository) *ListLeasesUseCase {
	return &ListLeasesUseCase{
		leaseRepo: leaseRepo,
	}
}

// Execute returns all leases, most recent start date first.
func (uc *ListLeasesUseCase) Execute(ctx context.Context) ([]*entity.Lease, error) {
	leases, err := uc.leaseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	return leases, nil
}
