// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// LeaseRepository defines the interface for lease persistence operations.
type LeaseRepository interface {
	// Create stores a new lease.
	Create(ctx context.Context, lease *entity.Lease) error

	// GetByID retrieves a lease by its ID, excluding soft-deleted rows.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error)

	// List returns all leases ordered by start date descending.
	List(ctx context.Context) ([]*entity.Lease, error)

	// Update saves changes to an existing lease.
	Update(ctx context.Context, lease *entity.Lease) error

	// Delete soft-deletes a lease.
	Delete(ctx context.Context, id uuid.UUID) error
}
