// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// leaseRepository implements the adapter.LeaseRepository interface.
type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository instance.
func NewLeaseRepository(db *gorm.DB) adapter.LeaseRepository {
	return &leaseRepository{
		db: db,
	}
}

// Create creates a new lease in the database.
func (r *leaseRepository) Create(ctx context.Context, lease *entity.Lease) error {
	leaseModel := model.LeaseModelFromEntity(lease)
	result := r.db.WithContext(ctx).Create(leaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a lease by its ID, excluding soft-deleted rows.
func (r *leaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	var leaseModel model.LeaseModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&leaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLeaseNotFound
		}
		return nil, result.Error
	}
	return leaseModel.ToEntity(), nil
}

// List returns all live leases ordered by start date descending. Leases
// without a start date sort last.
func (r *leaseRepository) List(ctx context.Context) ([]*entity.Lease, error) {
	var models []model.LeaseModel
	result := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("start_date DESC NULLS LAST").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	leases := make([]*entity.Lease, len(models))
	for i := range models {
		leases[i] = models[i].ToEntity()
	}
	return leases, nil
}

// Update saves changes to an existing lease.
func (r *leaseRepository) Update(ctx context.Context, lease *entity.Lease) error {
	leaseModel := model.LeaseModelFromEntity(lease)
	result := r.db.WithContext(ctx).Save(leaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a lease. Payments keep their lease reference so the
// revenue history stays intact.
func (r *leaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.LeaseModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLeaseNotFound
	}
	return nil
}
