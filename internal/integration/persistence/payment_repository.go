// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment in the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentModelFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a payment by its ID.
func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// GetByGatewaySession retrieves the payment created for a checkout session.
func (r *paymentRepository) GetByGatewaySession(ctx context.Context, sessionID string) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("gateway_session_id = ?", sessionID).
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// List returns payments matching the filter, most recent first. Paid
// payments sort by paid time; pending ones fall back to creation time.
func (r *paymentRepository) List(ctx context.Context, filter adapter.PaymentListFilter) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).Model(&model.PaymentModel{})

	if filter.LeaseID != nil {
		query = query.Where("lease_id = ?", *filter.LeaseID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.PaymentModel
	result := query.Order("COALESCE(paid_at, created_at) DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(models))
	for i := range models {
		payments[i] = models[i].ToEntity()
	}
	return payments, nil
}

// Update saves changes to an existing payment.
func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentModelFromEntity(payment)
	result := r.db.WithContext(ctx).Save(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
