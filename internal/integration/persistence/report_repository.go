// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// reportRepository implements the revenue.ReportRepository interface. It
// loads full snapshots; the revenue engine does all filtering in memory.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) revenue.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// ListPayments returns every payment record, oldest first.
func (r *reportRepository) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return paymentsToEntities(models), nil
}

// ListDepositRefunds returns succeeded deposit-category refund payments.
func (r *reportRepository) ListDepositRefunds(ctx context.Context) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("type = ?", entity.PaymentTypeRefund).
		Where("status = ?", entity.PaymentStatusSucceeded).
		Where("refund_category = ?", entity.RefundCategoryDeposit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return paymentsToEntities(models), nil
}

// ListLeases returns every lease, soft-deleted ones excluded. Leases with
// unusable dates or rent are included; the engine skips them itself.
func (r *reportRepository) ListLeases(ctx context.Context) ([]*entity.Lease, error) {
	var models []model.LeaseModel
	result := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
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

func paymentsToEntities(models []model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, len(models))
	for i := range models {
		payments[i] = models[i].ToEntity()
	}
	return payments
}
