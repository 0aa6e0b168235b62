// Package payment contains payment management use cases.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// RecordPaymentInput represents a manual payment entry: cash, checks,
// transfers that never touched the gateway.
type RecordPaymentInput struct {
	LeaseID     *uuid.UUID
	Amount      valueobject.Money
	Fee         valueobject.Money
	Type        entity.PaymentType
	PaidAt      time.Time
	Description string
}

// RecordPaymentUseCase handles manual payment entry.
type RecordPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	cache       revenue.SummaryCache
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(paymentRepo adapter.PaymentRepository, cache revenue.SummaryCache) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

// Execute records a manual payment as already succeeded.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount.IsZero() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentZeroAmount,
			"amount must not be zero",
			domainerror.ErrPaymentZeroAmount,
		)
	}

	p := entity.NewPayment(input.LeaseID, input.Amount, input.Fee, input.Type, input.Description)
	p.MarkSucceeded(input.PaidAt)

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return p, nil
}

// invalidateSummaries drops cached revenue summaries after a write.
func invalidateSummaries(ctx context.Context, cache revenue.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Debug("Summary cache invalidation failed", "error", err)
	}
}
