// Package payment contains payment management use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// ListPaymentsUseCase handles listing payments.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute returns payments matching the filter, most recent first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, filter adapter.PaymentListFilter) ([]*entity.Payment, error) {
	payments, err := uc.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
