// Package payment contains payment management use cases.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// IssueRefundInput represents the input for refunding a payment.
type IssueRefundInput struct {
	PaymentID uuid.UUID
	Amount    valueobject.Money // positive cents to give back
	Category  entity.RefundCategory
	Reason    string
}

// IssueRefundUseCase refunds a settled payment: it asks the gateway to move
// the money back (when the payment came through the gateway) and records a
// negative refund payment linked to the same lease.
type IssueRefundUseCase struct {
	paymentRepo adapter.PaymentRepository
	gateway     adapter.PaymentGateway
	clock       adapter.Clock
	cache       revenue.SummaryCache
}

// NewIssueRefundUseCase creates a new IssueRefundUseCase instance.
func NewIssueRefundUseCase(
	paymentRepo adapter.PaymentRepository,
	gateway adapter.PaymentGateway,
	clock adapter.Clock,
	cache revenue.SummaryCache,
) *IssueRefundUseCase {
	return &IssueRefundUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		clock:       clock,
		cache:       cache,
	}
}

// Execute issues the refund.
func (uc *IssueRefundUseCase) Execute(ctx context.Context, input IssueRefundInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentZeroAmount,
			"refund amount must be positive",
			domainerror.ErrPaymentZeroAmount,
		)
	}

	original, err := uc.paymentRepo.GetByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodePaymentNotFound,
				"payment not found",
				domainerror.ErrPaymentNotFound,
			)
		}
		return nil, err
	}

	if !original.IsSucceeded() || original.Type == entity.PaymentTypeRefund {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotRefundable,
			"only succeeded non-refund payments can be refunded",
			domainerror.ErrPaymentNotRefundable,
		)
	}
	if input.Amount > original.Amount {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeRefundExceedsPayment,
			"refund amount exceeds original payment",
			domainerror.ErrRefundExceedsPayment,
		)
	}

	// Gateway payments are refunded at the gateway first; manual entries
	// are bookkeeping only.
	if original.GatewaySessionID != "" {
		if err := uc.gateway.IssueRefund(ctx, original.GatewaySessionID, input.Amount); err != nil {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeGatewayUnavailable,
				"gateway refund failed",
				err,
			)
		}
	}

	category := input.Category
	refund := entity.NewPayment(original.LeaseID, input.Amount.Neg(), 0, entity.PaymentTypeRefund, input.Reason)
	refund.RefundCategory = &category
	refund.GatewaySessionID = original.GatewaySessionID
	refund.MarkSucceeded(uc.clock.Now())

	if err := uc.paymentRepo.Create(ctx, refund); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return refund, nil
}
