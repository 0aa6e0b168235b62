// Package payment contains payment management use cases.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/revenue"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// HandleWebhookInput is the raw gateway notification as received over HTTP.
type HandleWebhookInput struct {
	Body      []byte
	Signature string
}

// HandleWebhookUseCase settles pending payments from gateway webhooks. The
// gateway retries deliveries, so processing must be idempotent: a payment
// already settled is left untouched.
type HandleWebhookUseCase struct {
	paymentRepo adapter.PaymentRepository
	gateway     adapter.PaymentGateway
	cache       revenue.SummaryCache
}

// NewHandleWebhookUseCase creates a new HandleWebhookUseCase instance.
func NewHandleWebhookUseCase(
	paymentRepo adapter.PaymentRepository,
	gateway adapter.PaymentGateway,
	cache revenue.SummaryCache,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		cache:       cache,
	}
}

// Execute verifies and applies a webhook event.
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, input HandleWebhookInput) error {
	event, err := uc.gateway.VerifyWebhook(input.Body, input.Signature)
	if err != nil {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeWebhookBadSignature,
			"webhook rejected",
			err,
		)
	}

	switch event.Type {
	case "payment.succeeded":
		return uc.settlePayment(ctx, event)
	case "payment.failed":
		return uc.failPayment(ctx, event)
	default:
		// Unknown event types are acknowledged so the gateway stops
		// retrying them.
		slog.Debug("Ignoring gateway webhook event", "type", event.Type, "session_id", event.SessionID)
		return nil
	}
}

func (uc *HandleWebhookUseCase) settlePayment(ctx context.Context, event *adapter.WebhookEvent) error {
	p, err := uc.paymentRepo.GetByGatewaySession(ctx, event.SessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			slog.Warn("Webhook references unknown checkout session", "session_id", event.SessionID)
			return nil
		}
		return err
	}

	if p.Status != entity.PaymentStatusPending {
		return nil
	}

	// The gateway is the source of truth for the settled amount and fee.
	p.Amount = event.Amount
	p.Fee = event.Fee
	p.MarkSucceeded(event.CreatedAt)

	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to settle payment: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}

func (uc *HandleWebhookUseCase) failPayment(ctx context.Context, event *adapter.WebhookEvent) error {
	p, err := uc.paymentRepo.GetByGatewaySession(ctx, event.SessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil
		}
		return err
	}

	if p.Status != entity.PaymentStatusPending {
		return nil
	}

	p.Status = entity.PaymentStatusFailed
	p.UpdatedAt = event.CreatedAt

	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	return nil
}
