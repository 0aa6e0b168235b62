// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// CheckoutSession is a hosted payment page created at the gateway. The
// tenant completes payment there; settlement arrives later as a webhook.
type CheckoutSession struct {
	ID        string
	URL       string
	ExpiresAt time.Time
}

// CreateCheckoutInput describes the charge a checkout session collects.
type CreateCheckoutInput struct {
	Amount      valueobject.Money
	Description string
	Reference   string // opaque value echoed back in the webhook
}

// WebhookEvent is a verified, decoded gateway notification.
type WebhookEvent struct {
	Type      string // "payment.succeeded", "payment.failed", "refund.succeeded"
	SessionID string
	Amount    valueobject.Money
	Fee       valueobject.Money
	Reference string
	CreatedAt time.Time
}

// PaymentGateway defines the interface to the external payment provider.
// The revenue engine never talks to it; only the checkout and webhook use
// cases do.
type PaymentGateway interface {
	// CreateCheckoutSession creates a hosted checkout session.
	CreateCheckoutSession(ctx context.Context, input CreateCheckoutInput) (*CheckoutSession, error)

	// VerifyWebhook checks the signature of a raw webhook body and decodes
	// the event. Returns ErrWebhookBadSignature on a bad signature.
	VerifyWebhook(body []byte, signature string) (*WebhookEvent, error)

	// IssueRefund asks the gateway to return money for a settled session.
	IssueRefund(ctx context.Context, sessionID string, amount valueobject.Money) error
}
