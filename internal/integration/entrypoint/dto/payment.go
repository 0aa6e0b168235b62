// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// RecordPaymentRequest represents the request body for a manual payment
// entry. Amounts are decimal currency units on the wire.
type RecordPaymentRequest struct {
	LeaseID     string          `json:"lease_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Fee         decimal.Decimal `json:"fee"`
	Type        string          `json:"type" binding:"required"`
	PaidAt      time.Time       `json:"paid_at" binding:"required"`
	Description string          `json:"description"`
}

// CreateCheckoutRequest represents the request body for starting a gateway
// checkout. A zero amount charges the lease's monthly rent.
type CreateCheckoutRequest struct {
	LeaseID     string          `json:"lease_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
	Description string          `json:"description"`
}

// CheckoutResponse represents the response for a created checkout session.
type CheckoutResponse struct {
	Payment     PaymentResponse `json:"payment"`
	CheckoutURL string          `json:"checkout_url"`
}

// IssueRefundRequest represents the request body for refunding a payment.
type IssueRefundRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Reason   string          `json:"reason"`
}

// PaymentResponse represents the payment data in API responses. Amounts are
// decimal currency units.
type PaymentResponse struct {
	ID               string          `json:"id"`
	LeaseID          *string         `json:"lease_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Fee              decimal.Decimal `json:"fee"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	RefundCategory   *string         `json:"refund_category,omitempty"`
	GatewaySessionID string          `json:"gateway_session_id,omitempty"`
	Description      string          `json:"description,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PaymentListResponse represents a list of payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(payment *entity.Payment) PaymentResponse {
	var leaseID *string
	if payment.LeaseID != nil {
		s := payment.LeaseID.String()
		leaseID = &s
	}

	var refundCategory *string
	if payment.RefundCategory != nil {
		s := string(*payment.RefundCategory)
		refundCategory = &s
	}

	return PaymentResponse{
		ID:               payment.ID.String(),
		LeaseID:          leaseID,
		Amount:           payment.Amount.Decimal(),
		Fee:              payment.Fee.Decimal(),
		Type:             string(payment.Type),
		Status:           string(payment.Status),
		PaidAt:           payment.PaidAt,
		RefundCategory:   refundCategory,
		GatewaySessionID: payment.GatewaySessionID,
		Description:      payment.Description,
		CreatedAt:        payment.CreatedAt,
	}
}

// ToPaymentListResponse converts domain payments to a list response.
func ToPaymentListResponse(payments []*entity.Payment) PaymentListResponse {
	out := PaymentListResponse{
		Payments: make([]PaymentResponse, len(payments)),
	}
	for i, p := range payments {
		out.Payments[i] = ToPaymentResponse(p)
	}
	return out
}

// MoneyFromRequest converts a wire decimal to engine cents.
func MoneyFromRequest(d decimal.Decimal) valueobject.Money {
	return valueobject.MoneyFromDecimal(d)
}
