// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// PaymentType classifies what a payment is for. The set is closed; anything
// the gateway or an operator reports outside it maps to PaymentTypeOther so
// that aggregation stays total.
type PaymentType string

const (
	PaymentTypeDeposit         PaymentType = "deposit"
	PaymentTypeRent            PaymentType = "rent"
	PaymentTypeLateFee         PaymentType = "late_fee"
	PaymentTypeDepositTransfer PaymentType = "deposit_transfer"
	PaymentTypeAdminTransfer   PaymentType = "admin_transfer"
	PaymentTypeRefund          PaymentType = "refund"
	PaymentTypeOther           PaymentType = "other"
)

// ParsePaymentType maps a raw string to a PaymentType, falling back to
// PaymentTypeOther for anything unrecognized.
func ParsePaymentType(s string) PaymentType {
	switch PaymentType(s) {
	case PaymentTypeDeposit, PaymentTypeRent, PaymentTypeLateFee,
		PaymentTypeDepositTransfer, PaymentTypeAdminTransfer, PaymentTypeRefund:
		return PaymentType(s)
	default:
		return PaymentTypeOther
	}
}

// PaymentStatus represents the lifecycle state of a payment. Only succeeded
// payments count toward any revenue figure.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// RefundCategory says what a refund gives back. Only deposit refunds affect
// deposit classification.
type RefundCategory string

const (
	RefundCategoryDeposit RefundCategory = "deposit"
	RefundCategoryRent    RefundCategory = "rent"
	RefundCategoryOther   RefundCategory = "other"
)

// ParseRefundCategory maps a raw string to a RefundCategory, falling back to
// RefundCategoryOther.
func ParseRefundCategory(s string) RefundCategory {
	switch RefundCategory(s) {
	case RefundCategoryDeposit, RefundCategoryRent:
		return RefundCategory(s)
	default:
		return RefundCategoryOther
	}
}

// Payment represents a single money movement: a gateway charge, a manual
// entry, or a refund (negative amount). LeaseID is optional; an unlinked
// payment still counts in cash totals but cannot be matched to a lease.
type Payment struct {
	ID               uuid.UUID
	LeaseID          *uuid.UUID
	Amount           valueobject.Money // signed cents; negative = refund/debit
	Fee              valueobject.Money
	Type             PaymentType
	Status           PaymentStatus
	PaidAt           *time.Time
	RefundCategory   *RefundCategory
	GatewaySessionID string
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPayment creates a pending Payment.
func NewPayment(leaseID *uuid.UUID, amount, fee valueobject.Money, paymentType PaymentType, description string) *Payment {
	now := time.Now().UTC()
	return &Payment{
		ID:          uuid.New(),
		LeaseID:     leaseID,
		Amount:      amount,
		Fee:         fee,
		Type:        paymentType,
		Status:      PaymentStatusPending,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MarkSucceeded records a successful settlement at the given instant.
func (p *Payment) MarkSucceeded(paidAt time.Time) {
	paidAt = paidAt.UTC()
	p.Status = PaymentStatusSucceeded
	p.PaidAt = &paidAt
	p.UpdatedAt = time.Now().UTC()
}

// IsSucceeded reports whether the payment settled.
func (p *Payment) IsSucceeded() bool {
	return p.Status == PaymentStatusSucceeded
}

// IsDepositRefund reports whether the payment is a succeeded refund that
// returns (part of) a security deposit.
func (p *Payment) IsDepositRefund() bool {
	return p.IsSucceeded() &&
		p.Type == PaymentTypeRefund &&
		p.RefundCategory != nil &&
		*p.RefundCategory == RefundCategoryDeposit
}
