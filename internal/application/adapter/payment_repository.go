// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// PaymentListFilter narrows a payment listing. Zero values mean no filter.
type PaymentListFilter struct {
	LeaseID *uuid.UUID
	Status  entity.PaymentStatus
	Type    entity.PaymentType
	Limit   int
}

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create stores a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByID retrieves a payment by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// GetByGatewaySession retrieves the payment created for a checkout
	// session, used to make webhook processing idempotent.
	GetByGatewaySession(ctx context.Context, sessionID string) (*entity.Payment, error)

	// List returns payments matching the filter, most recent first.
	List(ctx context.Context, filter PaymentListFilter) ([]*entity.Payment, error)

	// Update saves changes to an existing payment.
	Update(ctx context.Context, payment *entity.Payment) error
}
