// Package payment contains payment management use cases.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// CreateCheckoutInput represents the input for starting a gateway checkout.
type CreateCheckoutInput struct {
	LeaseID     uuid.UUID
	Amount      valueobject.Money // zero means charge the lease's monthly rent
	Type        entity.PaymentType
	Description string
}

// CreateCheckoutOutput carries the hosted payment page the tenant is sent to.
type CreateCheckoutOutput struct {
	Payment     *entity.Payment
	CheckoutURL string
}

// CreateCheckoutUseCase opens a gateway checkout session for a lease charge
// and records a pending payment keyed by the session. The payment flips to
// succeeded when the gateway webhook arrives.
type CreateCheckoutUseCase struct {
	leaseRepo   adapter.LeaseRepository
	paymentRepo adapter.PaymentRepository
	gateway     adapter.PaymentGateway
}

// NewCreateCheckoutUseCase creates a new CreateCheckoutUseCase instance.
func NewCreateCheckoutUseCase(
	leaseRepo adapter.LeaseRepository,
	paymentRepo adapter.PaymentRepository,
	gateway adapter.PaymentGateway,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		leaseRepo:   leaseRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

// Execute creates the checkout session and the pending payment.
func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, input CreateCheckoutInput) (*CreateCheckoutOutput, error) {
	lease, err := uc.leaseRepo.GetByID(ctx, input.LeaseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLeaseNotFound) {
			return nil, domainerror.NewLeaseError(
				domainerror.ErrCodeLeaseNotFound,
				"lease not found",
				domainerror.ErrLeaseNotFound,
			)
		}
		return nil, err
	}

	amount := input.Amount
	if amount == 0 {
		amount = valueobject.MoneyFromDecimal(lease.MonthlyRent)
	}
	if amount <= 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentZeroAmount,
			"checkout amount must be positive",
			domainerror.ErrPaymentZeroAmount,
		)
	}

	description := input.Description
	if description == "" {
		description = fmt.Sprintf("%s charge for %s", input.Type, lease.UnitLabel)
	}

	p := entity.NewPayment(&lease.ID, amount, 0, input.Type, description)

	session, err := uc.gateway.CreateCheckoutSession(ctx, adapter.CreateCheckoutInput{
		Amount:      amount,
		Description: description,
		Reference:   p.ID.String(),
	})
	if err != nil {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeGatewayUnavailable,
			"failed to create checkout session",
			err,
		)
	}
	p.GatewaySessionID = session.ID

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record pending payment: %w", err)
	}

	return &CreateCheckoutOutput{
		Payment:     p,
		CheckoutURL: session.URL,
	}, nil
}
