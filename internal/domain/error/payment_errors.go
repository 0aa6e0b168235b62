// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when no payment matches the identifier.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentZeroAmount is returned when a manual entry has amount zero.
	ErrPaymentZeroAmount = errors.New("amount must not be zero")

	// ErrPaymentNotRefundable is returned when refunding a payment that is
	// not succeeded or is itself a refund.
	ErrPaymentNotRefundable = errors.New("payment cannot be refunded")

	// ErrRefundExceedsPayment is returned when the requested refund is
	// larger than the original payment amount.
	ErrRefundExceedsPayment = errors.New("refund amount exceeds original payment")

	// ErrWebhookBadSignature is returned when a gateway webhook fails HMAC
	// verification.
	ErrWebhookBadSignature = errors.New("webhook signature verification failed")

	// ErrGatewayUnavailable is returned when the payment gateway cannot be
	// reached or answers with a server error.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePaymentZeroAmount    PaymentErrorCode = "PAY-010001"
	ErrCodePaymentNotRefundable PaymentErrorCode = "PAY-010002"
	ErrCodeRefundExceedsPayment PaymentErrorCode = "PAY-010003"

	// Not found errors (02XXXX)
	ErrCodePaymentNotFound PaymentErrorCode = "PAY-020001"

	// Gateway errors (03XXXX)
	ErrCodeWebhookBadSignature PaymentErrorCode = "PAY-030001"
	ErrCodeGatewayUnavailable  PaymentErrorCode = "PAY-030002"

	// Internal errors (99XXXX)
	ErrCodePaymentInternalError PaymentErrorCode = "PAY-990001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
