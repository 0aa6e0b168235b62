// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Lease domain errors.
var (
	// ErrLeaseNotFound is returned when no lease matches the identifier.
	ErrLeaseNotFound = errors.New("lease not found")

	// ErrLeaseInvalidDates is returned when end date precedes start date on
	// a create/update request. The revenue engine itself never raises this;
	// stored leases with bad ranges simply do not accrue.
	ErrLeaseInvalidDates = errors.New("end_date must not be before start_date")

	// ErrLeaseNegativeRent is returned when monthly rent is negative.
	ErrLeaseNegativeRent = errors.New("monthly_rent must not be negative")

	// ErrLeaseNegativeDeposit is returned when the deposit is negative.
	ErrLeaseNegativeDeposit = errors.New("deposit_amount must not be negative")
)

// LeaseErrorCode defines error codes for lease errors.
// Format: LSE-XXYYYY where XX is category and YYYY is specific error.
type LeaseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLeaseInvalidDates    LeaseErrorCode = "LSE-010001"
	ErrCodeLeaseNegativeRent    LeaseErrorCode = "LSE-010002"
	ErrCodeLeaseNegativeDeposit LeaseErrorCode = "LSE-010003"

	// Not found errors (02XXXX)
	ErrCodeLeaseNotFound LeaseErrorCode = "LSE-020001"

	// Internal errors (99XXXX)
	ErrCodeLeaseInternalError LeaseErrorCode = "LSE-990001"
)

// LeaseError represents a lease error with code and message.
type LeaseError struct {
	Code    LeaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LeaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LeaseError) Unwrap() error {
	return e.Err
}

// NewLeaseError creates a new LeaseError with the given code and message.
func NewLeaseError(code LeaseErrorCode, message string, err error) *LeaseError {
	return &LeaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
