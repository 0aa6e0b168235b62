// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailQueueFailed is returned when a job cannot be enqueued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrEmailSendFailed is returned when the provider rejects a send.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailJobNotFound is returned when no queued job matches the identifier.
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrInvalidTemplate is returned when a job carries an unknown template type.
	ErrInvalidTemplate = errors.New("unknown email template")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-010001"

	// Delivery errors (02XXXX)
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EML-030001"

	// Internal errors (99XXXX)
	ErrCodeEmailInternalError EmailErrorCode = "EML-990001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
