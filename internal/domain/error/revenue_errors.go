// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Revenue reporting domain errors. The aggregation engine itself is total:
// degenerate leases, unknown payment types and malformed period requests all
// resolve to zero contributions rather than errors. These errors belong to
// the surrounding report use case (fetching snapshots, cache, rendering).
var (
	// ErrReportFetchFailed is returned when the payment or lease snapshot
	// could not be loaded.
	ErrReportFetchFailed = errors.New("failed to load report inputs")

	// ErrReportEncodeFailed is returned when the summary cannot be encoded
	// for caching or export.
	ErrReportEncodeFailed = errors.New("failed to encode report")
)

// RevenueErrorCode defines error codes for revenue report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type RevenueErrorCode string

const (
	// Fetch errors (01XXXX)
	ErrCodeReportFetchFailed RevenueErrorCode = "RPT-010001"

	// Rendering errors (02XXXX)
	ErrCodeReportEncodeFailed RevenueErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError RevenueErrorCode = "RPT-990001"
)

// RevenueError represents a revenue report error with code and message.
type RevenueError struct {
	Code    RevenueErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RevenueError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RevenueError) Unwrap() error {
	return e.Err
}

// NewRevenueError creates a new RevenueError with the given code and message.
func NewRevenueError(code RevenueErrorCode, message string, err error) *RevenueError {
	return &RevenueError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
