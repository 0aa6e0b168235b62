// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when no user matches the identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned for malformed or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTokenRevoked is returned when a refresh token was invalidated.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrWeakPassword is returned when a password fails policy checks.
	ErrWeakPassword = errors.New("password does not meet requirements")

	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("insufficient permissions")
)

// AuthErrorCode defines error codes for auth errors.
// Format: ATH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "ATH-010001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "ATH-010002"
	ErrCodeWeakPassword       AuthErrorCode = "ATH-010003"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "ATH-020001"
	ErrCodeInvalidToken AuthErrorCode = "ATH-020002"
	ErrCodeTokenRevoked AuthErrorCode = "ATH-020003"

	// Authorization errors (03XXXX)
	ErrCodeForbidden AuthErrorCode = "ATH-030001"

	// Internal errors (99XXXX)
	ErrCodeAuthInternalError AuthErrorCode = "ATH-990001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
