// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a stored hash,
	// returning an error on mismatch.
	VerifyPassword(hashedPassword, password string) error

	// ValidateStrength checks a password against the minimum policy.
	ValidateStrength(password string) error
}
