// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing, verification
// and strength validation.
type PasswordService interface {
	// HashPassword derives a salted digest from a plaintext password.
	// The result encodes the salt and derived key as "salt:hex".
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches the stored digest.
	// A malformed digest yields false, never an error or panic.
	VerifyPassword(password, digest string) bool

	// ValidatePasswordStrength validates composition rules on a candidate
	// password. The returned error names the first failed rule.
	ValidatePasswordStrength(password string) error

	// GenerateSecurePassword generates a random password of the given length
	// that satisfies the strength rules.
	GenerateSecurePassword(length int) (string, error)
}
