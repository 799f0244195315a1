// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/betting-platform/backend/internal/application/adapter"
)

const (
	// pbkdf2Iterations is the PBKDF2-HMAC-SHA256 iteration count.
	pbkdf2Iterations = 100000
	// saltLength is the salt size in bytes (64 hex characters).
	saltLength = 32
	// keyLength is the derived key size in bytes.
	keyLength = 32

	minPasswordLength = 8
	maxPasswordLength = 128

	specialCharacters = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	upperCharacters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerCharacters   = "abcdefghijklmnopqrstuvwxyz"
	digitCharacters   = "0123456789"
)

// passwordService implements the adapter.PasswordService interface using
// PBKDF2-HMAC-SHA256 with a per-password random salt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword derives a salted digest, stored as "salt:hexdigest".
func (s *passwordService) HashPassword(password string) (string, error) {
	saltBytes := make([]byte, saltLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, keyLength, sha256.New)
	return salt + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the digest and compares in constant time. Any
// malformed stored value verifies as false.
func (s *passwordService) VerifyPassword(password, digest string) bool {
	salt, stored, ok := strings.Cut(digest, ":")
	if !ok || salt == "" || stored == "" {
		return false
	}
	storedKey, err := hex.DecodeString(stored)
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, keyLength, sha256.New)
	return hmac.Equal(key, storedKey)
}

// ValidatePasswordStrength checks the composition rules in a fixed order;
// the first failure wins and its message names the missing class.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}
	if len(password) > maxPasswordLength {
		return errors.New("password must not exceed 128 characters")
	}
	if !strings.ContainsAny(password, upperCharacters) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, lowerCharacters) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !strings.ContainsAny(password, digitCharacters) {
		return errors.New("password must contain at least one digit")
	}
	if !strings.ContainsAny(password, specialCharacters) {
		return errors.New("password must contain at least one special character")
	}
	return nil
}

// GenerateSecurePassword builds a random password that satisfies the
// strength rules: one guaranteed character per class, the rest drawn from
// the full alphabet, then shuffled.
func (s *passwordService) GenerateSecurePassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	alphabet := upperCharacters + lowerCharacters + digitCharacters + specialCharacters
	chars := make([]byte, 0, length)

	for _, class := range []string{upperCharacters, lowerCharacters, digitCharacters, specialCharacters} {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < length {
		c, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates with crypto/rand so the class-guaranteed characters do
	// not sit at a fixed position.
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("failed to shuffle password: %w", err)
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random character: %w", err)
	}
	return alphabet[n.Int64()], nil
}
