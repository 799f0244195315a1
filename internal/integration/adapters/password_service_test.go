// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash then verify roundtrip", func(t *testing.T) {
		digest, err := service.HashPassword("Segura123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !service.VerifyPassword("Segura123!", digest) {
			t.Error("expected digest to verify against original password")
		}

		if service.VerifyPassword("Segura123?", digest) {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("digest format is salt colon key", func(t *testing.T) {
		digest, err := service.HashPassword("Segura123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		salt, key, ok := strings.Cut(digest, ":")
		if !ok {
			t.Fatalf("expected digest with ':' separator, got %q", digest)
		}
		if len(salt) != 64 {
			t.Errorf("expected 64 hex chars of salt, got %d", len(salt))
		}
		if len(key) != 64 {
			t.Errorf("expected 64 hex chars of derived key, got %d", len(key))
		}
	})

	t.Run("same password hashes to distinct digests", func(t *testing.T) {
		first, err := service.HashPassword("Segura123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := service.HashPassword("Segura123!")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first == second {
			t.Error("expected per-password random salt to produce distinct digests")
		}
		if !service.VerifyPassword("Segura123!", first) || !service.VerifyPassword("Segura123!", second) {
			t.Error("expected both digests to verify")
		}
	})

	t.Run("malformed digests verify as false", func(t *testing.T) {
		malformed := []string{
			"",
			"no-separator",
			":missingsalt",
			"missingkey:",
			"abc123:zzzz",
		}
		for _, digest := range malformed {
			if service.VerifyPassword("Segura123!", digest) {
				t.Errorf("expected digest %q to verify as false", digest)
			}
		}
	})
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	t.Run("accepts a password meeting every rule", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("Abcdef1!"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1!", "at least 8 characters"},
		{"too long", "Ab1!" + strings.Repeat("a", 128), "must not exceed 128 characters"},
		{"missing uppercase", "abcdef1!", "uppercase"},
		{"missing lowercase", "ABCDEF1!", "lowercase"},
		{"missing digit", "Abcdefg!", "digit"},
		{"missing special", "Abcdefg1", "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if err == nil {
				t.Fatalf("expected error for password %q", tt.password)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message to mention %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}

	t.Run("first failing rule wins", func(t *testing.T) {
		// "abc" fails length, case, digit and special rules at once; the
		// reported reason must be the length one.
		err := service.ValidatePasswordStrength("abc")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "at least 8 characters") {
			t.Errorf("expected length failure first, got %q", err.Error())
		}
	})
}

func TestPasswordService_GenerateSecurePassword(t *testing.T) {
	service := NewPasswordService()

	t.Run("generated password satisfies the strength rules", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			password, err := service.GenerateSecurePassword(12)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(password) != 12 {
				t.Fatalf("expected length 12, got %d", len(password))
			}
			if err := service.ValidatePasswordStrength(password); err != nil {
				t.Errorf("generated password %q fails strength rules: %v", password, err)
			}
		}
	})

	t.Run("generated passwords are distinct", func(t *testing.T) {
		first, err := service.GenerateSecurePassword(12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := service.GenerateSecurePassword(12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Error("expected two generated passwords to differ")
		}
	})

	t.Run("short length is raised to the minimum", func(t *testing.T) {
		password, err := service.GenerateSecurePassword(4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(password) < 8 {
			t.Errorf("expected at least 8 characters, got %d", len(password))
		}
	})
}
