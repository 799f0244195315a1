// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account on the betting platform.
// PasswordHash always holds the salted PBKDF2 digest, never a plaintext.
type User struct {
	ID             uuid.UUID
	Name           string
	Username       string
	Email          string
	Phone          string
	PasswordHash   string
	Age            string
	InitialBalance int64
	Active         bool
	IsAdmin        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a new User with default values. Username and email are
// expected to be normalized (lower-cased, trimmed) by the caller.
func NewUser(name, username, email, phone, passwordHash, age string, initialBalance int64, isAdmin bool) *User {
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Name:           name,
		Username:       username,
		Email:          email,
		Phone:          phone,
		PasswordHash:   passwordHash,
		Age:            age,
		InitialBalance: initialBalance,
		Active:         true,
		IsAdmin:        isAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
