package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a registered identity
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin" // reserved for future elevated access
)

// Identity represents a registered user. The email is the natural key;
// the database enforces its uniqueness.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Exclude from JSON
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewIdentity creates a new identity with validation. The caller supplies
// an already-derived password hash; plaintext secrets never enter the domain.
func NewIdentity(username, email, passwordHash string) (*Identity, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", ErrInvalidInput)
	}

	return &Identity{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Role:         UserRoleUser,
		CreatedAt:    time.Now(),
	}, nil
}

// IsAdmin returns true if the identity has the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == UserRoleAdmin
}
