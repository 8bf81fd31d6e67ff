package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// BcryptHasher derives and compares salted password hashes using bcrypt.
// Implements port.PasswordHasher. The comparison is constant-time within
// bcrypt itself; no early exit leaks beyond the hash function.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given work factor. Costs
// outside bcrypt's supported range fall back to the default.
func NewBcryptHasher(cost int) port.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted one-way hash from the plaintext secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

// Compare checks the plaintext secret against a stored hash. A mismatch
// maps to the uniform invalid-credentials sentinel.
func (h *BcryptHasher) Compare(hash, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare secret: %w", err)
	}
	return nil
}
