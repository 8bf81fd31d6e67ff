package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"portfolio-api/app/domain"
)

// AuthUsecase defines the credential and session business logic interface
type AuthUsecase interface {
	// Register creates a new identity after hashing the secret. The email
	// must not already be registered.
	Register(ctx context.Context, username, email, secret string) (*domain.Identity, error)

	// Login verifies the supplied credentials and, on success, returns a
	// signed session token. Unknown emails and wrong secrets fail the
	// same way.
	Login(ctx context.Context, email, secret string) (string, error)
}

// IdentityRepository defines identity persistence. Implementations must
// back the email uniqueness invariant with a store-level constraint;
// concurrent registrations racing on the same email are resolved there.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
}

// PasswordHasher derives and compares one-way password hashes
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) error
}

// TokenService issues and verifies signed session tokens
type TokenService interface {
	Issue(identity *domain.Identity) (string, error)
	Verify(tokenString string) (*domain.Claims, error)
}
