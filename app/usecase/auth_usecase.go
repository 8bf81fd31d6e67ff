package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// AuthUsecase implements credential and session business logic
type AuthUsecase struct {
	identityRepo port.IdentityRepository
	hasher       port.PasswordHasher
	tokens       port.TokenService
	logger       *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase instance
func NewAuthUsecase(identityRepo port.IdentityRepository, hasher port.PasswordHasher, tokens port.TokenService, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		identityRepo: identityRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger.With("component", "auth_usecase"),
	}
}

// Register creates a new identity. The secret is hashed before anything is
// persisted; either the whole identity lands in the store or nothing does.
// The existence pre-check is an optimization only; the store's uniqueness
// constraint decides races.
func (uc *AuthUsecase) Register(ctx context.Context, username, email, secret string) (*domain.Identity, error) {
	email = strings.ToLower(email)

	if _, err := uc.identityRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	// The hash runs on the request goroutine without holding any lock, so
	// the deliberately expensive work factor stalls only this request.
	passwordHash, err := uc.hasher.Hash(secret)
	if err != nil {
		uc.logger.Error("failed to hash secret", "error", err)
		return nil, err
	}

	identity, err := domain.NewIdentity(username, email, passwordHash)
	if err != nil {
		return nil, err
	}

	if err := uc.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}

	uc.logger.Info("identity registered", "email", identity.Email)
	return identity, nil
}

// Login verifies the credentials and issues a session token. Unknown
// emails and wrong secrets produce the same failure so callers cannot
// enumerate accounts.
func (uc *AuthUsecase) Login(ctx context.Context, email, secret string) (string, error) {
	identity, err := uc.identityRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := uc.hasher.Compare(identity.PasswordHash, secret); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			uc.logger.Warn("login rejected", "email", identity.Email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	tokenString, err := uc.tokens.Issue(identity)
	if err != nil {
		uc.logger.Error("failed to issue token", "email", identity.Email, "error", err)
		return "", err
	}

	uc.logger.Info("login succeeded", "email", identity.Email)
	return tokenString, nil
}
