package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// uniqueViolation is the Postgres error code for a unique constraint hit
const uniqueViolation = "23505"

// IdentityRepository implements port.IdentityRepository for PostgreSQL
type IdentityRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewIdentityRepository creates a new PostgreSQL identity repository
func NewIdentityRepository(db DatabaseIface, logger *slog.Logger) port.IdentityRepository {
	return &IdentityRepository{
		db:     db,
		logger: logger.With("component", "identity_repository"),
	}
}

// Create persists a new identity. The UNIQUE constraint on email is the
// source of truth for duplicate registration; concurrent inserts racing
// on the same email are resolved here, not by any application pre-check.
func (r *IdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	query := `
		INSERT INTO users (
			id, username, email, password_hash, role, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.Username,
		identity.Email,
		identity.PasswordHash,
		string(identity.Role),
		identity.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn("duplicate registration rejected", "email", identity.Email)
			return domain.ErrUserAlreadyExists
		}
		r.logger.Error("failed to create identity", "email", identity.Email, "error", err)
		return fmt.Errorf("failed to create identity: %w", err)
	}

	r.logger.Info("identity created", "id", identity.ID, "email", identity.Email)
	return nil
}

// FindByEmail looks up an identity by its email
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `
		SELECT
			id, username, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`

	identity := &domain.Identity{}
	var role string

	err := r.db.QueryRow(ctx, query, email).Scan(
		&identity.ID,
		&identity.Username,
		&identity.Email,
		&identity.PasswordHash,
		&role,
		&identity.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to find identity", "email", email, "error", err)
		return nil, fmt.Errorf("failed to find identity: %w", err)
	}

	identity.Role = domain.UserRole(role)
	return identity, nil
}
