package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/app/domain"
	"portfolio-api/app/utils/logger"
)

// Helper function to create a test identity repository with mocked database
func createTestIdentityRepository(t *testing.T) (*IdentityRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewIdentityRepository(mockDB, testLogger).(*IdentityRepository)

	return repo, mockDB
}

// Helper function to create a test identity
func createTestIdentity(t *testing.T) *domain.Identity {
	t.Helper()

	identity, err := domain.NewIdentity("alice", "alice@example.com", "$2a$10$fakehashfakehashfakehas")
	require.NoError(t, err)

	return identity
}

func TestIdentityRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface, *domain.Identity)
		wantErr error
	}{
		{
			name: "successful identity creation",
			setupDB: func(mockDB pgxmock.PgxPoolIface, identity *domain.Identity) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						identity.ID,
						identity.Username,
						identity.Email,
						identity.PasswordHash,
						string(identity.Role),
						identity.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: nil,
		},
		{
			name: "duplicate email maps to user already exists",
			setupDB: func(mockDB pgxmock.PgxPoolIface, identity *domain.Identity) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						identity.ID,
						identity.Username,
						identity.Email,
						identity.PasswordHash,
						string(identity.Role),
						identity.CreatedAt,
					).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: domain.ErrUserAlreadyExists,
		},
		{
			name: "database error is surfaced",
			setupDB: func(mockDB pgxmock.PgxPoolIface, identity *domain.Identity) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(
						identity.ID,
						identity.Username,
						identity.Email,
						identity.PasswordHash,
						string(identity.Role),
						identity.CreatedAt,
					).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestIdentityRepository(t)
			defer mockDB.Close()

			identity := createTestIdentity(t)
			tt.setupDB(mockDB, identity)

			err := repo.Create(context.Background(), identity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestIdentityRepository_FindByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		email   string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
		check   func(*testing.T, *domain.Identity)
	}{
		{
			name:  "identity found",
			email: "alice@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM users").
					WithArgs("alice@example.com").
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "username", "email", "password_hash", "role", "created_at",
					}).AddRow(
						uuid.New(), "alice", "alice@example.com", "$2a$10$hash", "user", now,
					))
			},
			check: func(t *testing.T, identity *domain.Identity) {
				assert.Equal(t, "alice", identity.Username)
				assert.Equal(t, "alice@example.com", identity.Email)
				assert.Equal(t, domain.UserRoleUser, identity.Role)
				assert.Equal(t, "$2a$10$hash", identity.PasswordHash)
			},
		},
		{
			name:  "unknown email maps to user not found",
			email: "nobody@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM users").
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:  "database error is surfaced",
			email: "alice@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM users").
					WithArgs("alice@example.com").
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestIdentityRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			identity, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
			} else {
				require.NoError(t, err)
				require.NotNil(t, identity)
				if tt.check != nil {
					tt.check(t, identity)
				}
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
