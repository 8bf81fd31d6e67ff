package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		email        string
		passwordHash string
		wantErr      bool
	}{
		{
			name:         "valid identity",
			username:     "testuser",
			email:        "user@example.com",
			passwordHash: "$2a$10$hash",
			wantErr:      false,
		},
		{
			name:         "email is normalized to lowercase",
			username:     "testuser",
			email:        "User@Example.COM",
			passwordHash: "$2a$10$hash",
			wantErr:      false,
		},
		{
			name:         "empty username",
			username:     "",
			email:        "user@example.com",
			passwordHash: "$2a$10$hash",
			wantErr:      true,
		},
		{
			name:         "empty email",
			username:     "testuser",
			email:        "",
			passwordHash: "$2a$10$hash",
			wantErr:      true,
		},
		{
			name:         "malformed email",
			username:     "testuser",
			email:        "not-an-email",
			passwordHash: "$2a$10$hash",
			wantErr:      true,
		},
		{
			name:         "empty password hash",
			username:     "testuser",
			email:        "user@example.com",
			passwordHash: "",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := NewIdentity(tt.username, tt.email, tt.passwordHash)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, identity)
				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, identity.ID)
			assert.Equal(t, tt.username, identity.Username)
			assert.Equal(t, "user@example.com", identity.Email)
			assert.Equal(t, UserRoleUser, identity.Role)
			assert.False(t, identity.CreatedAt.IsZero())
		})
	}
}

func TestIdentity_IsAdmin(t *testing.T) {
	admin := &Identity{Role: UserRoleAdmin}
	user := &Identity{Role: UserRoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}
