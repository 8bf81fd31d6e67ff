package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerInput struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     registerInput
		wantErr   bool
		wantField string
	}{
		{
			name: "valid input",
			input: registerInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			wantErr: false,
		},
		{
			name: "missing username",
			input: registerInput{
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			wantErr:   true,
			wantField: "username",
		},
		{
			name: "malformed email",
			input: registerInput{
				Username: "alice",
				Email:    "not-an-email",
				Password: "pw1234",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "password too short",
			input: registerInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "pw",
			},
			wantErr:   true,
			wantField: "password",
		},
		{
			name: "username with invalid characters",
			input: registerInput{
				Username: "alice!!",
				Email:    "alice@example.com",
				Password: "pw1234",
			},
			wantErr:   true,
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			valErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, valErr.Errors, tt.wantField)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@x.com"))
	assert.False(t, IsValidEmail("alice"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice.dev_01"))
	assert.False(t, IsValidUsername("ab"))       // too short
	assert.False(t, IsValidUsername("a b c"))    // whitespace
	assert.False(t, IsValidUsername("alice@me")) // invalid character
}

func TestValidateVar_UserRole(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateVar("user", "user_role"))
	assert.NoError(t, v.ValidateVar("admin", "user_role"))
	assert.Error(t, v.ValidateVar("superuser", "user_role"))
}
