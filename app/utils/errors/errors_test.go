package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidCredentials, "invalid email or password"),
			expected: "INVALID_CREDENTIALS: invalid email or password",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDatabaseError, "insert failed", errors.New("connection reset")),
			expected: "DATABASE_ERROR: insert failed (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternalError, "something broke", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name       string
		code       ErrorCode
		statusCode int
	}{
		{"unauthorized", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"invalid credentials", ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{"missing token", ErrCodeTokenMissing, http.StatusUnauthorized},
		{"expired token", ErrCodeTokenExpired, http.StatusForbidden},
		{"invalid token", ErrCodeInvalidToken, http.StatusForbidden},
		{"duplicate user", ErrCodeUserExists, http.StatusBadRequest},
		{"empty patch", ErrCodeEmptyPatch, http.StatusBadRequest},
		{"missing field", ErrCodeMissingField, http.StatusBadRequest},
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"database error", ErrCodeDatabaseError, http.StatusInternalServerError},
		{"unknown code", ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			assert.Equal(t, tt.statusCode, err.StatusCode)
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeNotFound, "blog not found")
	wrapped := Wrap(ErrCodeInternalError, "handler failed", appErr)

	extracted, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeInternalError, extracted.Code)

	_, ok = AsAppError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatusCode(ErrUserExists))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}

func TestWithDetailsAndContext(t *testing.T) {
	err := NewValidationError("title is required").
		WithContext("collection", "projects")

	assert.Equal(t, "title is required", err.Details)
	assert.Equal(t, "projects", err.Context["collection"])
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}
