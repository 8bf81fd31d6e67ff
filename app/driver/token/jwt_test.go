package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/app/domain"
)

const testSecret = "this-is-a-valid-token-secret-32-chars-long"

func testIdentity() *domain.Identity {
	return &domain.Identity{
		Username: "alice",
		Email:    "alice@x.com",
		Role:     domain.UserRoleUser,
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService(Config{
		Secret: testSecret,
		Expiry: 5 * time.Minute,
	})

	tokenStr, err := service.Issue(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := service.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Subject)
	assert.Equal(t, domain.UserRoleUser, claims.Role)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_VerifyRepeatable(t *testing.T) {
	service := NewJWTService(Config{
		Secret: testSecret,
		Expiry: 5 * time.Minute,
	})

	tokenStr, err := service.Issue(testIdentity())
	require.NoError(t, err)

	// A valid token verifies as many times as it is presented
	for i := 0; i < 3; i++ {
		claims, err := service.Verify(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", claims.Subject)
	}
}

func TestJWTService_MissingToken(t *testing.T) {
	service := NewJWTService(Config{
		Secret: testSecret,
		Expiry: 5 * time.Minute,
	})

	claims, err := service.Verify("")
	assert.ErrorIs(t, err, domain.ErrTokenMissing)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService(Config{
		Secret: testSecret,
		Expiry: -1 * time.Minute, // Already expired
	})

	tokenStr, err := service.Issue(testIdentity())
	require.NoError(t, err) // Issuing succeeds

	claims, err := service.Verify(tokenStr)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.Nil(t, claims)

	// Expiry is deterministic: the same token keeps failing the same way
	_, err = service.Verify(tokenStr)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(Config{
		Secret: testSecret,
		Expiry: 5 * time.Minute,
	})
	verifier := NewJWTService(Config{
		Secret: "a-completely-different-secret-32-chars!!",
		Expiry: 5 * time.Minute,
	})

	tokenStr, err := issuer.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	service := NewJWTService(Config{
		Secret: testSecret,
		Expiry: 5 * time.Minute,
	})

	tokenStr, err := service.Issue(testIdentity())
	require.NoError(t, err)

	// Flip one character in each segment; every mutation must be rejected
	for _, pos := range []int{2, len(tokenStr) / 2, len(tokenStr) - 2} {
		mutated := []byte(tokenStr)
		if mutated[pos] == 'A' {
			mutated[pos] = 'B'
		} else {
			mutated[pos] = 'A'
		}

		claims, err := service.Verify(string(mutated))
		assert.Error(t, err, "mutation at position %d should fail verification", pos)
		assert.Nil(t, claims)
	}
}

func TestJWTService_MalformedToken(t *testing.T) {
	service := NewJWTService(Config{
		Secret: testSecret,
		Expiry: 5 * time.Minute,
	})

	for _, tokenStr := range []string{"garbage", "a.b", strings.Repeat("x.", 40)} {
		claims, err := service.Verify(tokenStr)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		assert.Nil(t, claims)
	}
}
