package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-api/app/domain"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost) // keep the test fast

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.NoError(t, hasher.Compare(hash, "pw123"))
}

func TestBcryptHasher_CompareMismatch(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)

	err = hasher.Compare(hash, "wrong-secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestBcryptHasher_CompareGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	err := hasher.Compare("not-a-bcrypt-hash", "pw123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Same secret, different salt, different hash
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "pw123"))
	assert.NoError(t, hasher.Compare(second, "pw123"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	hasher := NewBcryptHasher(999).(*BcryptHasher)
	assert.Equal(t, DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(12).(*BcryptHasher)
	assert.Equal(t, 12, hasher.cost)
}
