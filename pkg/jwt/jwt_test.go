package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("unit-test-secret")
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "ops@example.com", "Ops User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, "Ops User", claims.Name)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), uuid.New(), "a@example.com", "A")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("secret-b"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateToken([]byte("secret"), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
