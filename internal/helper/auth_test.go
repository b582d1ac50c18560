package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(42, "Alice", "jobseeker")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "jobseeker", claims.Role)
	assert.Greater(t, claims.Expiry, 0.0)
}

func TestVerifyToken_BearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "Bob", "employer")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestVerifyToken_Rejections(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "Bob", "employer")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := SetupAuth("another-secret")
		_, err := other.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.VerifyToken("")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.VerifyToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("bearer with no token", func(t *testing.T) {
		_, err := auth.VerifyToken("Bearer ")
		assert.Error(t, err)
	})
}

func TestGenerateToken_MissingInputs(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken(0, "Alice", "jobseeker")
	assert.Error(t, err)

	_, err = auth.GenerateToken(1, "Alice", "")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	auth := SetupAuth("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyPassword("secret123", string(hash)))
	assert.Error(t, auth.VerifyPassword("wrong", string(hash)))
}
