package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTKey("test-key")

	access, refresh := GenerateTokens("alice@example.com", "user-1", "USER")
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
}

func TestValidateTokenWrongKey(t *testing.T) {
	SetJWTKey("key-one")
	access, _ := GenerateTokens("bob@example.com", "user-2", "USER")

	SetJWTKey("key-two")
	_, err := ValidateToken(access)
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	pwd := "hunter22"
	hashed := HashPassword(&pwd)
	require.NotNil(t, hashed)
	assert.NotEqual(t, pwd, *hashed)

	ok, _ := VerifyPassword(*hashed, pwd)
	assert.True(t, ok)

	ok, _ = VerifyPassword(*hashed, "wrong")
	assert.False(t, ok)
}
