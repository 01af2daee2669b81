package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmex/onboarding_backend/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("user-123", "ANALYST", testSecret, time.Hour, "onboarding-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "ANALYST", claims.Role)
	assert.Equal(t, "onboarding-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-123", "ADMIN", testSecret, time.Hour, "onboarding-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-completely-different-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-123", "ADMIN", testSecret, -time.Minute, "onboarding-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("correct-horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-horse", hash))
}
