package auth

import (
	"testing"
	"time"

	"projectforge/config"
	"projectforge/internal/domain/service"
	"projectforge/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTTL:  10 * time.Minute,
			RefreshTTL: 24 * time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	clock := testutil.FixedClock()
	jwtService, err := NewJWTService(testConfig(), clock)
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(42, "kai")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, "kai", accessClaims.Username)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "42", accessClaims.Subject)
	assert.Equal(t, clock.Now().Add(10*time.Minute).Unix(), accessClaims.ExpiresAt.Unix())

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Username)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	assert.Equal(t, 24*time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(), testutil.FixedClock())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(1, "admin")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(refreshToken)
	assert.Error(t, err)
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	clock := testutil.FixedClock()
	jwtService, err := NewJWTService(testConfig(), clock)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(1, "admin")
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)
	claims, err := jwtService.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(), testutil.FixedClock())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuing, err := NewJWTService(testConfig(), testutil.FixedClock())
	require.NoError(t, err)
	other := testConfig()
	other.SecretKey.Access = "another_access_secret_key_for_testing"
	validating, err := NewJWTService(other, testutil.FixedClock())
	require.NoError(t, err)

	accessToken, _, err := issuing.GenerateTokens(1, "admin")
	require.NoError(t, err)

	_, err = validating.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{}, testutil.FixedClock())
	assert.Error(t, err)
}
