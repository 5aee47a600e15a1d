package auth

import (
	"testing"
	"time"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 240 * time.Hour

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	pair, err := jwtService.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreUniquePerIssue(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jwtService, err := newJWTService(newTestJWTConfig(), func() time.Time { return fixed })
	require.NoError(t, err)

	userID := uuid.New()
	first, err := jwtService.GenerateTokens(userID)
	require.NoError(t, err)
	second, err := jwtService.GenerateTokens(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, jwtService.HashToken(first.RefreshToken), jwtService.HashToken(second.RefreshToken))
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := jwtService.ValidateAccessToken(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid), "token %q", token)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := issued
	jwtService, err := newJWTService(newTestJWTConfig(), func() time.Time { return current })
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	current = issued.Add(16 * time.Minute)

	_, err = jwtService.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = jwtService.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	cfg := newTestJWTConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(unsigned)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	other := newTestJWTConfig()
	other.SecretKey.Access = "another_access_secret"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	pair, err := otherService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_EqualSecrets(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_TTLs(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, jwtService.AccessTokenTTL())
	assert.Equal(t, 240*time.Hour, jwtService.RefreshTokenTTL())
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	hash := jwtService.HashToken("token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("token"))
	assert.NotEqual(t, hash, jwtService.HashToken("token2"))
}
