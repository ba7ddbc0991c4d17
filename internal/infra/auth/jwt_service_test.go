package auth

import (
	"testing"
	"time"

	"notifyd/config"
	"notifyd/internal/domain/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	userID := uuid.New()
	roles := []string{constants.RoleUser, constants.RoleService}

	token, err := svc.GenerateAccessToken(userID, roles, 15*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.True(t, claims.HasRole(constants.RoleService))
	assert.False(t, claims.HasRole("admin"))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "another_secret_key_that_is_also_long")
	userID := uuid.New()

	foreign, err := other.GenerateAccessToken(userID, nil, time.Minute)
	require.NoError(t, err)

	expired, err := svc.GenerateAccessToken(userID, nil, -time.Minute)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": userID.String(), "type": "access"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":      "clearly-not-a-jwt-token-format",
		"wrong secret":   foreign,
		"expired":        expired,
		"unsigned token": noneAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
