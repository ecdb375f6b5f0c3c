package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		AccessTokenSecret:    "access-secret",
		RefreshTokenSecret:   "refresh-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		TokenIssuer:          "cinetrack",
		BcryptCost:           4,
		Version:              "test",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testAppConfig())

	access, err := svc.IssueAccessToken("u-1")
	require.NoError(t, err)
	claims, err := svc.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "cinetrack", claims.Issuer)

	refresh, err := svc.IssueRefreshToken("u-1")
	require.NoError(t, err)
	claims, err = svc.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestTokenService_SecretsAreNotInterchangeable(t *testing.T) {
	svc := NewTokenService(testAppConfig())

	access, err := svc.IssueAccessToken("u-1")
	require.NoError(t, err)
	refresh, err := svc.IssueRefreshToken("u-1")
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsBadTokens(t *testing.T) {
	cfg := testAppConfig()
	svc := NewTokenService(cfg)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "u-1", time.Minute, cfg.AccessTokenSecret)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.AccessTokenDuration = time.Nanosecond
	expired, err := NewTokenService(expiredCfg).IssueAccessToken("u-1")
	require.NoError(t, err)
	time.Sleep(time.Second)

	for name, token := range map[string]string{
		"garbage":      "not-a-jwt",
		"empty":        "",
		"wrong issuer": otherIssuer,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyAccessToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_EmptyUserID(t *testing.T) {
	_, err := NewTokenService(testAppConfig()).IssueAccessToken("")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
