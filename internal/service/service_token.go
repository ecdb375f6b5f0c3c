package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/models"
)

// tokenService signs access and refresh tokens with separate secrets so that
// one can never be used in place of the other.
type tokenService struct {
	accessSecret  string
	refreshSecret string
	issuer        string

	accessDuration  time.Duration
	refreshDuration time.Duration
}

// NewTokenService builds a [TokenService] from the token settings in cfg.
func NewTokenService(cfg config.App) TokenService {
	return &tokenService{
		accessSecret:    cfg.AccessTokenSecret,
		refreshSecret:   cfg.RefreshTokenSecret,
		issuer:          cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
	}
}

func (s *tokenService) IssueAccessToken(userID string) (string, error) {
	return s.issue(userID, s.accessDuration, s.accessSecret)
}

func (s *tokenService) IssueRefreshToken(userID string) (string, error) {
	return s.issue(userID, s.refreshDuration, s.refreshSecret)
}

func (s *tokenService) VerifyAccessToken(token string) (models.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *tokenService) VerifyRefreshToken(token string) (models.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *tokenService) issue(userID string, duration time.Duration, secret string) (string, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, duration, secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// verify hides the concrete JWT failure (expired, bad signature, wrong
// issuer) behind ErrInvalidToken.
func (s *tokenService) verify(token, secret string) (models.TokenClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, secret, s.issuer)
	if err != nil {
		return models.TokenClaims{}, ErrInvalidToken
	}
	return claims, nil
}
