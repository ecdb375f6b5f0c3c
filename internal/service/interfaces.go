// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Package service holds the CineTrack business rules: account creation and
// login, token issuing, and the watchlist and backlog operations.
//
// Every list operation receives the already authenticated user and only
// touches that user's entries. Mutations return the list as read back after
// the write.
package service

import (
	"context"

	"github.com/MKhiriev/cinetrack/models"
)

// TokenService issues and verifies the access and refresh tokens.
// Implementations are stateless and safe for concurrent use.
type TokenService interface {
	IssueAccessToken(userID string) (string, error)
	IssueRefreshToken(userID string) (string, error)
	VerifyAccessToken(token string) (models.TokenClaims, error)
	VerifyRefreshToken(token string) (models.TokenClaims, error)
}

// AuthService manages accounts and sessions.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh exchanges a refresh token for a new access token. The
	// refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error)

	// Authenticate resolves the owner of an access token.
	Authenticate(ctx context.Context, accessToken string) (models.User, error)
}

type WatchlistService interface {
	List(ctx context.Context, user models.User) ([]models.WatchlistEntry, error)
	Add(ctx context.Context, user models.User, input models.WatchlistEntryInput) ([]models.WatchlistEntry, error)
	Remove(ctx context.Context, user models.User, entryID string) ([]models.WatchlistEntry, error)
	SetRating(ctx context.Context, user models.User, entryID string, req models.RatingRequest) ([]models.WatchlistEntry, error)
	SetReview(ctx context.Context, user models.User, entryID string, req models.ReviewRequest) ([]models.WatchlistEntry, error)
}

type BacklogService interface {
	List(ctx context.Context, user models.User) ([]models.BacklogEntry, error)
	Add(ctx context.Context, user models.User, input models.BacklogEntryInput) ([]models.BacklogEntry, error)
	Remove(ctx context.Context, user models.User, entryID string) ([]models.BacklogEntry, error)

	// MoveToWatchlist atomically moves a backlog entry to the watchlist and
	// returns both lists.
	MoveToWatchlist(ctx context.Context, user models.User, entryID string, req models.MoveRequest) (models.MoveResponse, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, user models.User) (models.ProfileResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
