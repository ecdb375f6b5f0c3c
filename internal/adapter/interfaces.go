// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the CineTrack server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// session from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/cinetrack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the CineTrack
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the access token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the access token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup creates an account and returns the user with a token pair.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error)

	// Me returns the user owning the current access token.
	Me(ctx context.Context) (models.PublicUser, error)

	// Profile returns the account data with the watchlist summary.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	GetWatchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, input models.WatchlistEntryInput) ([]models.WatchlistEntry, error)
	RemoveFromWatchlist(ctx context.Context, entryID string) ([]models.WatchlistEntry, error)
	SetRating(ctx context.Context, entryID string, rating int) ([]models.WatchlistEntry, error)
	SetReview(ctx context.Context, entryID, review string) ([]models.WatchlistEntry, error)

	GetBacklog(ctx context.Context) ([]models.BacklogEntry, error)
	AddToBacklog(ctx context.Context, input models.BacklogEntryInput) ([]models.BacklogEntry, error)
	RemoveFromBacklog(ctx context.Context, entryID string) ([]models.BacklogEntry, error)

	// MoveToWatchlist moves a backlog entry to the watchlist server-side in
	// one call and returns both lists.
	MoveToWatchlist(ctx context.Context, entryID string, contentType models.ContentType) (models.MoveResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
