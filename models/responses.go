package models

import "time"

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User PublicUser `json:"user"`
	TokenPair
}

// RefreshResponse is returned by the refresh-token endpoint. The refresh
// token itself is not rotated, so only a new access token is returned.
type RefreshResponse struct {
	AccessToken string     `json:"accessToken"`
	User        PublicUser `json:"user"`
}

// ProfileSummary is the read-only aggregate computed over a watchlist.
type ProfileSummary struct {
	// TotalWatchTimeMinutes is the sum of runtimes across all entries.
	TotalWatchTimeMinutes int `json:"totalWatchTime"`

	// MoviesWatchedCount is the number of watchlist entries.
	MoviesWatchedCount int `json:"moviesWatched"`

	// AverageRating is the mean of non-zero ratings rounded to one decimal
	// place, or 0 when nothing is rated.
	AverageRating float64 `json:"averageRating"`
}

// ProfileResponse is returned by GET /users/profile.
type ProfileResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ProfileSummary
}

// MoveResponse is returned after moving an entry from backlog to watchlist.
type MoveResponse struct {
	Watchlist []WatchlistEntry `json:"watchlist"`
	Backlog   []BacklogEntry   `json:"backlog"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
}
