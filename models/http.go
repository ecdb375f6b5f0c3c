package models

// SignupRequest is the body of POST /users/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /users/refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AddWatchlistRequest is the body of POST /users/watchlist.
type AddWatchlistRequest struct {
	Movie *WatchlistEntryInput `json:"movie"`
}

// AddBacklogRequest is the body of POST /users/backlog.
type AddBacklogRequest struct {
	Movie *BacklogEntryInput `json:"movie"`
}

// RatingRequest is the body of PATCH /users/watchlist/{movieId}/rating.
// Rating is a float so that non-integer values reach validation instead of
// failing JSON decoding.
type RatingRequest struct {
	Rating *float64 `json:"rating"`
}

// ReviewRequest is the body of PATCH /users/watchlist/{movieId}/review.
type ReviewRequest struct {
	Review *string `json:"review"`
}

// MoveRequest is the body of POST /users/backlog/{movieId}/move.
// Either ContentType or the provider's Type may be given.
type MoveRequest struct {
	ContentType  ContentType `json:"contentType"`
	ProviderType string      `json:"type"`
}
