//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/cinetrack/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// WatchlistRepository persists watchlist entries. Every method touches only
// rows owned by userID and performs a single statement.
type WatchlistRepository interface {
	GetWatchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	AddWatchlistEntry(ctx context.Context, userID string, entry models.WatchlistEntry) error
	DeleteWatchlistEntry(ctx context.Context, userID, entryID string) error
	UpdateRating(ctx context.Context, userID, entryID string, rating int) error
	UpdateReview(ctx context.Context, userID, entryID, review string) error
}

// BacklogRepository persists backlog entries.
type BacklogRepository interface {
	GetBacklog(ctx context.Context, userID string) ([]models.BacklogEntry, error)
	AddBacklogEntry(ctx context.Context, userID string, entry models.BacklogEntry) error
	DeleteBacklogEntry(ctx context.Context, userID, entryID string) error

	// MoveToWatchlist removes the backlog entry and inserts it into the
	// watchlist in one transaction.
	MoveToWatchlist(ctx context.Context, userID, entryID string, contentType models.ContentType, addedAt time.Time) (models.WatchlistEntry, error)
}

// TokenStore keeps the client's credentials between runs.
type TokenStore interface {
	Load(ctx context.Context) (models.TokenPair, error)
	Save(ctx context.Context, tokens models.TokenPair) error
	Clear(ctx context.Context) error
	Close() error
}
