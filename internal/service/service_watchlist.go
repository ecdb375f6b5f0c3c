package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/internal/validators"
	"github.com/MKhiriev/cinetrack/models"
)

type watchlistService struct {
	watchlist store.WatchlistRepository
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewWatchlistService constructs a WatchlistService over the given
// repository. New entries are validated with an EntryValidator and stamped
// with the current time.
func NewWatchlistService(watchlist store.WatchlistRepository, logger *logger.Logger) WatchlistService {
	return &watchlistService{
		watchlist: watchlist,
		validator: validators.NewEntryValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *watchlistService) List(ctx context.Context, user models.User) ([]models.WatchlistEntry, error) {
	entries, err := s.watchlist.GetWatchlist(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting watchlist: %w", err)
	}
	return entries, nil
}

// Add normalizes input into a new entry with an empty review and no rating
// and inserts it.
func (s *watchlistService) Add(ctx context.Context, user models.User, input models.WatchlistEntryInput) ([]models.WatchlistEntry, error) {
	entry := newWatchlistEntry(input, s.now())
	if err := s.validator.Validate(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.watchlist.AddWatchlistEntry(ctx, user.ID, entry); err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "watchlistService.Add").
			Str("entry_id", entry.ID).
			Msg("watchlist insert rejected")
		return nil, mapStoreError(err)
	}

	return s.List(ctx, user)
}

// Remove deletes the entry. Removing an entry that is not on the list
// succeeds and returns the unchanged list.
func (s *watchlistService) Remove(ctx context.Context, user models.User, entryID string) ([]models.WatchlistEntry, error) {
	if err := s.watchlist.DeleteWatchlistEntry(ctx, user.ID, entryID); err != nil {
		return nil, mapStoreError(err)
	}
	return s.List(ctx, user)
}

func (s *watchlistService) SetRating(ctx context.Context, user models.User, entryID string, req models.RatingRequest) ([]models.WatchlistEntry, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.watchlist.UpdateRating(ctx, user.ID, entryID, int(*req.Rating)); err != nil {
		return nil, mapStoreError(err)
	}
	return s.List(ctx, user)
}

func (s *watchlistService) SetReview(ctx context.Context, user models.User, entryID string, req models.ReviewRequest) ([]models.WatchlistEntry, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.watchlist.UpdateReview(ctx, user.ID, entryID, *req.Review); err != nil {
		return nil, mapStoreError(err)
	}
	return s.List(ctx, user)
}

func newWatchlistEntry(input models.WatchlistEntryInput, addedAt time.Time) models.WatchlistEntry {
	return models.WatchlistEntry{
		ID:          strings.TrimSpace(input.ID),
		ContentType: resolveContentType(input.ContentType, input.ProviderType),
		Title:       strings.TrimSpace(input.Title),
		Poster:      input.Poster,
		Review:      input.Review,
		Runtime:     utils.NormalizeRuntime(input.Runtime),
		AddedAt:     addedAt.UTC(),
	}
}

// resolveContentType prefers the explicit content type and falls back to the
// search provider's type. An empty result fails validation later.
func resolveContentType(contentType models.ContentType, providerType string) models.ContentType {
	if contentType != "" {
		return contentType
	}
	derived, _ := models.ContentTypeFromProvider(providerType)
	return derived
}

// mapStoreError translates repository sentinels into service errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrEntryAlreadyExists):
		return ErrDuplicateEntry
	case errors.Is(err, store.ErrEntryNotFound):
		return ErrEntryNotFound
	case errors.Is(err, store.ErrInvalidEntry):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		return err
	}
}
