package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/internal/validators"
	"github.com/MKhiriev/cinetrack/models"
)

type backlogService struct {
	backlog   store.BacklogRepository
	watchlist store.WatchlistRepository
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewBacklogService constructs a BacklogService. The watchlist repository
// is read after a move so both lists can be returned together.
func NewBacklogService(backlog store.BacklogRepository, watchlist store.WatchlistRepository, logger *logger.Logger) BacklogService {
	return &backlogService{
		backlog:   backlog,
		watchlist: watchlist,
		validator: validators.NewEntryValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *backlogService) List(ctx context.Context, user models.User) ([]models.BacklogEntry, error) {
	entries, err := s.backlog.GetBacklog(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting backlog: %w", err)
	}
	return entries, nil
}

func (s *backlogService) Add(ctx context.Context, user models.User, input models.BacklogEntryInput) ([]models.BacklogEntry, error) {
	entry := models.BacklogEntry{
		ID:      strings.TrimSpace(input.ID),
		Title:   strings.TrimSpace(input.Title),
		Poster:  input.Poster,
		Runtime: utils.NormalizeRuntime(input.Runtime),
		AddedAt: s.now().UTC(),
	}
	if err := s.validator.Validate(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.backlog.AddBacklogEntry(ctx, user.ID, entry); err != nil {
		return nil, mapStoreError(err)
	}
	return s.List(ctx, user)
}

func (s *backlogService) Remove(ctx context.Context, user models.User, entryID string) ([]models.BacklogEntry, error) {
	if err := s.backlog.DeleteBacklogEntry(ctx, user.ID, entryID); err != nil {
		return nil, mapStoreError(err)
	}
	return s.List(ctx, user)
}

// MoveToWatchlist moves the entry in one transaction. The content type comes
// from req, either directly or derived from the provider type; there is no
// default. On ErrDuplicateEntry the backlog keeps the entry.
func (s *backlogService) MoveToWatchlist(ctx context.Context, user models.User, entryID string, req models.MoveRequest) (models.MoveResponse, error) {
	contentType := resolveContentType(req.ContentType, req.ProviderType)
	if err := s.validator.Validate(ctx, models.WatchlistEntry{ContentType: contentType}, validators.FieldContentType); err != nil {
		return models.MoveResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	moved, err := s.backlog.MoveToWatchlist(ctx, user.ID, entryID, contentType, s.now().UTC())
	if err != nil {
		return models.MoveResponse{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "backlogService.MoveToWatchlist").
		Str("entry_id", moved.ID).
		Str("content_type", string(moved.ContentType)).
		Msg("backlog entry moved to watchlist")

	watchlist, err := s.watchlist.GetWatchlist(ctx, user.ID)
	if err != nil {
		return models.MoveResponse{}, fmt.Errorf("error getting watchlist: %w", err)
	}
	backlog, err := s.List(ctx, user)
	if err != nil {
		return models.MoveResponse{}, err
	}

	return models.MoveResponse{Watchlist: watchlist, Backlog: backlog}, nil
}
