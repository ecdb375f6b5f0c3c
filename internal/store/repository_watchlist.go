package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
)

// watchlistRepository is the PostgreSQL-backed implementation of
// [WatchlistRepository] over the "watchlist_entries" table.
//
// Each mutation is one row-level statement keyed by (user_id, entry_id), so
// concurrent writes to the same list never overwrite each other.
type watchlistRepository struct {
	*DB
	logger *logger.Logger
}

// NewWatchlistRepository constructs a [WatchlistRepository].
func NewWatchlistRepository(db *DB, logger *logger.Logger) WatchlistRepository {
	return &watchlistRepository{
		DB:     db,
		logger: logger,
	}
}

// GetWatchlist returns the user's entries ordered by added_at, newest first.
// An empty list is returned as a non-nil empty slice.
func (r *watchlistRepository) GetWatchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListQuery(watchlistTable, watchlistColumns, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "watchlistRepository.GetWatchlist").
			Str("user_id", userID).
			Msg("failed to execute query for getting watchlist")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.WatchlistEntry, 0, 16)
	for rows.Next() {
		var entry models.WatchlistEntry
		if err = rows.Scan(
			&entry.ID,
			&entry.ContentType,
			&entry.Title,
			&entry.Poster,
			&entry.Review,
			&entry.Rating,
			&entry.Runtime,
			&entry.AddedAt,
		); err != nil {
			log.Err(err).
				Str("func", "watchlistRepository.GetWatchlist").
				Str("user_id", userID).
				Msg("failed to scan watchlist row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// AddWatchlistEntry inserts entry. The primary key makes a second insert
// of the same id fail with [ErrEntryAlreadyExists].
func (r *watchlistRepository) AddWatchlistEntry(ctx context.Context, userID string, entry models.WatchlistEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertWatchlistEntryQuery(userID, entry)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "watchlistRepository.AddWatchlistEntry").
			Str("user_id", userID).
			Str("entry_id", entry.ID).
			Msg("failed to insert watchlist entry")
		return classifyWriteError(err, ErrEntryAlreadyExists)
	}

	return nil
}

// DeleteWatchlistEntry removes the entry if present. Removing an absent
// entry is not an error.
func (r *watchlistRepository) DeleteWatchlistEntry(ctx context.Context, userID, entryID string) error {
	return deleteEntry(ctx, r.DB, watchlistTable, userID, entryID)
}

// UpdateRating sets the rating of an existing entry.
func (r *watchlistRepository) UpdateRating(ctx context.Context, userID, entryID string, rating int) error {
	return r.updateEntry(ctx, userID, entryID, "rating", rating)
}

// UpdateReview replaces the review text of an existing entry.
func (r *watchlistRepository) UpdateReview(ctx context.Context, userID, entryID, review string) error {
	return r.updateEntry(ctx, userID, entryID, "review", review)
}

func (r *watchlistRepository) updateEntry(ctx context.Context, userID, entryID, column string, value any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateWatchlistEntryQuery(userID, entryID, column, value)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "watchlistRepository.updateEntry").
			Str("user_id", userID).
			Str("entry_id", entryID).
			Str("column", column).
			Msg("failed to update watchlist entry")
		return classifyWriteError(err, ErrEntryAlreadyExists)
	}

	return requireAffected(result)
}

// requireAffected turns a statement that matched no row into [ErrEntryNotFound].
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func deleteEntry(ctx context.Context, db *DB, table, userID, entryID string) error {
	query, args, err := buildDeleteEntryQuery(table, userID, entryID)
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deleteEntry").
			Str("table", table).
			Str("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
