package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
)

// backlogRepository is the PostgreSQL-backed implementation of
// [BacklogRepository] over the "backlog_entries" table.
type backlogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBacklogRepository constructs a [BacklogRepository].
func NewBacklogRepository(db *DB, logger *logger.Logger) BacklogRepository {
	return &backlogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *backlogRepository) GetBacklog(ctx context.Context, userID string) ([]models.BacklogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListQuery(backlogTable, backlogColumns, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "backlogRepository.GetBacklog").
			Str("user_id", userID).
			Msg("failed to execute query for getting backlog")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.BacklogEntry, 0, 16)
	for rows.Next() {
		var entry models.BacklogEntry
		if err = rows.Scan(&entry.ID, &entry.Title, &entry.Poster, &entry.Runtime, &entry.AddedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *backlogRepository) AddBacklogEntry(ctx context.Context, userID string, entry models.BacklogEntry) error {
	query, args, err := buildInsertBacklogEntryQuery(userID, entry)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "backlogRepository.AddBacklogEntry").
			Str("user_id", userID).
			Str("entry_id", entry.ID).
			Msg("failed to insert backlog entry")
		return classifyWriteError(err, ErrEntryAlreadyExists)
	}

	return nil
}

func (r *backlogRepository) DeleteBacklogEntry(ctx context.Context, userID, entryID string) error {
	return deleteEntry(ctx, r.DB, backlogTable, userID, entryID)
}

// MoveToWatchlist deletes the backlog row and inserts the corresponding
// watchlist row in one transaction. If the entry is not in the backlog the
// result is [ErrEntryNotFound]; if it is already in the watchlist the
// transaction rolls back with [ErrEntryAlreadyExists] and the backlog keeps
// the entry.
func (r *backlogRepository) MoveToWatchlist(ctx context.Context, userID, entryID string, contentType models.ContentType, addedAt time.Time) (models.WatchlistEntry, error) {
	log := logger.FromContext(ctx)

	var moved models.WatchlistEntry
	err := r.DB.withTx(ctx, func(tx *sql.Tx) error {
		takeQuery, takeArgs, err := buildTakeBacklogEntryQuery(userID, entryID)
		if err != nil {
			return err
		}

		var taken models.BacklogEntry
		err = tx.QueryRowContext(ctx, takeQuery, takeArgs...).
			Scan(&taken.ID, &taken.Title, &taken.Poster, &taken.Runtime, &taken.AddedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEntryNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		moved = movedEntry(taken, contentType, addedAt)
		insertQuery, insertArgs, err := buildInsertWatchlistEntryQuery(userID, moved)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return classifyWriteError(err, ErrEntryAlreadyExists)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "backlogRepository.MoveToWatchlist").
			Str("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to move backlog entry to watchlist")
		return models.WatchlistEntry{}, err
	}

	return moved, nil
}
