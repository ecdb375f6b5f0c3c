package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/cinetrack/models"
)

const (
	usersTable     = "users"
	watchlistTable = "watchlist_entries"
	backlogTable   = "backlog_entries"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	userColumns      = []string{"user_id", "name", "email", "password_hash", "created_at"}
	watchlistColumns = []string{"entry_id", "content_type", "title", "poster", "review", "rating", "runtime", "added_at"}
	backlogColumns   = []string{"entry_id", "title", "poster", "runtime", "added_at"}
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(column, value string) (string, []any, error) {
	query, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectListQuery selects a user's list newest first; entry_id breaks
// ties between entries added at the same instant.
func buildSelectListQuery(table string, columns []string, userID string) (string, []any, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("added_at DESC", "entry_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertWatchlistEntryQuery(userID string, entry models.WatchlistEntry) (string, []any, error) {
	query, args, err := psql.Insert(watchlistTable).
		Columns(append([]string{"user_id"}, watchlistColumns...)...).
		Values(userID, entry.ID, string(entry.ContentType), entry.Title, entry.Poster,
			entry.Review, entry.Rating, entry.Runtime, entry.AddedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertBacklogEntryQuery(userID string, entry models.BacklogEntry) (string, []any, error) {
	query, args, err := psql.Insert(backlogTable).
		Columns(append([]string{"user_id"}, backlogColumns...)...).
		Values(userID, entry.ID, entry.Title, entry.Poster, entry.Runtime, entry.AddedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteEntryQuery(table, userID, entryID string) (string, []any, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"user_id": userID, "entry_id": entryID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildTakeBacklogEntryQuery deletes a backlog entry and returns its
// columns in the same statement.
func buildTakeBacklogEntryQuery(userID, entryID string) (string, []any, error) {
	query, args, err := psql.Delete(backlogTable).
		Where(sq.Eq{"user_id": userID, "entry_id": entryID}).
		Suffix("RETURNING " + strings.Join(backlogColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateWatchlistEntryQuery(userID, entryID, column string, value any) (string, []any, error) {
	query, args, err := psql.Update(watchlistTable).
		Set(column, value).
		Where(sq.Eq{"user_id": userID, "entry_id": entryID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// movedEntry builds the watchlist row for a backlog entry taken by a move.
func movedEntry(from models.BacklogEntry, contentType models.ContentType, addedAt time.Time) models.WatchlistEntry {
	return models.WatchlistEntry{
		ID:          from.ID,
		ContentType: contentType,
		Title:       from.Title,
		Poster:      from.Poster,
		Runtime:     from.Runtime,
		AddedAt:     addedAt,
	}
}
