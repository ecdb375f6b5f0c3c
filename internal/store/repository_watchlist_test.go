package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var watchlistRowColumns = []string{"entry_id", "content_type", "title", "poster", "review", "rating", "runtime", "added_at"}

func TestGetWatchlist_OrdersNewestFirst(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM watchlist_entries WHERE user_id = \$1 ORDER BY added_at DESC, entry_id ASC`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(watchlistRowColumns).
			AddRow("tt2", "tv-show", "Show", "p2", "", 0, 45, newer).
			AddRow("tt1", "movie", "Film", "p1", "good", 4, 142, older))

	entries, err := repo.GetWatchlist(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "tt2", entries[0].ID)
	assert.Equal(t, models.ContentTypeTVShow, entries[0].ContentType)
	assert.Equal(t, 4, entries[1].Rating)
	assert.Equal(t, 142, entries[1].Runtime)
	assert.Equal(t, "good", entries[1].Review)
}

func TestGetWatchlist_EmptyIsNotNil(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM watchlist_entries").
		WillReturnRows(sqlmock.NewRows(watchlistRowColumns))

	entries, err := repo.GetWatchlist(context.Background(), "u-1")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetWatchlist_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM watchlist_entries").
		WillReturnError(errors.New("boom"))

	_, err := repo.GetWatchlist(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAddWatchlistEntry(t *testing.T) {
	addedAt := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	entry := models.WatchlistEntry{
		ID: "tt1", ContentType: models.ContentTypeMovie, Title: "Film", Poster: "p1", Runtime: 142, AddedAt: addedAt,
	}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "inserted"},
		{name: "duplicate", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrEntryAlreadyExists},
		{name: "check violation", execErr: pgError(pgerrcode.CheckViolation), wantErr: ErrInvalidEntry},
		{name: "NUL in text", execErr: pgError(pgerrcode.CharacterNotInRepertoire), wantErr: ErrInvalidEntry},
		{name: "user deleted", execErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrNoUserWasFound},
		{name: "other", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewWatchlistRepository(db, logger.Nop())

			exp := mock.ExpectExec("INSERT INTO watchlist_entries").
				WithArgs("u-1", "tt1", "movie", "Film", "p1", "", 0, 142, addedAt)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.AddWatchlistEntry(context.Background(), "u-1", entry)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteWatchlistEntry_Idempotent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM watchlist_entries WHERE entry_id = \$1 AND user_id = \$2`).
		WithArgs("tt1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM watchlist_entries").
		WithArgs("tt1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteWatchlistEntry(context.Background(), "u-1", "tt1"))
	assert.NoError(t, repo.DeleteWatchlistEntry(context.Background(), "u-1", "tt1"))
}

func TestUpdateRating(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE watchlist_entries SET rating = \$1 WHERE entry_id = \$2 AND user_id = \$3`).
		WithArgs(5, "tt1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE watchlist_entries SET rating").
		WithArgs(3, "missing", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateRating(context.Background(), "u-1", "tt1", 5))
	assert.ErrorIs(t, repo.UpdateRating(context.Background(), "u-1", "missing", 3), ErrEntryNotFound)
}

func TestUpdateReview(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE watchlist_entries SET review").
		WithArgs("loved it", "tt1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE watchlist_entries SET review").
		WithArgs("", "tt1", "u-1").
		WillReturnError(errors.New("boom"))

	assert.NoError(t, repo.UpdateReview(context.Background(), "u-1", "tt1", "loved it"))
	assert.ErrorIs(t, repo.UpdateReview(context.Background(), "u-1", "tt1", ""), ErrExecutingStatement)
}

func TestUpdateReview_RejectedCharacters(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchlistRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE watchlist_entries SET review").
		WithArgs("a\x00b", "tt1", "u-1").
		WillReturnError(pgError(pgerrcode.CharacterNotInRepertoire))

	assert.ErrorIs(t, repo.UpdateReview(context.Background(), "u-1", "tt1", "a\x00b"), ErrInvalidEntry)
}
