package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
)

const tokensTable = "tokens"

// Names under which the client keeps its credentials.
const (
	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
)

// sqliteTokenStore is the SQLite-backed [TokenStore]: a key/value table
// holding the access and refresh token between client runs.
type sqliteTokenStore struct {
	*DB
}

// NewTokenStore opens (or creates) the token database at dsn.
func NewTokenStore(ctx context.Context, dsn string, log *logger.Logger) (TokenStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &sqliteTokenStore{DB: db}, nil
}

// Load returns the saved pair. Missing tokens are returned as empty strings;
// [ErrTokenNotFound] is reported only when neither token is saved.
func (s *sqliteTokenStore) Load(ctx context.Context) (models.TokenPair, error) {
	query, args, err := sq.Select("name", "value").
		From(tokensTable).
		Where(sq.Eq{"name": []string{accessTokenKey, refreshTokenKey}}).
		ToSql()
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pair models.TokenPair
	found := false
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return models.TokenPair{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		found = true
		switch name {
		case accessTokenKey:
			pair.AccessToken = value
		case refreshTokenKey:
			pair.RefreshToken = value
		}
	}
	if err = rows.Err(); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !found {
		return models.TokenPair{}, ErrTokenNotFound
	}
	return pair, nil
}

// Save upserts every non-empty token of the pair. An empty field keeps the
// stored value, so saving a refreshed access token leaves the refresh token
// untouched.
func (s *sqliteTokenStore) Save(ctx context.Context, tokens models.TokenPair) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for name, value := range map[string]string{
			accessTokenKey:  tokens.AccessToken,
			refreshTokenKey: tokens.RefreshToken,
		} {
			if value == "" {
				continue
			}

			query, args, err := sq.Insert(tokensTable).
				Columns("name", "value").
				Values(name, value).
				Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

// Clear removes both tokens.
func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	query, args, err := sq.Delete(tokensTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteTokenStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	err := s.DB.withTx(ctx, fn)
	if errors.Is(err, ErrBeginningTransaction) || errors.Is(err, ErrCommitingTransaction) {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteTokenStore.inTx").Msg("token store transaction failed")
	}
	return err
}
