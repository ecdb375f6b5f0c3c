package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenStores(t *testing.T) map[string]TokenStore {
	t.Helper()

	sqlite, err := NewTokenStore(context.Background(), filepath.Join(t.TempDir(), "state", "tokens.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]TokenStore{
		"sqlite": sqlite,
		"memory": NewMemoryTokenStore(),
	}
}

func TestTokenStore_Lifecycle(t *testing.T) {
	for name, ts := range tokenStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := ts.Load(ctx)
			assert.ErrorIs(t, err, ErrTokenNotFound)

			require.NoError(t, ts.Save(ctx, models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))
			pair, err := ts.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, pair)

			// a refreshed access token keeps the stored refresh token
			require.NoError(t, ts.Save(ctx, models.TokenPair{AccessToken: "a2"}))
			pair, err = ts.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.TokenPair{AccessToken: "a2", RefreshToken: "r1"}, pair)

			require.NoError(t, ts.Clear(ctx))
			_, err = ts.Load(ctx)
			assert.ErrorIs(t, err, ErrTokenNotFound)
		})
	}
}

func TestTokenStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.db")

	first, err := NewTokenStore(ctx, path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, models.TokenPair{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, first.Close())

	second, err := NewTokenStore(ctx, path, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	pair, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r", pair.RefreshToken)
}
