// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cinetrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectListQuery(t *testing.T) {
	query, args, err := buildSelectListQuery(watchlistTable, watchlistColumns, "u-1")
	require.NoError(t, err)

	assert.Equal(t, []any{"u-1"}, args)
	assert.True(t, strings.HasPrefix(query, "SELECT entry_id, content_type"))
	assert.Contains(t, query, "FROM watchlist_entries WHERE user_id = $1")
	assert.True(t, strings.HasSuffix(query, "ORDER BY added_at DESC, entry_id ASC"))
}

func Test_buildCreateUserQuery(t *testing.T) {
	at := time.Now()
	query, args, err := buildCreateUserQuery(models.User{ID: "u", Name: "n", Email: "e", PasswordHash: "h", CreatedAt: at})
	require.NoError(t, err)

	assert.Equal(t, []any{"u", "n", "e", "h", at}, args)
	assert.Contains(t, query, "INSERT INTO users")
	assert.Contains(t, query, "$5")
	assert.True(t, strings.HasSuffix(query, "RETURNING user_id, name, email, password_hash, created_at"))
}

// Test_buildQueries_ScopeToUser verifies that every statement touching an
// entry is filtered by both the owner and the entry id.
func Test_buildQueries_ScopeToUser(t *testing.T) {
	builders := map[string]func() (string, []any, error){
		"delete watchlist": func() (string, []any, error) { return buildDeleteEntryQuery(watchlistTable, "u-1", "tt1") },
		"delete backlog":   func() (string, []any, error) { return buildDeleteEntryQuery(backlogTable, "u-1", "tt1") },
		"take backlog":     func() (string, []any, error) { return buildTakeBacklogEntryQuery("u-1", "tt1") },
		"update rating": func() (string, []any, error) {
			return buildUpdateWatchlistEntryQuery("u-1", "tt1", "rating", 3)
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			query, args, err := build()
			require.NoError(t, err)

			assert.Contains(t, query, "entry_id = $")
			assert.Contains(t, query, "user_id = $")
			assert.Contains(t, args, "u-1")
			assert.Contains(t, args, "tt1")
		})
	}
}
