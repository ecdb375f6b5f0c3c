// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		RetryCount:     2,
		RetryWaitUnit:  time.Millisecond,
	}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: ":5000", want: "http://localhost:5000"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin_StoresAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			User:      models.PublicUser{ID: "u-1", Email: req.Email},
			TokenPair: models.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	auth, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "p"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", auth.User.ID)
	assert.Equal(t, "refresh", auth.RefreshToken)
	assert.Equal(t, "access", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "x"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password")
	assert.Empty(t, a.Token())
}

func TestRefresh_ReplacesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/refresh-token", r.URL.Path)
		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh", req.RefreshToken)

		writeJSON(t, w, http.StatusOK, models.RefreshResponse{AccessToken: "new-access"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("old-access")

	_, err := a.Refresh(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", a.Token())
}

func TestGetWatchlist_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.WatchlistEntry{{ID: "tt1", Title: "Film"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("access")

	entries, err := a.GetWatchlist(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tt1", entries[0].ID)
}

func TestGetWatchlist_EmptyListIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.WatchlistEntry{})
	}))
	defer srv.Close()

	entries, err := newTestAdapter(t, srv.URL).GetWatchlist(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Message: "boom"})
			return
		}
		writeJSON(t, w, http.StatusOK, []models.BacklogEntry{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetBacklog(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestPost_IsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Message: "Server error"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AddToBacklog(context.Background(), models.BacklogEntryInput{ID: "tt1"})
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.EqualValues(t, 1, calls.Load())
}

func TestSetRating_PathAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/watchlist/tt%2F1/rating", r.URL.EscapedPath())

		var req models.RatingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Rating)
		assert.Equal(t, 4.0, *req.Rating)

		writeJSON(t, w, http.StatusOK, []models.WatchlistEntry{{ID: "tt/1", Rating: 4}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("access")

	entries, err := a.SetRating(context.Background(), "tt/1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, entries[0].Rating)
}

func TestMoveToWatchlist_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/backlog/tt1/move", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "Movie not found in backlog"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).MoveToWatchlist(context.Background(), "tt1", models.ContentTypeMovie)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVersion_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestMapHTTPError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.SignupRequest{})
	require.ErrorIs(t, err, ErrTooManyRequests)
	assert.Contains(t, err.Error(), "slow down")
}
