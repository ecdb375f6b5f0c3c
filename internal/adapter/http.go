package adapter

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathSignup        = "/users/signup"
	pathLogin         = "/users/login"
	pathRefresh       = "/users/refresh-token"
	pathMe            = "/users/me"
	pathProfile       = "/users/profile"
	pathWatchlist     = "/users/watchlist"
	pathWatchlistItem = "/users/watchlist/{movieId}"
	pathRating        = "/users/watchlist/{movieId}/rating"
	pathReview        = "/users/watchlist/{movieId}/review"
	pathBacklog       = "/users/backlog"
	pathBacklogItem   = "/users/backlog/{movieId}"
	pathMove          = "/users/backlog/{movieId}/move"
	pathVersion       = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress, configures the request
// timeout and enables linear retries for GET requests.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithLinearRetries(cfg.RetryCount, cfg.RetryWaitUnit)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// normalizeBaseURL accepts "host:port", ":port" or a full URL.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		if host, port, err := net.SplitHostPort(raw); err == nil && host == "" {
			raw = net.JoinHostPort("localhost", port)
		}
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. On success the returned access token is
// stored via SetToken.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.send(ctx, h.client.R().SetBody(req).SetResult(&auth), resty.MethodPost, pathSignup); err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}

	h.SetToken(auth.AccessToken)
	return auth, nil
}

// Login implements [ServerAdapter]. On success the returned access token is
// stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.send(ctx, h.client.R().SetBody(req).SetResult(&auth), resty.MethodPost, pathLogin); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}

	h.SetToken(auth.AccessToken)
	return auth, nil
}

// Refresh implements [ServerAdapter]. The new access token replaces the
// stored one.
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	var refreshed models.RefreshResponse
	req := h.client.R().
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&refreshed)
	if err := h.send(ctx, req, resty.MethodPost, pathRefresh); err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh request: %w", err)
	}

	h.SetToken(refreshed.AccessToken)
	return refreshed, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser
	if err := h.send(ctx, h.authedRequest().SetResult(&user), resty.MethodGet, pathMe); err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse
	if err := h.send(ctx, h.authedRequest().SetResult(&profile), resty.MethodGet, pathProfile); err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	return profile, nil
}

func (h *httpServerAdapter) GetWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	return h.watchlistCall(ctx, h.authedRequest(), resty.MethodGet, pathWatchlist)
}

func (h *httpServerAdapter) AddToWatchlist(ctx context.Context, input models.WatchlistEntryInput) ([]models.WatchlistEntry, error) {
	req := h.authedRequest().SetBody(models.AddWatchlistRequest{Movie: &input})
	return h.watchlistCall(ctx, req, resty.MethodPost, pathWatchlist)
}

func (h *httpServerAdapter) RemoveFromWatchlist(ctx context.Context, entryID string) ([]models.WatchlistEntry, error) {
	req := h.authedRequest().SetPathParam("movieId", entryID)
	return h.watchlistCall(ctx, req, resty.MethodDelete, pathWatchlistItem)
}

func (h *httpServerAdapter) SetRating(ctx context.Context, entryID string, rating int) ([]models.WatchlistEntry, error) {
	value := float64(rating)
	req := h.authedRequest().
		SetPathParam("movieId", entryID).
		SetBody(models.RatingRequest{Rating: &value})
	return h.watchlistCall(ctx, req, resty.MethodPatch, pathRating)
}

func (h *httpServerAdapter) SetReview(ctx context.Context, entryID, review string) ([]models.WatchlistEntry, error) {
	req := h.authedRequest().
		SetPathParam("movieId", entryID).
		SetBody(models.ReviewRequest{Review: &review})
	return h.watchlistCall(ctx, req, resty.MethodPatch, pathReview)
}

func (h *httpServerAdapter) GetBacklog(ctx context.Context) ([]models.BacklogEntry, error) {
	return h.backlogCall(ctx, h.authedRequest(), resty.MethodGet, pathBacklog)
}

func (h *httpServerAdapter) AddToBacklog(ctx context.Context, input models.BacklogEntryInput) ([]models.BacklogEntry, error) {
	req := h.authedRequest().SetBody(models.AddBacklogRequest{Movie: &input})
	return h.backlogCall(ctx, req, resty.MethodPost, pathBacklog)
}

func (h *httpServerAdapter) RemoveFromBacklog(ctx context.Context, entryID string) ([]models.BacklogEntry, error) {
	req := h.authedRequest().SetPathParam("movieId", entryID)
	return h.backlogCall(ctx, req, resty.MethodDelete, pathBacklogItem)
}

func (h *httpServerAdapter) MoveToWatchlist(ctx context.Context, entryID string, contentType models.ContentType) (models.MoveResponse, error) {
	var moved models.MoveResponse
	req := h.authedRequest().
		SetPathParam("movieId", entryID).
		SetBody(models.MoveRequest{ContentType: contentType}).
		SetResult(&moved)
	if err := h.send(ctx, req, resty.MethodPost, pathMove); err != nil {
		return models.MoveResponse{}, fmt.Errorf("move request: %w", err)
	}
	return moved, nil
}

// Version implements [ServerAdapter]. The endpoint answers with plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) watchlistCall(ctx context.Context, req *resty.Request, method, path string) ([]models.WatchlistEntry, error) {
	entries := make([]models.WatchlistEntry, 0)
	if err := h.send(ctx, req.SetResult(&entries), method, path); err != nil {
		return nil, fmt.Errorf("watchlist request: %w", err)
	}
	return entries, nil
}

func (h *httpServerAdapter) backlogCall(ctx context.Context, req *resty.Request, method, path string) ([]models.BacklogEntry, error) {
	entries := make([]models.BacklogEntry, 0)
	if err := h.send(ctx, req.SetResult(&entries), method, path); err != nil {
		return nil, fmt.Errorf("backlog request: %w", err)
	}
	return entries, nil
}

// send executes req and maps a non-2xx status to a sentinel error.
func (h *httpServerAdapter) send(ctx context.Context, req *resty.Request, method, path string) error {
	resp, err := req.
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.send").Str("method", method).Str("path", path).Msg("request failed")
		return err
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.send").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("server rejected request")
		return err
	}
	return nil
}

func (h *httpServerAdapter) authedRequest() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
