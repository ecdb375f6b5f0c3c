package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/cinetrack/internal/adapter"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/models"
)

// State is the authentication state of a [Session].
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

var (
	// ErrNotAuthenticated is returned by list operations of an anonymous
	// session.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrSessionExpired is returned when the server rejected the stored
	// credentials. The tokens are cleared and the session is anonymous.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// Session keeps the client's credentials and proxies list operations to the
// server. The token store outlives the process, so a later run resumes the
// session through Start.
type Session struct {
	adapter adapter.ServerAdapter
	tokens  store.TokenStore

	mu    sync.RWMutex
	state State
	user  models.PublicUser

	logger *logger.Logger
}

func NewSession(serverAdapter adapter.ServerAdapter, tokens store.TokenStore, logger *logger.Logger) *Session {
	return &Session{
		adapter: serverAdapter,
		tokens:  tokens,
		logger:  logger,
	}
}

// Start restores a saved session. Without a stored access token the session
// stays anonymous. A token the server rejects is cleared.
func (s *Session) Start(ctx context.Context) error {
	pair, err := s.tokens.Load(ctx)
	if errors.Is(err, store.ErrTokenNotFound) || (err == nil && pair.AccessToken == "") {
		s.becomeAnonymous()
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading saved tokens: %w", err)
	}

	s.adapter.SetToken(pair.AccessToken)
	user, err := s.adapter.Me(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		s.logger.Info().Str("func", "Session.Start").Msg("saved token rejected, starting anonymous")
		return s.clear(ctx)
	}
	if err != nil {
		return fmt.Errorf("error restoring session: %w", err)
	}

	s.becomeAuthenticated(user)
	return nil
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the logged-in user; the zero value when anonymous.
func (s *Session) User() models.PublicUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	auth, err := s.adapter.Signup(ctx, req)
	if err != nil {
		return models.PublicUser{}, err
	}
	return s.authenticated(ctx, auth)
}

func (s *Session) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	auth, err := s.adapter.Login(ctx, req)
	if err != nil {
		return models.PublicUser{}, err
	}
	return s.authenticated(ctx, auth)
}

// Refresh exchanges the stored refresh token for a new access token and
// persists it. A rejected refresh token ends the session.
func (s *Session) Refresh(ctx context.Context) error {
	pair, err := s.tokens.Load(ctx)
	if errors.Is(err, store.ErrTokenNotFound) || (err == nil && pair.RefreshToken == "") {
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("error loading saved tokens: %w", err)
	}

	refreshed, err := s.adapter.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		return s.handleError(ctx, err)
	}

	if err = s.tokens.Save(ctx, models.TokenPair{AccessToken: refreshed.AccessToken}); err != nil {
		return fmt.Errorf("error saving access token: %w", err)
	}
	s.adapter.SetToken(refreshed.AccessToken)
	s.becomeAuthenticated(refreshed.User)
	return nil
}

// Logout discards the tokens locally. The server keeps no session state, so
// there is nothing to revoke.
func (s *Session) Logout(ctx context.Context) error {
	return s.clear(ctx)
}

func (s *Session) Profile(ctx context.Context) (models.ProfileResponse, error) {
	return call(ctx, s, s.adapter.Profile)
}

func (s *Session) Watchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	return call(ctx, s, s.adapter.GetWatchlist)
}

func (s *Session) AddToWatchlist(ctx context.Context, input models.WatchlistEntryInput) ([]models.WatchlistEntry, error) {
	return call(ctx, s, func(ctx context.Context) ([]models.WatchlistEntry, error) {
		return s.adapter.AddToWatchlist(ctx, input)
	})
}

func (s *Session) RemoveFromWatchlist(ctx context.Context, entryID string) ([]models.WatchlistEntry, error) {
	return call(ctx, s, func(ctx context.Context) ([]models.WatchlistEntry, error) {
		return s.adapter.RemoveFromWatchlist(ctx, entryID)
	})
}

func (s *Session) SetRating(ctx context.Context, entryID string, rating int) ([]models.WatchlistEntry, error) {
	return call(ctx, s, func(ctx context.Context) ([]models.WatchlistEntry, error) {
		return s.adapter.SetRating(ctx, entryID, rating)
	})
}

func (s *Session) SetReview(ctx context.Context, entryID, review string) ([]models.WatchlistEntry, error) {
	return call(ctx, s, func(ctx context.Context) ([]models.WatchlistEntry, error) {
		return s.adapter.SetReview(ctx, entryID, review)
	})
}

func (s *Session) Backlog(ctx context.Context) ([]models.BacklogEntry, error) {
	return call(ctx, s, s.adapter.GetBacklog)
}

func (s *Session) AddToBacklog(ctx context.Context, input models.BacklogEntryInput) ([]models.BacklogEntry, error) {
	return call(ctx, s, func(ctx context.Context) ([]models.BacklogEntry, error) {
		return s.adapter.AddToBacklog(ctx, input)
	})
}

func (s *Session) RemoveFromBacklog(ctx context.Context, entryID string) ([]models.BacklogEntry, error) {
	return call(ctx, s, func(ctx context.Context) ([]models.BacklogEntry, error) {
		return s.adapter.RemoveFromBacklog(ctx, entryID)
	})
}

func (s *Session) MoveToWatchlist(ctx context.Context, entryID string, contentType models.ContentType) (models.MoveResponse, error) {
	return call(ctx, s, func(ctx context.Context) (models.MoveResponse, error) {
		return s.adapter.MoveToWatchlist(ctx, entryID, contentType)
	})
}

// Close releases the token store.
func (s *Session) Close() error {
	return s.tokens.Close()
}

// call runs an authenticated operation and ends the session on a 401.
func call[T any](ctx context.Context, s *Session, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if s.State() != StateAuthenticated {
		return zero, ErrNotAuthenticated
	}

	result, err := op(ctx)
	if err != nil {
		return zero, s.handleError(ctx, err)
	}
	return result, nil
}

func (s *Session) handleError(ctx context.Context, err error) error {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	s.logger.Info().Str("func", "Session.handleError").Msg("server rejected credentials, clearing tokens")
	if clearErr := s.clear(ctx); clearErr != nil {
		return errors.Join(ErrSessionExpired, clearErr)
	}
	return ErrSessionExpired
}

func (s *Session) authenticated(ctx context.Context, auth models.AuthResponse) (models.PublicUser, error) {
	if err := s.tokens.Save(ctx, auth.TokenPair); err != nil {
		return models.PublicUser{}, fmt.Errorf("error saving tokens: %w", err)
	}

	s.adapter.SetToken(auth.AccessToken)
	s.becomeAuthenticated(auth.User)
	return auth.User, nil
}

func (s *Session) clear(ctx context.Context) error {
	s.adapter.SetToken("")
	s.becomeAnonymous()

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing saved tokens: %w", err)
	}
	return nil
}

func (s *Session) becomeAuthenticated(user models.PublicUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
}

func (s *Session) becomeAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = models.PublicUser{}
}
