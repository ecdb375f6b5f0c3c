package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/internal/validators"
	"github.com/MKhiriev/cinetrack/models"
)

// idGenerator produces new user identifiers.
type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and token issuing
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokens    TokenService
	validator validators.Validator
	ids       idGenerator

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and TokenService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates a new account and logs it in.
//
// Returns:
//   - ErrValidation if a field is missing or the email is malformed.
//   - ErrDuplicateEmail if the email is already registered.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "authService.Signup").Msg("invalid signup request")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResponse{}, ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.newAuthResponse(user)
}

// Login verifies the credentials and issues a fresh token pair. Previously
// issued tokens stay valid until they expire.
//
// Every failure caused by the caller (missing field, unknown email, wrong
// password) is reported as ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.ComparePassword(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.ID).Msg("stored password hash is unusable")
		return models.AuthResponse{}, err
	}
	if !ok {
		log.Info().Str("func", "authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.newAuthResponse(user)
}

// Refresh verifies the refresh token and issues a new access token for the
// same user.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.RefreshResponse, error) {
	if err := a.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return models.RefreshResponse{}, ErrInvalidToken
	}

	claims, err := a.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return models.RefreshResponse{}, err
	}

	user, err := a.findUser(ctx, claims.UserID)
	if err != nil {
		return models.RefreshResponse{}, err
	}

	accessToken, err := a.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return models.RefreshResponse{}, err
	}

	return models.RefreshResponse{AccessToken: accessToken, User: user.Public()}, nil
}

// Authenticate returns the user that owns accessToken. A valid token whose
// user has been removed yields ErrUserNotFound.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	claims, err := a.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return models.User{}, err
	}

	return a.findUser(ctx, claims.UserID)
}

func (a *authService) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.findUser").
			Str("user_id", userID).
			Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (a *authService) newAuthResponse(user models.User) (models.AuthResponse, error) {
	accessToken, err := a.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}
	refreshToken, err := a.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		User: user.Public(),
		TokenPair: models.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
