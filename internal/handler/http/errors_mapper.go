package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/service"
	"github.com/MKhiriev/cinetrack/internal/utils"
)

// errorRule maps a sentinel to its status and client-facing message.
type errorRule struct {
	err     error
	status  int
	message string
}

// errorRules is matched in order; the first rule err wraps wins.
// Validation errors carry their own message.
var errorRules = []errorRule{
	{service.ErrValidation, http.StatusBadRequest, ""},
	{service.ErrDuplicateEmail, http.StatusBadRequest, "User already exists"},
	{service.ErrDuplicateEntry, http.StatusBadRequest, "Movie already in list"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "Not authorized, token failed"},
	{service.ErrUserNotFound, http.StatusUnauthorized, "User no longer exists."},
	{service.ErrEntryNotFound, http.StatusNotFound, "Movie not found in list"},

	{ErrMissingToken, http.StatusUnauthorized, "Not authorized, no token"},
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrMissingMovie, http.StatusBadRequest, "Movie data is required"},
	{ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests, try again later"},
	{ErrNoUserInContext, http.StatusInternalServerError, ""},
}

const internalErrorMessage = "Server error"

func matchErrorRule(err error) (errorRule, bool) {
	for _, rule := range errorRules {
		if errors.Is(err, rule.err) {
			return rule, true
		}
	}
	return errorRule{}, false
}

func statusFromError(err error) int {
	if rule, ok := matchErrorRule(err); ok {
		return rule.status
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	rule, ok := matchErrorRule(err)
	switch {
	case !ok || rule.status >= http.StatusInternalServerError:
		return internalErrorMessage
	case rule.err == service.ErrValidation:
		return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	default:
		return rule.message
	}
}

// writeError answers with the status and message mapped from err. Internal
// errors are logged and never leak their text to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
		utils.WriteError(w, internalErrorMessage, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, messageFromError(err), status)
}
