package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/utils"
)

// protect is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// user via [service.AuthService.Authenticate] and stores that user in the
// request context with [utils.WithUser].
//
// A missing token is answered with 401 "Not authorized, no token". A token
// that fails verification, or whose user was deleted, is answered with 401
// as well.
func (h *Handler) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request without token")
			writeError(w, r, fmt.Errorf("%w: %w", ErrMissingToken, err))
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
