package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

const movieIDParam = "movieId"

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func userFromRequest(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}

func movieID(r *http.Request) string {
	return chi.URLParam(r, movieIDParam)
}

// respond writes data with the given status, or the mapped error when err
// is set.
func respond(w http.ResponseWriter, r *http.Request, data any, status int, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err = utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respond").Msg("error writing response")
	}
}
