package http

import (
	"net/http"

	"github.com/MKhiriev/cinetrack/models"
)

func (h *Handler) getWatchlist(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.WatchlistService.List(r.Context(), user)
	respond(w, r, list, http.StatusOK, err)
}

func (h *Handler) addToWatchlist(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddWatchlistRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Movie == nil {
		writeError(w, r, ErrMissingMovie)
		return
	}

	list, err := h.services.WatchlistService.Add(r.Context(), user, *req.Movie)
	respond(w, r, list, http.StatusOK, err)
}

func (h *Handler) removeFromWatchlist(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.WatchlistService.Remove(r.Context(), user, movieID(r))
	respond(w, r, list, http.StatusOK, err)
}

func (h *Handler) setRating(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.RatingRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.WatchlistService.SetRating(r.Context(), user, movieID(r), req)
	respond(w, r, list, http.StatusOK, err)
}

func (h *Handler) setReview(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ReviewRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.WatchlistService.SetReview(r.Context(), user, movieID(r), req)
	respond(w, r, list, http.StatusOK, err)
}
