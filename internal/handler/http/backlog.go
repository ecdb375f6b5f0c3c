package http

import (
	"net/http"

	"github.com/MKhiriev/cinetrack/models"
)

func (h *Handler) getBacklog(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.BacklogService.List(r.Context(), user)
	respond(w, r, list, http.StatusOK, err)
}

func (h *Handler) addToBacklog(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddBacklogRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Movie == nil {
		writeError(w, r, ErrMissingMovie)
		return
	}

	list, err := h.services.BacklogService.Add(r.Context(), user, *req.Movie)
	respond(w, r, list, http.StatusOK, err)
}

func (h *Handler) removeFromBacklog(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.BacklogService.Remove(r.Context(), user, movieID(r))
	respond(w, r, list, http.StatusOK, err)
}

// moveToWatchlist moves a backlog entry to the watchlist in one step and
// answers with both lists.
func (h *Handler) moveToWatchlist(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.MoveRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.BacklogService.MoveToWatchlist(r.Context(), user, movieID(r), req)
	respond(w, r, resp, http.StatusOK, err)
}
