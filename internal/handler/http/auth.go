package http

import (
	"net/http"

	"github.com/MKhiriev/cinetrack/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Signup(r.Context(), req)
	respond(w, r, resp, http.StatusCreated, err)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	respond(w, r, resp, http.StatusOK, err)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	respond(w, r, resp, http.StatusOK, err)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	respond(w, r, user.Public(), http.StatusOK, err)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.ProfileService.GetProfile(r.Context(), user)
	respond(w, r, resp, http.StatusOK, err)
}
