package http

import (
	"net/http"

	"github.com/MKhiriev/cinetrack/internal/utils"
	"github.com/MKhiriev/cinetrack/models"
)

const healthMessage = "Backend is running"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: healthMessage}, http.StatusOK)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Not found", http.StatusNotFound)
}
