package handler

import (
	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/handler/http"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/service"
)

// Handlers groups the transport handlers served by the process. CineTrack
// exposes only the REST API.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	h := &Handlers{HTTP: http.NewHandler(services, cfg, logger)}
	logger.Info().Str("address", cfg.HTTPAddress).Msg("HTTP handler created")

	return h, nil
}
