package http

import (
	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	authLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		cfg:         cfg,
		authLimiter: newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		logger:      logger,
	}
}
