package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
)

// appInfoService reports static facts about the running server.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails when no version is configured, so a server never
// answers GET /api/version with an empty body.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
