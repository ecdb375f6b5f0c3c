package service

import (
	"fmt"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
)

type Services struct {
	TokenService     TokenService
	AuthService      AuthService
	WatchlistService WatchlistService
	BacklogService   BacklogService
	ProfileService   ProfileService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App)

	return &Services{
		TokenService:     tokenService,
		AuthService:      NewAuthService(storages.UserRepository, tokenService, cfg.App, logger),
		WatchlistService: NewWatchlistService(storages.WatchlistRepository, logger),
		BacklogService:   NewBacklogService(storages.BacklogRepository, storages.WatchlistRepository, logger),
		ProfileService:   NewProfileService(storages.WatchlistRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
