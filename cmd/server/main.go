package main

import (
	"context"
	"os"

	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/handler"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/server"
	"github.com/MKhiriev/cinetrack/internal/service"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_ = buildInfo.Print(os.Stdout)

	log := logger.NewLogger("cinetrack-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	// a version injected at build time wins over the built-in default
	if cfg.App.Version == config.DefaultVersion && buildInfo.Known() {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
