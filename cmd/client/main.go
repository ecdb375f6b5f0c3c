package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cinetrack/internal/client"
	"github.com/MKhiriev/cinetrack/internal/config"
	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return 2
	}

	if len(cfg.Args) == 1 && cfg.Args[0] == "build-info" {
		_ = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return 0
	}

	log := logger.NewClientLogger("cinetrack-client", cfg.LogFile)
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("close client app")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
