package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-signout/internal/adapter"
	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/handler"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/server"
	"github.com/MKhiriev/go-signout/internal/service"
	"github.com/MKhiriev/go-signout/internal/store"
	"github.com/MKhiriev/go-signout/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-signout-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	titleLookup, err := adapter.NewHTTPTitleLookup(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating title lookup")
	}

	services, err := service.NewServices(storages, titleLookup, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	workers.NewWorkers(services, cfg, log).Run(ctx)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer(ctx)
	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
