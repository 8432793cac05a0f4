package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-signout/internal/adapter"
	"github.com/MKhiriev/go-signout/internal/client"
	"github.com/MKhiriev/go-signout/internal/config"
	"github.com/MKhiriev/go-signout/internal/kiosk"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewTerminalLogger("go-signout-kiosk", cfg.App.TerminalName, nil)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workflow := kiosk.NewWorkflow(serverAdapter, log)
	app := client.NewApp(workflow, os.Stdin, os.Stdout,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.App.TerminalName, log)

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("kiosk run error")
	}
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
