package main

import (
	"fmt"

	"github.com/staffly/offline-sync/internal/adapter"
	"github.com/staffly/offline-sync/internal/client"
	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/connectivity"
	"github.com/staffly/offline-sync/internal/geo"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/internal/service"
	"github.com/staffly/offline-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("staffly-offline-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	// Assume online until the probe worker learns otherwise.
	monitor := connectivity.NewMonitor(true, log)

	// No platform geolocation glue is linked into this binary; location
	// checks fail closed until a platform provider is wired in.
	services := service.NewClientServices(storages, serverAdapter, monitor, geo.UnsupportedProvider{}, cfg, log)

	app, err := client.NewApp(services, storages, serverAdapter, monitor, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
