package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/handler"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/server"
	"github.com/MKhiriev/eat-around/internal/service"
	"github.com/MKhiriev/eat-around/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageCloseTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("eat-around-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("cache", cfg.Storage.Cache.RedisAddress != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeStorages(storages, log)

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, storages.Checkers(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func closeStorages(storages *store.Storages, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), storageCloseTimeout)
	defer cancel()

	if err := storages.Close(ctx); err != nil {
		log.Err(err).Msg("error closing storages")
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
