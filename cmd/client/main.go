package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/eat-around/internal/adapter"
	"github.com/MKhiriev/eat-around/internal/client"
	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
)

func main() {
	log := logger.NewCLILogger("eat-around-client", os.Getenv("CLIENT_VERBOSE") != "")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
