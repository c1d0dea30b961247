// Command seed loads a YAML food catalog into the configured store.
//
// It reads the same configuration sources as the server. The catalog path
// is the first positional argument and defaults to foods.yaml:
//
//	seed -d mongodb://localhost:27017 -db-name shop cmd/seed/foods.yaml
package main

import (
	"context"
	"flag"
	"time"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/service"
	"github.com/MKhiriev/eat-around/internal/store"
)

const (
	defaultCatalogPath = "foods.yaml"
	seedTimeout        = time.Minute
)

func main() {
	log := logger.NewLogger("eat-around-seed")

	storageCfg, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	path := defaultCatalogPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	foods, err := loadCatalogFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("error loading catalog")
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	storages, err := store.NewStorages(ctx, *storageCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	menu := service.NewMenuService(storages.FoodRepository, log)

	imported, err := menu.Import(ctx, foods)
	if err != nil {
		log.Error().Err(err).Msg("error importing catalog")
		return
	}

	log.Info().Int("imported", imported).Int("read", len(foods)).Str("path", path).Msg("catalog seeded")
}
