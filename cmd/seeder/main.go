package main

import (
	"context"
	"flag"
	"os"

	"github.com/peopleops/employee-registry/internal/config"
	"github.com/peopleops/employee-registry/internal/database"
	"github.com/peopleops/employee-registry/internal/logger"
	"github.com/peopleops/employee-registry/internal/repository"
	"github.com/peopleops/employee-registry/internal/search"
)

func main() {
	file := flag.String("file", "seed_data.yaml", "Path to the YAML seed file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(false, "")
		logger.ErrorLog(ctx, "Failed to load env config", err)
		os.Exit(1)
	}
	logger.Init(cfg.Debug, cfg.LogFilePath)

	store := database.NewStore(cfg.DatastoreProjectID, cfg.DatastoreDatabaseID, cfg.DatastoreKind)
	if err := store.Connect(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to connect to datastore", err)
		os.Exit(1)
	}
	defer store.Disconnect()

	var searchClient *search.Client
	if cfg.SearchEnabled {
		searchClient, err = search.NewClient(cfg.ElasticsearchURL)
		if err != nil {
			logger.ErrorLog(ctx, "Failed to initialize search", err)
			os.Exit(1)
		}
	}

	seeder := database.NewDataSeeder(repository.NewEmployeeRepository(store), searchClient)
	created, err := seeder.SeedFromFile(ctx, *file)
	if err != nil {
		logger.ErrorLog(ctx, "Seeding failed", err)
		os.Exit(1)
	}
	logger.InfoLog(ctx, "Done, %d employees created", created)
}
