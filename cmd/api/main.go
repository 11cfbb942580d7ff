package main

import (
	"fmt"
	"log"
	"os"

	"github.com/forgelab/repoforge/internal/api"
	"github.com/forgelab/repoforge/internal/config"
	"github.com/forgelab/repoforge/internal/status"
	"github.com/forgelab/repoforge/internal/storage"
	"github.com/forgelab/repoforge/internal/storage/postgres"
	"github.com/forgelab/repoforge/internal/storage/sqlite"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize storage
	var store storage.Storage
	switch cfg.StorageType {
	case "postgres":
		store, err = postgres.NewPostgresStorage(cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL storage: %v", err)
		}
	default:
		store, err = sqlite.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite storage: %v", err)
		}
	}
	defer store.Close()

	// Initialize progress reader
	reader := status.NewReader(cfg.OutputDir, store, cfg.TargetRepos)

	// Initialize handler
	handler := api.NewHandler(reader, store)

	// Setup routes
	router := api.SetupRoutes(handler)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	fmt.Printf("Starting API server on %s\n", addr)
	fmt.Printf("Corpus directory: %s\n", cfg.OutputDir)

	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
