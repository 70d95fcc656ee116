// Command seed populates the product catalog from a JSON dataset.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--catalog        path to the catalog JSON file (overrides SEEDER_CATALOG_PATH)
//	--dry-run        validate the catalog without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	productpg "github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres/product"
	"github.com/heartmarshall/foodtracker-backend/internal/app"
	"github.com/heartmarshall/foodtracker-backend/internal/config"
	"github.com/heartmarshall/foodtracker-backend/internal/seeder"
)

// Compile-time interface assertion.
var _ seeder.CatalogRepo = (*productpg.Repo)(nil)

func main() {
	catalogFlag := flag.String("catalog", "", "path to the catalog JSON file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the catalog without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *catalogFlag != "" {
		seederCfg.CatalogPath = *catalogFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	if seederCfg.CatalogPath == "" {
		logger.Error("no catalog path given (use --catalog or SEEDER_CATALOG_PATH)")
		os.Exit(1)
	}

	products, err := seeder.LoadCatalog(seederCfg.CatalogPath)
	if err != nil {
		logger.Error("load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, productpg.New(pool), seederCfg)

	inserted, err := s.Run(ctx, products)
	if err != nil {
		logger.Error("seeding failed",
			slog.Int("inserted", inserted),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("products", inserted),
		slog.Bool("dry_run", seederCfg.DryRun),
	)
}
