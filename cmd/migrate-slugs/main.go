// Command migrate-slugs backfills URL slugs for catalog rows created before
// slugs existed. Safe to run repeatedly: already-slugged rows are untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/provider"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "migrate-slugs: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	logger.Init("debug", logger.Options{})

	db, err := models.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	container := provider.New(db, cfg, nil)
	updated, err := container.CatalogService.MigrateSlugs(context.Background())
	if err != nil {
		return err
	}

	logger.Infow("slug migration complete", "updated", updated)
	return nil
}
