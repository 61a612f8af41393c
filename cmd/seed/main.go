// Command seed populates the database with sample catalog data for local
// development.
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
	"github.com/solodko/solodko-api/internal/service"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
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
	if err := models.InitDefaultAdmin(db); err != nil {
		return err
	}

	container := provider.New(db, cfg, nil)
	ctx := context.Background()

	if err := container.SettingService.EnsureDefaults(ctx); err != nil {
		return err
	}

	biscuit, err := container.CatalogService.CreateCategory(ctx, service.CategoryInput{
		Name:        "Бісквітні",
		Description: "Класичні бісквітні торти",
		SortOrder:   1,
	})
	if err != nil {
		return err
	}
	mousse, err := container.CatalogService.CreateCategory(ctx, service.CategoryInput{
		Name:        "Мусові",
		Description: "Сучасні мусові торти",
		SortOrder:   2,
	})
	if err != nil {
		return err
	}

	cakes := []service.CakeInput{
		{Name: "Торт «Наполеон»", Description: "Класичний листковий торт із заварним кремом", Price: models.NewMoneyFromFloat(450), CategoryID: &biscuit.ID},
		{Name: "Медовик", Description: "Медові коржі зі сметанним кремом", Price: models.NewMoneyFromFloat(380), CategoryID: &biscuit.ID},
		{Name: "Торт «Київський»", Description: "Горіхові коржі безе з масляним кремом", Price: models.NewMoneyFromFloat(520), CategoryID: &biscuit.ID},
		{Name: "Три шоколади", Description: "Мусовий торт із трьох видів шоколаду", Price: models.NewMoneyFromFloat(610), CategoryID: &mousse.ID},
	}
	for _, input := range cakes {
		cake, err := container.CatalogService.CreateCake(ctx, input)
		if err != nil {
			return fmt.Errorf("seed cake %q: %w", input.Name, err)
		}
		logger.Infow("cake seeded", "name", cake.Name, "slug", cake.Slug)
	}

	logger.Infow("seed complete", "cakes", len(cakes))
	return nil
}
