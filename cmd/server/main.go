package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/solodko/solodko-api/internal/app"
	"github.com/solodko/solodko-api/internal/cache"
	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/provider"
	"github.com/solodko/solodko-api/internal/queue"
	"github.com/solodko/solodko-api/internal/router"
	"github.com/solodko/solodko-api/internal/service"
	"github.com/solodko/solodko-api/internal/worker"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	mode := flag.String("mode", "all", "run mode: all, api or worker")
	flag.Parse()

	if err := run(*configFile, *mode); err != nil {
		fmt.Fprintf(os.Stderr, "solodko-api: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, mode string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger.Init(cfg.App.Mode, logger.Options{
		Dir:        cfg.Log.Dir,
		Filename:   cfg.Log.Filename,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer logger.Z().Sync() //nolint:errcheck

	db, err := models.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	if err := models.InitDefaultAdmin(db); err != nil {
		return err
	}

	if _, err := cache.InitRedis(cfg.Redis); err != nil {
		// API mode degrades without redis; the worker cannot run.
		if mode == "worker" || mode == "all" {
			return err
		}
		logger.Warnw("redis unavailable, rate limiting disabled", "error", err)
	}
	defer cache.Close() //nolint:errcheck

	var notifier service.OrderNotifier
	var queueClient *queue.Client
	if cache.Client != nil {
		queueClient = queue.NewClient(cfg.Redis)
		defer queueClient.Close() //nolint:errcheck
		notifier = queueClient
	}

	container := provider.New(db, cfg, notifier)

	if err := container.SettingService.EnsureDefaults(context.Background()); err != nil {
		return err
	}

	var services []app.Service
	if mode == "all" || mode == "api" {
		engine := router.New(cfg, container)
		services = append(services, app.NewHTTPService(cfg.Server, engine))
	}
	if mode == "all" || mode == "worker" {
		services = append(services, worker.New(cfg.Redis, cfg.Queue, container.NotificationService))
	}
	if len(services) == 0 {
		return fmt.Errorf("unknown mode %q", mode)
	}

	return app.NewRunner(cfg.Server.ShutdownTimeout, services...).Run()
}
