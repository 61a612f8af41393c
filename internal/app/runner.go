// Package app runs long-lived services with coordinated shutdown.
package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/solodko/solodko-api/internal/logger"
)

// Service is a long-running component managed by the Runner.
type Service interface {
	Name() string
	// Start blocks until the service stops or fails.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner supervises a set of services and stops them all on the first
// failure or on SIGINT/SIGTERM.
type Runner struct {
	services        []Service
	shutdownTimeout time.Duration
}

// NewRunner builds a Runner.
func NewRunner(shutdownTimeout time.Duration, services ...Service) *Runner {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &Runner{services: services, shutdownTimeout: shutdownTimeout}
}

// Run starts every service and blocks until shutdown completes.
func (r *Runner) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		svc := svc
		go func() {
			logger.Infow("service starting", "service", svc.Name())
			if err := svc.Start(ctx); err != nil {
				logger.Errorw("service stopped with error", "service", svc.Name(), "error", err)
				errCh <- err
				return
			}
			errCh <- nil
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Infow("shutdown signal received")
	case err := <-errCh:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.shutdownTimeout)
	defer cancel()
	for _, svc := range r.services {
		if err := svc.Stop(shutdownCtx); err != nil {
			logger.Errorw("service stop failed", "service", svc.Name(), "error", err)
			if runErr == nil {
				runErr = err
			}
		} else {
			logger.Infow("service stopped", "service", svc.Name())
		}
	}
	return runErr
}
