package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/logger"
)

// HTTPService wraps an http.Server as a Runner service.
type HTTPService struct {
	server *http.Server
}

// NewHTTPService builds the API server service.
func NewHTTPService(cfg config.ServerConfig, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func (s *HTTPService) Name() string {
	return "http"
}

func (s *HTTPService) Start(_ context.Context) error {
	logger.Infow("http server listening", "addr", s.server.Addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *HTTPService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
