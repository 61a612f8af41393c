package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/queue"
	"github.com/solodko/solodko-api/internal/service"
)

// Worker consumes background tasks from redis.
type Worker struct {
	server        *asynq.Server
	mux           *asynq.ServeMux
	notifications *service.NotificationService
}

// New builds the task worker.
func New(redisCfg config.RedisConfig, queueCfg config.QueueConfig, notifications *service.NotificationService) *Worker {
	concurrency := queueCfg.Concurrency
	if concurrency < 1 {
		concurrency = 5
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		asynq.Config{
			Concurrency: concurrency,
			Logger:      asynqLogger{},
		},
	)

	w := &Worker{
		server:        server,
		mux:           asynq.NewServeMux(),
		notifications: notifications,
	}
	w.mux.HandleFunc(queue.TypeOrderNotify, w.handleOrderNotify)
	return w
}

// Name implements app.Service.
func (w *Worker) Name() string {
	return "worker"
}

// Start runs the asynq server until Stop is called.
func (w *Worker) Start(_ context.Context) error {
	return w.server.Run(w.mux)
}

// Stop shuts the asynq server down gracefully.
func (w *Worker) Stop(_ context.Context) error {
	w.server.Shutdown()
	return nil
}

func (w *Worker) handleOrderNotify(ctx context.Context, task *asynq.Task) error {
	var payload queue.OrderNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode order notify payload: %w: %v", asynq.SkipRetry, err)
	}
	if err := w.notifications.NotifyOrderCreated(ctx, payload.OrderID); err != nil {
		logger.Errorw("order notify task failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.S().Debug(args...) }
func (asynqLogger) Info(args ...interface{})  { logger.S().Info(args...) }
func (asynqLogger) Warn(args ...interface{})  { logger.S().Warn(args...) }
func (asynqLogger) Error(args ...interface{}) { logger.S().Error(args...) }
func (asynqLogger) Fatal(args ...interface{}) { logger.S().Fatal(args...) }
