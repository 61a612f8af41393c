package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/logger"
)

// Client enqueues background tasks.
type Client struct {
	client *asynq.Client
}

// NewClient builds an asynq client against the configured redis.
func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Close releases the underlying redis connections.
func (c *Client) Close() error {
	return c.client.Close()
}

// OrderCreated enqueues the notification task for a committed order. The
// order itself is already durable, enqueue failure is reported to the caller
// for logging only.
func (c *Client) OrderCreated(ctx context.Context, orderID uint) error {
	task, err := NewOrderNotifyTask(orderID)
	if err != nil {
		return err
	}
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue order notify: %w", err)
	}
	logger.Debugw("order notify enqueued", "order_id", orderID, "task_id", info.ID)
	return nil
}
