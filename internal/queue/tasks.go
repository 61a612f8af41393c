package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names routed by the worker mux.
const (
	TypeOrderNotify = "order:notify"
)

// OrderNotifyPayload carries the committed order to the notification worker.
type OrderNotifyPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderNotifyTask builds the notify task for a committed order.
func NewOrderNotifyTask(orderID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderNotifyPayload{OrderID: orderID})
	if err != nil {
		return nil, fmt.Errorf("marshal order notify payload: %w", err)
	}
	return asynq.NewTask(TypeOrderNotify, payload, asynq.MaxRetry(3)), nil
}
