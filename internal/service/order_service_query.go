package service

import (
	"context"
	"strings"

	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

// GetOrder fetches a full order with items and cake details.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns an order page, optionally filtered by status or user.
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter, p repository.Pagination) ([]models.Order, int64, error) {
	return s.orders.List(ctx, filter, p)
}

// UpdateStatus moves an order to any non-empty status tag. There is no
// closed state machine, operators may move orders freely, including back to
// pending.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrStatusInvalid
	}

	affected, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	logger.Infow("order status updated", "order_id", id, "status", status)
	return s.GetOrder(ctx, id)
}
