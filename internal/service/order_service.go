package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/solodko/solodko-api/internal/constants"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

// missingItemPolicy controls what the intake pipeline does when a submitted
// line references a cake that does not exist.
type missingItemPolicy int

const (
	// missingItemPolicyDrop drops the line and continues (cart checkout).
	missingItemPolicyDrop missingItemPolicy = iota
	// missingItemPolicyFail aborts the whole submission (quick order).
	missingItemPolicyFail
)

// OrderNotifier receives a committed order for out-of-band delivery. Failures
// are logged by the caller and never affect the order.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, orderID uint) error
}

// OrderService runs the order intake pipeline.
type OrderService struct {
	db       *gorm.DB
	orders   repository.OrderRepository
	cakes    repository.CakeRepository
	notifier OrderNotifier
}

// NewOrderService builds an OrderService. notifier may be nil.
func NewOrderService(db *gorm.DB, orders repository.OrderRepository, cakes repository.CakeRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{db: db, orders: orders, cakes: cakes, notifier: notifier}
}

// OrderItemInput is one submitted cart line.
type OrderItemInput struct {
	CakeID   uint     `json:"cake_id" binding:"required"`
	Quantity int      `json:"quantity"`
	Flavor   string   `json:"flavor"`
	Weight   *float64 `json:"weight"`
}

// OrderInput is a cart checkout submission. Customer name and phone are
// required for guests only; authenticated submissions may omit them.
type OrderInput struct {
	CustomerName   string           `json:"customer_name"`
	CustomerPhone  string           `json:"customer_phone"`
	DeliveryMethod string           `json:"delivery_method"`
	DeliveryDate   string           `json:"delivery_date"`
	Address        string           `json:"address"`
	Comment        string           `json:"comment"`
	Items          []OrderItemInput `json:"items" binding:"required"`
}

// QuickOrderInput is the single-item, no-cart checkout submission.
type QuickOrderInput struct {
	CakeID         uint     `json:"cake_id" binding:"required"`
	Quantity       int      `json:"quantity"`
	Flavor         string   `json:"flavor"`
	Weight         *float64 `json:"weight"`
	CustomerName   string   `json:"customer_name" binding:"required"`
	CustomerPhone  string   `json:"customer_phone" binding:"required"`
	DeliveryMethod string   `json:"delivery_method"`
	DeliveryDate   string   `json:"delivery_date"`
	Address        string   `json:"address"`
	Comment        string   `json:"comment"`
}

// SubmitCart runs the lenient intake variant: lines referencing unknown cakes
// are dropped and the order commits with the remaining lines. Contact fields
// are checked only for guest submissions.
func (s *OrderService) SubmitCart(ctx context.Context, userID *uint, input OrderInput) (*models.Order, error) {
	return s.submit(ctx, userID, input, missingItemPolicyDrop, userID == nil)
}

// SubmitQuickOrder runs the strict intake variant: an unknown cake fails the
// whole submission with no rows written.
func (s *OrderService) SubmitQuickOrder(ctx context.Context, userID *uint, input QuickOrderInput) (*models.Order, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	cart := OrderInput{
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		DeliveryMethod: input.DeliveryMethod,
		DeliveryDate:   input.DeliveryDate,
		Address:        input.Address,
		Comment:        input.Comment,
		Items: []OrderItemInput{{
			CakeID:   input.CakeID,
			Quantity: input.Quantity,
			Flavor:   input.Flavor,
			Weight:   input.Weight,
		}},
	}
	// Quick order always demands contact details, even when authenticated.
	return s.submit(ctx, userID, cart, missingItemPolicyFail, true)
}

// submit validates, resolves catalog lines, prices and persists the order
// atomically, then hands the committed order to the notifier.
func (s *OrderService) submit(ctx context.Context, userID *uint, input OrderInput, policy missingItemPolicy, requireContact bool) (*models.Order, error) {
	if err := validateOrderInput(input, requireContact); err != nil {
		return nil, err
	}

	resolved, err := s.resolveItems(ctx, input.Items, policy)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, ErrEmptyOrder
	}

	total := models.Money{}
	items := make([]models.OrderItem, 0, len(resolved))
	for _, line := range resolved {
		lineTotal := line.cake.Price.Mul(line.input.Quantity)
		total = total.Add(lineTotal)
		items = append(items, models.OrderItem{
			CakeID:    line.cake.ID,
			Quantity:  line.input.Quantity,
			UnitPrice: line.cake.Price,
			Flavor:    line.input.Flavor,
			Weight:    line.input.Weight,
		})
	}

	order := &models.Order{
		UserID:         userID,
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		DeliveryMethod: input.DeliveryMethod,
		DeliveryDate:   input.DeliveryDate,
		Address:        input.Address,
		Comment:        input.Comment,
		TotalPrice:     total,
		Status:         constants.OrderStatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orders.WithTx(tx).Create(ctx, order, items)
	})
	if err != nil {
		return nil, fmt.Errorf("create order failed: %w", err)
	}

	logger.Infow("order created",
		"order_id", order.ID,
		"items", len(items),
		"total", order.TotalPrice.String(),
	)

	s.notifyCreated(ctx, order.ID)

	// Re-read so the response carries the persisted rows and cake details.
	committed, err := s.orders.GetByID(ctx, order.ID)
	if err != nil || committed == nil {
		return order, nil
	}
	return committed, nil
}

type resolvedLine struct {
	input OrderItemInput
	cake  models.Cake
}

func (s *OrderService) resolveItems(ctx context.Context, inputs []OrderItemInput, policy missingItemPolicy) ([]resolvedLine, error) {
	ids := make([]uint, 0, len(inputs))
	for _, item := range inputs {
		ids = append(ids, item.CakeID)
	}
	cakes, err := s.cakes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Cake, len(cakes))
	for _, cake := range cakes {
		byID[cake.ID] = cake
	}

	var resolved []resolvedLine
	for _, item := range inputs {
		cake, ok := byID[item.CakeID]
		if !ok {
			if policy == missingItemPolicyFail {
				return nil, ErrCakeNotFound
			}
			logger.Warnw("dropping order line, cake not found", "cake_id", item.CakeID)
			continue
		}
		resolved = append(resolved, resolvedLine{input: item, cake: cake})
	}
	return resolved, nil
}

func validateOrderInput(input OrderInput, requireContact bool) error {
	if requireContact {
		if strings.TrimSpace(input.CustomerName) == "" {
			return fmt.Errorf("%w: customer_name is required", ErrValidationFailed)
		}
		if strings.TrimSpace(input.CustomerPhone) == "" {
			return fmt.Errorf("%w: customer_phone is required", ErrValidationFailed)
		}
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrValidationFailed)
	}
	for _, item := range input.Items {
		if item.CakeID == 0 {
			return fmt.Errorf("%w: cake_id is required", ErrInvalidOrderItem)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidOrderItem)
		}
	}
	return nil
}

// notifyCreated hands the order off for delivery. Errors are swallowed after
// logging, notification never fails an already committed order.
func (s *OrderService) notifyCreated(ctx context.Context, orderID uint) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.OrderCreated(ctx, orderID); err != nil {
		logger.Errorw("order notification failed", "order_id", orderID, "error", err)
	}
}
