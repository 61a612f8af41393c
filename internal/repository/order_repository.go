package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/solodko/solodko-api/internal/models"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status string
	UserID *uint
}

// OrderRepository is the order storage interface.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, filter OrderFilter, p Pagination) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	CountItems(ctx context.Context, orderID uint) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a gorm-backed OrderRepository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

// Create persists the order header and its items in one go. Callers wrap
// this in a transaction when combining with other writes.
func (r *orderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}
	order.Items = items
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Cake").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter, p Pagination) ([]models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Scopes(paginate(p)).
		Preload("Items").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus sets the status and returns the number of affected rows so
// callers can distinguish a missing order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) CountItems(ctx context.Context, orderID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}
