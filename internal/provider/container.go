// Package provider wires repositories and services together.
package provider

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/repository"
	"github.com/solodko/solodko-api/internal/service"
)

// Container holds the constructed dependency graph.
type Container struct {
	DB *gorm.DB

	CakeRepository     repository.CakeRepository
	CategoryRepository repository.CategoryRepository
	OrderRepository    repository.OrderRepository
	SettingRepository  repository.SettingRepository
	UserRepository     repository.UserRepository

	CatalogService      *service.CatalogService
	OrderService        *service.OrderService
	SettingService      *service.SettingService
	NotificationService *service.NotificationService
	AuthService         *service.AuthService
}

// New builds the container. notifier overrides the order-created sink (the
// queue client in server mode); when nil, committed orders notify
// synchronously through the NotificationService with a bounded timeout.
func New(db *gorm.DB, cfg *config.Config, notifier service.OrderNotifier) *Container {
	c := &Container{DB: db}
	c.initRepositories(db)
	c.initServices(db, cfg, notifier)
	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.CakeRepository = repository.NewCakeRepository(db)
	c.CategoryRepository = repository.NewCategoryRepository(db)
	c.OrderRepository = repository.NewOrderRepository(db)
	c.SettingRepository = repository.NewSettingRepository(db)
	c.UserRepository = repository.NewUserRepository(db)
}

func (c *Container) initServices(db *gorm.DB, cfg *config.Config, notifier service.OrderNotifier) {
	c.CatalogService = service.NewCatalogService(db, c.CakeRepository, c.CategoryRepository)
	c.SettingService = service.NewSettingService(c.SettingRepository)
	c.NotificationService = service.NewNotificationService(
		c.OrderRepository,
		c.SettingService,
		service.NewTelegramSender(cfg.Telegram),
	)
	if notifier == nil {
		notifier = syncNotifier{notifications: c.NotificationService}
	}
	c.OrderService = service.NewOrderService(db, c.OrderRepository, c.CakeRepository, notifier)
	c.AuthService = service.NewAuthService(c.UserRepository, cfg.JWT)
}

// syncNotifier delivers notifications inline on the request path. The timeout
// keeps a slow Telegram API from stalling the order response.
type syncNotifier struct {
	notifications *service.NotificationService
}

func (s syncNotifier) OrderCreated(ctx context.Context, orderID uint) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.notifications.NotifyOrderCreated(ctx, orderID)
}
