package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

// MessageSender delivers a formatted message to one chat destination.
type MessageSender interface {
	Send(ctx context.Context, botToken, chatID, text string) error
}

// NotificationService formats committed orders and fans them out to the
// configured chat destinations.
type NotificationService struct {
	orders   repository.OrderRepository
	settings *SettingService
	sender   MessageSender
}

// NewNotificationService builds a NotificationService.
func NewNotificationService(orders repository.OrderRepository, settings *SettingService, sender MessageSender) *NotificationService {
	return &NotificationService{orders: orders, settings: settings, sender: sender}
}

// NotifyOrderCreated loads the order and delivers a summary to every active
// chat. Per-chat failures are logged and do not stop the fan-out.
func (s *NotificationService) NotifyOrderCreated(ctx context.Context, orderID uint) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order %d for notification: %w", orderID, err)
	}
	if order == nil {
		return fmt.Errorf("order %d not found for notification", orderID)
	}

	cfg, err := s.settings.GetTelegramSettings(ctx)
	if err != nil {
		return err
	}
	chats := cfg.ActiveChats()
	if len(chats) == 0 {
		logger.Debugw("telegram notifications disabled, skipping", "order_id", orderID)
		return nil
	}

	text := FormatOrderSummary(order)
	var failed int
	for _, chat := range chats {
		if err := s.sender.Send(ctx, cfg.BotToken, chat.ChatID, text); err != nil {
			failed++
			logger.Errorw("telegram send failed",
				"order_id", orderID,
				"chat", chat.Label,
				"error", err,
			)
		}
	}
	if failed == len(chats) {
		return fmt.Errorf("all %d telegram sends failed for order %d", failed, orderID)
	}
	return nil
}

// FormatOrderSummary renders a human-readable order summary for operators.
func FormatOrderSummary(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎂 Нове замовлення #%d\n", order.ID)
	fmt.Fprintf(&b, "Клієнт: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Телефон: %s\n", order.CustomerPhone)
	if order.DeliveryMethod != "" {
		fmt.Fprintf(&b, "Доставка: %s", order.DeliveryMethod)
		if order.DeliveryDate != "" {
			fmt.Fprintf(&b, ", %s", order.DeliveryDate)
		}
		b.WriteString("\n")
	}
	if order.Address != "" {
		fmt.Fprintf(&b, "Адреса: %s\n", order.Address)
	}

	b.WriteString("\nСклад замовлення:\n")
	for _, item := range order.Items {
		name := fmt.Sprintf("cake #%d", item.CakeID)
		if item.Cake != nil {
			name = item.Cake.Name
		}
		fmt.Fprintf(&b, "• %s × %d", name, item.Quantity)
		if item.Flavor != "" {
			fmt.Fprintf(&b, " (%s)", item.Flavor)
		}
		if item.Weight != nil {
			fmt.Fprintf(&b, ", %.1f кг", *item.Weight)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nРазом: %s грн", order.TotalPrice.String())
	if order.Comment != "" {
		fmt.Fprintf(&b, "\nКоментар: %s", order.Comment)
	}
	return b.String()
}
