package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

type fakeSender struct {
	sent []sentMessage
	fail map[string]error
}

type sentMessage struct {
	chatID string
	text   string
}

func (f *fakeSender) Send(_ context.Context, _, chatID, text string) error {
	if err := f.fail[chatID]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func TestNotifyOrderCreatedFansOut(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(repository.NewSettingRepository(db))
	sender := &fakeSender{}
	svc := NewNotificationService(repository.NewOrderRepository(db), settings, sender)

	cfg := models.TelegramSettings{
		BotToken: "token",
		IsActive: true,
		Chats: []models.TelegramChat{
			{ChatID: "111", Label: "kitchen", IsActive: true},
			{ChatID: "222", Label: "owner", IsActive: true},
			{ChatID: "333", Label: "off", IsActive: false},
		},
	}
	if err := settings.UpdateTelegramSettings(context.Background(), cfg); err != nil {
		t.Fatalf("UpdateTelegramSettings: %v", err)
	}

	cake := seedCake(t, db, "Наполеон", "napoleon", 450)
	orders := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCakeRepository(db), nil)
	weight := 2.0
	order, err := orders.SubmitCart(context.Background(), nil, OrderInput{
		CustomerName:   "Олена",
		CustomerPhone:  "+380501234567",
		DeliveryMethod: "courier",
		DeliveryDate:   "2026-09-01",
		Items:          []OrderItemInput{{CakeID: cake.ID, Quantity: 2, Flavor: "ваніль", Weight: &weight}},
	})
	if err != nil {
		t.Fatalf("SubmitCart: %v", err)
	}

	if err := svc.NotifyOrderCreated(context.Background(), order.ID); err != nil {
		t.Fatalf("NotifyOrderCreated: %v", err)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("sent = %d, want 2 (inactive chat skipped)", len(sender.sent))
	}

	text := sender.sent[0].text
	for _, fragment := range []string{"Олена", "+380501234567", "Наполеон", "× 2", "ваніль", "900.00", "courier", "2026-09-01"} {
		if !strings.Contains(text, fragment) {
			t.Errorf("summary missing %q:\n%s", fragment, text)
		}
	}
}

func TestNotifyOrderCreatedDisabled(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(repository.NewSettingRepository(db))
	sender := &fakeSender{}
	svc := NewNotificationService(repository.NewOrderRepository(db), settings, sender)

	cake := seedCake(t, db, "Наполеон", "napoleon", 450)
	orders := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCakeRepository(db), nil)
	order, err := orders.SubmitCart(context.Background(), nil, OrderInput{
		CustomerName:  "Олена",
		CustomerPhone: "+380501234567",
		Items:         []OrderItemInput{{CakeID: cake.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("SubmitCart: %v", err)
	}

	// No settings row at all: silently skip.
	if err := svc.NotifyOrderCreated(context.Background(), order.ID); err != nil {
		t.Fatalf("NotifyOrderCreated: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %d, want 0", len(sender.sent))
	}
}

func TestNotifyOrderCreatedPartialFailure(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(repository.NewSettingRepository(db))
	sender := &fakeSender{fail: map[string]error{"111": errors.New("chat blocked")}}
	svc := NewNotificationService(repository.NewOrderRepository(db), settings, sender)

	cfg := models.TelegramSettings{
		BotToken: "token",
		IsActive: true,
		Chats: []models.TelegramChat{
			{ChatID: "111", IsActive: true},
			{ChatID: "222", IsActive: true},
		},
	}
	if err := settings.UpdateTelegramSettings(context.Background(), cfg); err != nil {
		t.Fatalf("UpdateTelegramSettings: %v", err)
	}

	cake := seedCake(t, db, "Наполеон", "napoleon", 450)
	orders := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCakeRepository(db), nil)
	order, err := orders.SubmitCart(context.Background(), nil, OrderInput{
		CustomerName:  "Олена",
		CustomerPhone: "+380501234567",
		Items:         []OrderItemInput{{CakeID: cake.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("SubmitCart: %v", err)
	}

	// One chat failing is tolerated as long as another succeeded.
	if err := svc.NotifyOrderCreated(context.Background(), order.ID); err != nil {
		t.Fatalf("NotifyOrderCreated: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0].chatID != "222" {
		t.Errorf("sent = %+v, want one delivery to 222", sender.sent)
	}
}
