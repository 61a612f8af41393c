package service

import (
	"context"
	"testing"

	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

func TestTelegramSettingsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	cfg := models.TelegramSettings{
		BotToken: "123:abc",
		IsActive: true,
		Chats: []models.TelegramChat{
			{ChatID: "-100123", Label: "kitchen", IsActive: true},
		},
	}
	if err := svc.UpdateTelegramSettings(context.Background(), cfg); err != nil {
		t.Fatalf("UpdateTelegramSettings: %v", err)
	}

	got, err := svc.GetTelegramSettings(context.Background())
	if err != nil {
		t.Fatalf("GetTelegramSettings: %v", err)
	}
	if got.BotToken != cfg.BotToken || !got.IsActive || len(got.Chats) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Chats[0].Label != "kitchen" {
		t.Errorf("chat label = %q", got.Chats[0].Label)
	}
}

func TestEnsureDefaultsDoesNotOverwrite(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	cfg := models.TelegramSettings{BotToken: "keep-me", IsActive: true}
	if err := svc.UpdateTelegramSettings(context.Background(), cfg); err != nil {
		t.Fatalf("UpdateTelegramSettings: %v", err)
	}

	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}

	got, err := svc.GetTelegramSettings(context.Background())
	if err != nil {
		t.Fatalf("GetTelegramSettings: %v", err)
	}
	if got.BotToken != "keep-me" {
		t.Errorf("EnsureDefaults overwrote existing value: %+v", got)
	}
}

func TestGetTelegramSettingsMissingRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	got, err := svc.GetTelegramSettings(context.Background())
	if err != nil {
		t.Fatalf("GetTelegramSettings: %v", err)
	}
	if got.IsActive || got.BotToken != "" {
		t.Errorf("missing row must yield disabled defaults: %+v", got)
	}
}

func TestActiveChats(t *testing.T) {
	cfg := models.TelegramSettings{
		BotToken: "token",
		IsActive: true,
		Chats: []models.TelegramChat{
			{ChatID: "1", IsActive: true},
			{ChatID: "", IsActive: true},
			{ChatID: "3", IsActive: false},
		},
	}
	if got := cfg.ActiveChats(); len(got) != 1 || got[0].ChatID != "1" {
		t.Errorf("ActiveChats = %+v, want only chat 1", got)
	}

	cfg.IsActive = false
	if got := cfg.ActiveChats(); got != nil {
		t.Errorf("global switch off must yield no chats, got %+v", got)
	}

	cfg.IsActive = true
	cfg.BotToken = ""
	if got := cfg.ActiveChats(); got != nil {
		t.Errorf("missing token must yield no chats, got %+v", got)
	}
}
