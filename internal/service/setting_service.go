package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/solodko/solodko-api/internal/constants"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

// SettingService reads and writes serialized settings blobs.
type SettingService struct {
	settings repository.SettingRepository
}

// NewSettingService builds a SettingService.
func NewSettingService(settings repository.SettingRepository) *SettingService {
	return &SettingService{settings: settings}
}

// EnsureDefaults seeds missing setting rows with disabled defaults.
func (s *SettingService) EnsureDefaults(ctx context.Context) error {
	defaults := models.TelegramSettings{
		IsActive: false,
		Chats:    []models.TelegramChat{},
	}
	raw, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("marshal default telegram settings: %w", err)
	}
	return s.settings.EnsureDefault(ctx, constants.SettingKeyTelegram, string(raw))
}

// GetTelegramSettings returns the stored Telegram configuration, or disabled
// defaults when none exists.
func (s *SettingService) GetTelegramSettings(ctx context.Context) (models.TelegramSettings, error) {
	var cfg models.TelegramSettings
	row, err := s.settings.GetByKey(ctx, constants.SettingKeyTelegram)
	if err != nil {
		return cfg, err
	}
	if row == nil || row.Value == "" {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(row.Value), &cfg); err != nil {
		return models.TelegramSettings{}, fmt.Errorf("decode telegram settings: %w", err)
	}
	return cfg, nil
}

// UpdateTelegramSettings replaces the Telegram configuration.
func (s *SettingService) UpdateTelegramSettings(ctx context.Context, cfg models.TelegramSettings) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal telegram settings: %w", err)
	}
	return s.settings.Upsert(ctx, constants.SettingKeyTelegram, string(raw))
}
