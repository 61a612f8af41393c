package models

import "time"

// Setting is a key/value row holding serialized configuration blobs, such as
// the Telegram notification settings.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:64;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// TelegramChat is one notification destination slot.
type TelegramChat struct {
	ChatID   string `json:"chat_id"`
	Label    string `json:"label"`
	IsActive bool   `json:"is_active"`
}

// TelegramSettings is the Telegram notification configuration stored under
// the telegram_notify setting key.
type TelegramSettings struct {
	BotToken string         `json:"bot_token"`
	IsActive bool           `json:"is_active"`
	Chats    []TelegramChat `json:"chats"`
}

// ActiveChats returns the chat slots that should receive notifications. An
// inactive global switch yields none.
func (s TelegramSettings) ActiveChats() []TelegramChat {
	if !s.IsActive || s.BotToken == "" {
		return nil
	}
	var active []TelegramChat
	for _, chat := range s.Chats {
		if chat.IsActive && chat.ChatID != "" {
			active = append(active, chat)
		}
	}
	return active
}
