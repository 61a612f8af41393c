package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/solodko/solodko-api/internal/config"
)

const defaultTelegramTimeout = 5 * time.Second

// TelegramSender delivers messages through the Telegram Bot API.
type TelegramSender struct {
	baseURL string
	client  *http.Client
}

// NewTelegramSender builds a sender with a bounded request timeout so a slow
// Telegram API can never hold up an order response.
func NewTelegramSender(cfg config.TelegramConfig) *TelegramSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTelegramTimeout
	}
	baseURL := strings.TrimRight(cfg.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	return &TelegramSender{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Send posts a sendMessage call for one chat.
func (t *TelegramSender) Send(ctx context.Context, botToken, chatID, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, botToken)

	form := url.Values{}
	form.Set("chat_id", chatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var apiResp struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram rejected message: %s", apiResp.Description)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
