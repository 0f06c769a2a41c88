package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// Telegram sends alerts through the Bot API's sendMessage call. Base is
// overridable for tests.
type Telegram struct {
	Token  string
	ChatID string
	Base   string
	Client *http.Client
}

func NewTelegram(token, chatID string) *Telegram {
	if token == "" || chatID == "" {
		return nil
	}
	return &Telegram{
		Token:  token,
		ChatID: chatID,
		Base:   telegramAPI,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type telegramPayload struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (t *Telegram) Send(ctx context.Context, title, text string) error {
	if t == nil || t.Token == "" {
		return errors.New("telegram disabled")
	}
	body, _ := json.Marshal(telegramPayload{ChatID: t.ChatID, Text: title + "\n" + text})
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.Base, t.Token)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("telegram status %d", resp.StatusCode)
	}
	return nil
}
