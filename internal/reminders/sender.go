package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Notification is the payload handed to the push gateway. The gateway owns
// actual delivery; we only hand off.
type Notification struct {
	UserID      int    `json:"user_id"`
	ReminderKey string `json:"reminder_key"`
	Message     string `json:"message"`
	DisplayText string `json:"display_text"`
}

type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// GatewaySender POSTs notifications to the configured push gateway.
type GatewaySender struct {
	URL    string
	Client *http.Client
}

func NewGatewaySender(url string) *GatewaySender {
	return &GatewaySender{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *GatewaySender) Send(ctx context.Context, n Notification) error {
	body, _ := json.Marshal(n)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("push gateway: status %d", res.StatusCode)
	}
	return nil
}

// LogSender is the fallback when no gateway is configured (local dev).
type LogSender struct{}

func (LogSender) Send(_ context.Context, n Notification) error {
	log.Printf("reminder due for user %d: %s (%s)", n.UserID, n.Message, n.DisplayText)
	return nil
}
