package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookNotifier delivers messages by POSTing to the chat gateway's webhook
// endpoints. The gateway translates them into platform messages.
type WebhookNotifier struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

var _ Notifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(baseURL, apiKey string) *WebhookNotifier {
	return &WebhookNotifier{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type privatePayload struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type channelPayload struct {
	ChannelID string `json:"channel_id,omitempty"`
	Message   string `json:"message"`
}

func (n *WebhookNotifier) SendPrivate(ctx context.Context, userID, message string) error {
	return n.doPost(ctx, "/notify/private", privatePayload{UserID: userID, Message: message})
}

func (n *WebhookNotifier) SendToChannel(ctx context.Context, channelID, message string) error {
	return n.doPost(ctx, "/notify/channel", channelPayload{ChannelID: channelID, Message: message})
}

// helper: POSTs json with the auth header, succeeds on 2xx
func (n *WebhookNotifier) doPost(ctx context.Context, endpoint string, payload interface{}) error {
	if n.BaseURL == "" {
		return fmt.Errorf("no gateway webhook configured")
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.BaseURL+endpoint, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}
