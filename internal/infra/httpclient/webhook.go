package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/vimco/vimco-api/internal/config"
	"go.uber.org/zap"
)

// WebhookClient posts JSON events to an external endpoint (CRM, chat bot, ...).
type WebhookClient struct {
	URL        string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewWebhookClient returns nil when no webhook is configured.
func NewWebhookClient(cfg *config.Config, log *zap.Logger) *WebhookClient {
	if cfg.Notify.WebhookURL == "" {
		return nil
	}
	return &WebhookClient{
		URL: cfg.Notify.WebhookURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Logger: log,
	}
}

// WebhookEvent is the body sent to the webhook
type WebhookEvent struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// PostEvent sends one event and expects any 2xx answer.
func (c *WebhookClient) PostEvent(ctx context.Context, event string, data interface{}) error {
	payload, err := sonic.Marshal(WebhookEvent{
		Event:      event,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.Logger.Error("webhook request failed",
			zap.String("event", event),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
