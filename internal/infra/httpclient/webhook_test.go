package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vimco/vimco-api/internal/config"
	"go.uber.org/zap"
)

func TestNewWebhookClient_Disabled(t *testing.T) {
	assert.Nil(t, NewWebhookClient(&config.Config{}, zap.NewNop()))
}

func TestWebhookClient_PostEvent(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		expectError bool
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "ok", status: http.StatusOK},
		{name: "server error", status: http.StatusBadGateway, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got WebhookEvent
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				body, _ := io.ReadAll(r.Body)
				_ = sonic.Unmarshal(body, &got)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			cfg := &config.Config{Notify: config.NotifyCfg{WebhookURL: srv.URL}}
			client := NewWebhookClient(cfg, zap.NewNop())
			require.NotNil(t, client)

			err := client.PostEvent(context.Background(), "lead.created", map[string]string{"name": "Asha"})
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "502")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "lead.created", got.Event)
			assert.False(t, got.OccurredAt.IsZero())
		})
	}
}
