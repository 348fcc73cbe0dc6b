package mgmtchannel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"mdm/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPChannel implements ManagementChannel by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPChannel struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPChannel creates a new local HTTP management channel for development
func NewLocalHTTPChannel(endpoint string, logger *slog.Logger) service.ManagementChannel {
	return &localHTTPChannel{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishIntent publishes an intent by sending HTTP POST to the local endpoint
func (p *localHTTPChannel) PublishIntent(ctx context.Context, intent *service.ManagementIntent) error {
	// Serialize the intent to JSON
	intentData, err := json.Marshal(intent)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/device-intent-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(intentData)
	pushMsg.Message.MessageID = intent.DeviceID + ":" + string(intent.Intent)
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	// Build attributes with optional request_id for tracing
	attributes := map[string]string{
		"intent":    string(intent.Intent),
		"device_id": intent.DeviceID,
	}
	if intent.RequestID != "" {
		attributes["request_id"] = intent.RequestID
	}
	pushMsg.Message.Attributes = attributes

	// Serialize the push message
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalMgmtChannel] Publishing intent",
		slog.String("endpoint", p.endpoint),
		slog.String("intent", string(intent.Intent)),
		slog.String("device_id", intent.DeviceID),
	)

	// Send HTTP POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if intent.RequestID != "" {
		req.Header.Set("X-Request-Id", intent.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("channel endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalMgmtChannel] Intent published successfully",
		slog.String("intent", string(intent.Intent)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPChannel) Close() error {
	return nil
}
