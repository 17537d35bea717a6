// Package webhook delivers relayed translations to Discord channel webhooks.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrDeliveryFailed is returned when the webhook request fails or is rejected.
var ErrDeliveryFailed = errors.New("webhook delivery failed")

// DefaultUsername is the display name used for relayed messages.
const DefaultUsername = "MegaChinese Translation"

// payload is the JSON body of a webhook execution.
type payload struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Client posts messages to webhooks.
type Client struct {
	http     *resty.Client
	username string
	logger   *zap.Logger
}

// New creates a webhook client. An empty username falls back to DefaultUsername.
func New(username string, timeout time.Duration, logger *zap.Logger) *Client {
	if username == "" {
		username = DefaultUsername
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &Client{
		http:     httpClient,
		username: username,
		logger:   logger.Named("webhook"),
	}
}

// Send posts content to the webhook URL. Any non-2xx status is an error.
func (c *Client) Send(ctx context.Context, webhookURL, content string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload{Content: content, Username: c.username}).
		Post(webhookURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode(), resp.String())
	}

	c.logger.Debug("Delivered webhook message",
		zap.Int("status", resp.StatusCode()),
		zap.Int("length", len(content)))

	return nil
}
