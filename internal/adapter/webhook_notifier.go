package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-resty/resty/v2"
)

// WebhookConfig describes the outbound webhook endpoint for new-message
// notifications. An empty WebhookURL disables delivery entirely.
type WebhookConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

type webhookNotifier struct {
	client *resty.Client
	logger *logger.Logger

	enabled bool
}

// NewWebhookNotifier constructs a [MessageNotifier] that POSTs each
// notification as JSON to the configured webhook URL. When no URL is
// configured the notifier becomes a no-op, so callers never need to
// special-case a disabled webhook.
func NewWebhookNotifier(cfg WebhookConfig, log *logger.Logger) MessageNotifier {
	if cfg.WebhookURL == "" {
		log.Info().Msg("webhook url is empty, message notifications disabled")
		return &webhookNotifier{logger: log, enabled: false}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.WebhookURL, "/")).
		SetTimeout(cfg.Timeout)

	return &webhookNotifier{
		client:  cli,
		logger:  log,
		enabled: true,
	}
}

// NotifyNewMessage POSTs the notification payload to the webhook endpoint.
// Non-2xx responses are reported as errors so the caller can decide on
// retry or drop semantics.
func (n *webhookNotifier) NotifyNewMessage(ctx context.Context, notification models.MessageNotification) error {
	if !n.enabled {
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notification).
		Post("")
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("notify request: unexpected status %d", resp.StatusCode())
	}

	n.logger.Debug().
		Int64("message_id", notification.MessageID).
		Str("to_username", notification.ToUsername).
		Msg("message notification delivered")

	return nil
}
