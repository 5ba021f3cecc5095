// Package notify delivers out-of-band submission notifications. Every
// channel here is best-effort: no retries, no queue, failures are logged
// and swallowed.
package notify

import (
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Notifier is one outbound notification channel.
type Notifier interface {
	ComplaintSubmitted(c *models.Complaint)
}

// Multi fans a notification out to several channels in order.
type Multi []Notifier

func (m Multi) ComplaintSubmitted(c *models.Complaint) {
	for _, n := range m {
		n.ComplaintSubmitted(c)
	}
}

// WebhookNotifier posts a JSON document describing the complaint to a
// configured endpoint with a short timeout.
type WebhookNotifier struct {
	URL    string
	client *resty.Client
	Log    *zap.SugaredLogger
}

func NewWebhookNotifier(url string, log *zap.SugaredLogger) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		client: resty.New().SetTimeout(config.WebhookTimeout),
		Log:    log,
	}
}

// ComplaintSubmitted fires the webhook. Timeouts, connection failures and
// non-2xx responses are all logged, never surfaced.
func (n *WebhookNotifier) ComplaintSubmitted(c *models.Complaint) {
	if n.URL == "" {
		return
	}

	payload := map[string]any{
		"title":        c.Title,
		"description":  c.Description,
		"type":         c.Type,
		"priority":     c.Priority,
		"file_url":     c.FileURL,
		"status":       c.Status,
		"student_name": c.StudentName,
		"email":        c.Email,
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.URL)
	if err != nil {
		n.Log.Warnw("webhook delivery failed", "url", n.URL, "error", err)
		return
	}
	if resp.IsError() {
		n.Log.Warnw("webhook endpoint rejected payload", "url", n.URL, "status", resp.StatusCode())
	}
}
