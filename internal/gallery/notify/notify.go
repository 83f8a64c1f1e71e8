// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

/*
Package notify implements the best-effort notification fan-out that follows a
successful gallery submission.

Two integrations exist, each enabled only when its configuration is present:

  - A chat webhook that receives a short human-readable message.
  - A CRM (Airtable-compatible) that receives a structured record.

Both are strictly fire-and-forget with respect to the submission request: any
failure is logged and swallowed, there are no retries, and no ordering is
guaranteed between them.
*/
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/styleatlas/api/internal/platform/constants"
)

// Event describes a freshly created gallery submission.
type Event struct {
	Name  string
	Email string
	Style string
	URL   string
}

// Notifier is a single outbound integration.
type Notifier interface {
	// Name identifies the integration in logs.
	Name() string
	// Notify delivers one event. Errors are reported to the caller for
	// logging only; they must never influence request handling.
	Notify(ctx context.Context, event Event) error
}

// # Fan-out

// Fanout delivers an event to every configured notifier concurrently.
type Fanout struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewFanout builds a fan-out over the given notifiers. Nil entries are
// skipped so callers can pass the result of conditional constructors directly.
func NewFanout(logger *slog.Logger, notifiers ...Notifier) *Fanout {
	active := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return &Fanout{notifiers: active, logger: logger}
}

// SubmissionCreated notifies all integrations about a new submission.
//
// The wait is bounded by its own timeout, detached from the request's
// cancellation, and always returns without error: delivery failures are
// logged at warn level and swallowed.
func (f *Fanout) SubmissionCreated(ctx context.Context, event Event) {
	if len(f.notifiers) == 0 {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.NotifyTimeout)
	defer cancel()

	// A plain group, not WithContext: one integration failing must not
	// cancel the other.
	group := new(errgroup.Group)
	for _, notifier := range f.notifiers {
		notifier := notifier
		group.Go(func() error {
			if err := notifier.Notify(notifyCtx, event); err != nil {
				f.logger.Warn("notification_failed",
					slog.String("integration", notifier.Name()),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()
}

// # Chat Webhook

// ChatWebhook posts a short message to a chat webhook URL.
type ChatWebhook struct {
	url   string
	httpc *http.Client
}

// NewChatWebhook returns nil when no webhook URL is configured. The return
// type is the interface so a disabled integration is a true nil for the
// fan-out's filter.
func NewChatWebhook(url string) Notifier {
	if url == "" {
		return nil
	}
	return &ChatWebhook{
		url:   url,
		httpc: &http.Client{Timeout: constants.NotifyTimeout},
	}
}

func (w *ChatWebhook) Name() string { return "chat_webhook" }

func (w *ChatWebhook) Notify(ctx context.Context, event Event) error {
	message := map[string]string{
		"content": fmt.Sprintf("New gallery submission: **%s** (%s)\n%s", event.Name, event.Style, event.URL),
	}
	return postJSON(ctx, w.httpc, w.url, nil, message)
}

// # CRM

// CRM appends a submission record to an Airtable-compatible table.
type CRM struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
	now      func() time.Time
}

// NewCRM returns nil unless both the API key and base id are configured.
func NewCRM(baseURL, apiKey, baseID, tableName string) Notifier {
	if apiKey == "" || baseID == "" {
		return nil
	}
	return &CRM{
		endpoint: fmt.Sprintf("%s/%s/%s", baseURL, baseID, tableName),
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: constants.NotifyTimeout},
		now:      time.Now,
	}
}

func (c *CRM) Name() string { return "crm" }

func (c *CRM) Notify(ctx context.Context, event Event) error {
	record := map[string]interface{}{
		"fields": map[string]interface{}{
			"Name":      event.Name,
			"Email":     event.Email,
			"Style":     event.Style,
			"URL":       event.URL,
			"Status":    "submitted",
			"Timestamp": c.now().UTC().Format(time.RFC3339),
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	return postJSON(ctx, c.httpc, c.endpoint, headers, record)
}

// postJSON sends one JSON POST and enforces a 2xx response.
func postJSON(ctx context.Context, httpc *http.Client, url string, headers map[string]string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: encode payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := httpc.Do(request)
	if err != nil {
		return fmt.Errorf("notify: round trip: %w", err)
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("notify: unexpected status %d", response.StatusCode)
	}
	return nil
}
