// Copyright (c) 2026 StyleAtlas. All rights reserved.
// Author: engineering@styleatlas.dev

/*
Package contentstore provides a thin HTTP client for the hosted headless CMS
that backs StyleAtlas.

# Architecture

This package is part of the Infrastructure layer. The CMS is treated as an
opaque document store reachable through three endpoints: a GROQ query API for
reads, a mutation API for document creates and patches, and a binary asset
pipeline for image uploads. No query engine, caching, or retry logic lives
here — one call, one round trip.

Concrete repository implementations in the domain packages build their queries
on top of [Client.Query] and [Client.Mutate].
*/
package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/styleatlas/api/internal/platform/constants"
)

// ErrNoWriteToken is returned by mutating calls when the client was
// constructed without a write credential.
var ErrNoWriteToken = errors.New("contentstore: write token not configured")

// StoreError carries the status and body of a non-2xx store response.
// It is logged server-side and never shown to API clients.
type StoreError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("contentstore: %s failed: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Asset is the store's representation of an uploaded binary image.
type Asset struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// Mutation is a single entry in a mutation batch. Exactly one field is set.
type Mutation struct {
	Create map[string]interface{} `json:"create,omitempty"`
	Patch  *Patch                 `json:"patch,omitempty"`
}

// Patch updates fields of an existing document by id. The store applies it
// blindly (last write wins); there is no compare-and-set here.
type Patch struct {
	ID  string                 `json:"id"`
	Set map[string]interface{} `json:"set,omitempty"`
}

// Client is a connection handle to the hosted document store.
//
// # Concurrency
//
// Client is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	dataset string
	token   string
	httpc   *http.Client
	logger  *slog.Logger
}

// New constructs a store client.
//
// # Parameters
//   - baseURL: Store endpoint, e.g. "https://<project>.api.sanity.io".
//   - dataset: Dataset name, e.g. "production".
//   - token: Write credential; may be empty for read-only use.
//   - logger: Structured logger for store-level events.
func New(baseURL, dataset, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		dataset: dataset,
		token:   token,
		httpc:   &http.Client{Timeout: constants.StoreRequestTimeout},
		logger:  logger,
	}
}

// CanWrite reports whether the client holds a write credential.
func (c *Client) CanWrite() bool { return c.token != "" }

// # Read Path

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query executes a GROQ query and returns the raw `result` JSON.
//
// The result may be `null` for single-document queries with no match; callers
// decide how to interpret an empty result.
func (c *Client) Query(ctx context.Context, groq string) (json.RawMessage, error) {
	endpoint := c.baseURL + constants.StoreQueryPath + c.dataset + "?query=" + url.QueryEscape(groq)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("contentstore: build query request: %w", err)
	}

	body, err := c.do(request, "query")
	if err != nil {
		return nil, err
	}

	envelope := queryEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("contentstore: decode query response: %w", err)
	}
	return envelope.Result, nil
}

// Ping issues a minimal query to verify the store is reachable.
// Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Query(ctx, `*[_id == "_ping"][0]._id`)
	return err
}

// # Write Path

// Mutate posts a mutation batch (creates and patches) in a single request.
// The store applies the batch transactionally on its side.
func (c *Client) Mutate(ctx context.Context, mutations ...Mutation) error {
	if !c.CanWrite() {
		return ErrNoWriteToken
	}

	payload, err := json.Marshal(map[string]interface{}{"mutations": mutations})
	if err != nil {
		return fmt.Errorf("contentstore: encode mutations: %w", err)
	}

	endpoint := c.baseURL + constants.StoreMutatePath + c.dataset
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("contentstore: build mutate request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.token)

	_, err = c.do(request, "mutate")
	return err
}

// UploadImage streams raw image bytes into the store's asset pipeline and
// returns the created asset document.
//
// The asset persists independently of any referencing document: if a later
// document create fails, the asset is orphaned and the caller is expected to
// tolerate that (no compensating delete is attempted).
func (c *Client) UploadImage(ctx context.Context, mime string, data []byte) (*Asset, error) {
	if !c.CanWrite() {
		return nil, ErrNoWriteToken
	}

	endpoint := c.baseURL + constants.StoreImageAssetPath + c.dataset
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("contentstore: build upload request: %w", err)
	}
	request.Header.Set("Content-Type", mime)
	request.Header.Set("Authorization", "Bearer "+c.token)

	body, err := c.do(request, "upload_image")
	if err != nil {
		return nil, err
	}

	// The asset pipeline responds with either the asset document itself or a
	// {"document": {...}} wrapper depending on API version; accept both.
	wrapper := struct {
		Document *Asset `json:"document"`
	}{}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Document != nil && wrapper.Document.ID != "" {
		return wrapper.Document, nil
	}

	asset := &Asset{}
	if err := json.Unmarshal(body, asset); err != nil {
		return nil, fmt.Errorf("contentstore: decode asset response: %w", err)
	}
	if asset.ID == "" {
		return nil, fmt.Errorf("contentstore: asset response missing _id")
	}
	return asset, nil
}

// # Transport

// do executes the request, enforces the 2xx contract convention, and returns
// the response body.
func (c *Client) do(request *http.Request, op string) ([]byte, error) {
	response, err := c.httpc.Do(request)
	if err != nil {
		return nil, fmt.Errorf("contentstore: %s round trip: %w", op, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("contentstore: %s read body: %w", op, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		storeErr := &StoreError{Op: op, StatusCode: response.StatusCode, Body: truncate(string(body), 512)}
		c.logger.Error("store_request_failed",
			slog.String("op", op),
			slog.Int("status", response.StatusCode),
		)
		return nil, storeErr
	}

	return body, nil
}

// truncate caps s at n bytes for log and error hygiene.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Quote returns s as a double-quoted GROQ string literal, escaping embedded
// backslashes and quotes. All caller-supplied values interpolated into query
// strings must pass through here.
func Quote(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + replacer.Replace(s) + `"`
}
