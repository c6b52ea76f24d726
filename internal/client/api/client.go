// Package api is the single request pipeline between the client and the
// marketplace REST API. One configured Client carries the base endpoint,
// timeout and JSON content negotiation; every resource wrapper (users,
// items, orders, messages, wishlist, addresses) routes through it.
//
// Outbound, each request gets the current bearer token (read from the
// injected TokenSource, never passed by callers) and a diagnostic request
// id. Inbound, 2xx bodies are handed to the typed wrappers for envelope
// unwrapping, while failures are logged and forwarded untranslated: no
// retries, no backoff. Turning errors into user-facing results is the
// caller's job.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ekalnins/campustrade/internal/logging"
	"github.com/ekalnins/campustrade/internal/shared"
)

// TokenSource supplies the bearer credential attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to a TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the API root including the common path prefix,
	// e.g. "http://localhost:5000/api".
	BaseURL string
	// Timeout is the per-request deadline. Ignored when HTTPClient is set.
	Timeout time.Duration
	// Tokens supplies the session credential. If nil, all requests are
	// sent unauthenticated.
	Tokens TokenSource
	// HTTPClient is used for all requests. If nil, one is built from
	// Timeout. Tests inject httptest clients here.
	HTTPClient *http.Client
	// Logger is used for failure diagnostics. If nil, slog.Default() is
	// wrapped.
	Logger logging.Logger
}

// Client is the configured gateway. It is stateless beyond its fixed
// configuration: the session credential is read per request, never held.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// NewClient validates the configuration and builds a gateway.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewSlogLogger(slog.Default())
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     cfg.Tokens,
		log:        log.With("component", "api"),
	}, nil
}

// do runs one request through the pipeline and returns the raw response
// body on 2xx. Non-2xx responses come back as *APIError; transport
// failures are wrapped in shared.ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, requestBody any) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", requestID)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.log.Warn(ctx, "request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("api: %s %s: %w: %w", method, path, shared.ErrUnavailable, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		c.log.Warn(ctx, "failed to read response body",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("api: %s %s: %w: %w", method, path, shared.ErrUnavailable, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// All backend error responses share the {"error": "..."} shape.
	apiErr := &APIError{StatusCode: response.StatusCode, RequestID: requestID}
	var envelope struct {
		Error string `json:"error"`
	}
	if jsonErr := json.Unmarshal(responseBody, &envelope); jsonErr == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
	} else {
		apiErr.Message = http.StatusText(response.StatusCode)
	}

	c.log.Warn(ctx, "request rejected",
		"method", method, "path", path, "request_id", requestID,
		"status", response.StatusCode, "message", apiErr.Message)
	return nil, apiErr
}

// call runs a request and unmarshals the response body into out (skipped
// when out is nil).
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	responseBody, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("api: failed to parse %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, nil, body, out)
}

// delete issues a DELETE. The backend expects ownership proof in the
// request body on several delete endpoints.
func (c *Client) delete(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodDelete, path, nil, body, out)
}
