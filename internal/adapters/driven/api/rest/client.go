package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// Default configuration values.
const (
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 10
)

// Config holds configuration for the REST client.
type Config struct {
	// BaseURL is the service root, e.g. https://docs.example.com/api.
	BaseURL string

	// Token is the bearer token. Empty means unauthenticated requests.
	Token string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond caps the client-side request rate (default: 10).
	RequestsPerSecond int
}

// Client talks to the document-processing service. It implements the
// DocumentAPI, ApprovalAPI, IntegrationAPI and WorkflowAPI ports.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// errorResponse is the service's error body. The server usually sends
// {"detail": ...}; older endpoints send {"error": ...}.
type errorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// NewClient creates a REST client for the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient.Transport = &oauth2.Transport{Source: src}
	}

	return &Client{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond),
	}
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// postJSON issues a POST with a JSON body and decodes the response.
// Pass a nil body for bodyless actions such as test_connection.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// patchJSON issues a PATCH with a JSON body and decodes the response.
func (c *Client) patchJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// delete issues a DELETE, expecting an empty response.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// The server dedupes repeated writes on this key, so a user
		// retry after a timeout cannot double-approve or double-send.
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send waits for the rate limiter and performs the request.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	logger.Debug("api: %s %s", req.Method, req.URL.Path)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// decodeError maps a non-2xx response to an error. Not-found responses
// map to the domain sentinel; everything else carries the server's
// detail message when present.
func (c *Client) decodeError(method, path string, resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	detail := ""
	if readErr == nil {
		var body errorResponse
		if err := json.Unmarshal(raw, &body); err == nil {
			detail = body.Detail
			if detail == "" {
				detail = body.Error
			}
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		if detail != "" {
			return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrNotFound)
		}
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)
	}

	if detail == "" {
		detail = "request failed"
	}
	return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, detail)
}
