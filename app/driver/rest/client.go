// Package rest implements the shared HTTP client for the remote identity,
// billing and payment services. Every call is normalized: server rejections
// become APIError values carrying the response body's message, transport
// failures become ErrUnavailable with a generic connectivity message, and
// nothing here panics or leaks raw transport errors to screen code.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"fluxdevs/app/domain"
)

// TokenSource supplies the current bearer credential. An empty string means
// the call goes out unauthenticated.
type TokenSource func() string

// Client is a rate-limited JSON client bound to one service base URL.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	token   TokenSource
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	Timeout     time.Duration
	RequestsPer float64 // sustained requests per second
	Burst       int
	Token       TokenSource
}

// NewClient creates a client for the given service base URL.
func NewClient(baseURL string, opts Options, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := opts.RequestsPer
	if rps <= 0 {
		rps = 10
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 5
	}
	tokenSource := opts.Token
	if tokenSource == nil {
		tokenSource = func() string { return "" }
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		token:   tokenSource,
		logger:  logger,
	}, nil
}

// errorBody is the failure envelope the services return on 4xx/5xx.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// listEnvelope is the pagination envelope of list endpoints.
type listEnvelope[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []T    `json:"results"`
}

// Do performs a JSON request. out may be nil when the response body is
// irrelevant. fallback is the endpoint-specific message used when a rejected
// response carries no usable message of its own.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, fallback string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.NewAPIError(0, fallback, fmt.Errorf("%w: %v", domain.ErrUnavailable, err))
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.token(); tok != "" {
		// The identity service issues JWT-scheme credentials, not Bearer.
		req.Header.Set("Authorization", "JWT "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		return domain.NewAPIError(0, "Network error. Please check your connection.",
			fmt.Errorf("%w: %v", domain.ErrUnavailable, err))
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejection(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewAPIError(resp.StatusCode, fallback,
			fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// rejection turns a non-2xx response into an APIError. The user-facing
// message prefers the body's message field, then detail, then the
// endpoint-specific fallback.
func (c *Client) rejection(resp *http.Response, fallback string) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Detail
	}
	if message == "" {
		message = fallback
	}

	return domain.NewAPIError(resp.StatusCode, message,
		fmt.Errorf("%w: status %d", domain.ErrRejected, resp.StatusCode))
}

// Get performs a GET and decodes the response into out.
func Get[T any](ctx context.Context, c *Client, path, fallback string) (*T, error) {
	var out T
	if err := c.Do(ctx, http.MethodGet, path, nil, &out, fallback); err != nil {
		return nil, err
	}
	return &out, nil
}

// Post performs a POST and decodes the response into out.
func Post[T any](ctx context.Context, c *Client, path string, body any, fallback string) (*T, error) {
	var out T
	if err := c.Do(ctx, http.MethodPost, path, body, &out, fallback); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch performs a PATCH and decodes the response into out.
func Patch[T any](ctx context.Context, c *Client, path string, body any, fallback string) (*T, error) {
	var out T
	if err := c.Do(ctx, http.MethodPatch, path, body, &out, fallback); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete performs a DELETE, discarding any response body.
func Delete(ctx context.Context, c *Client, path, fallback string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, fallback)
}

// GetPage fetches one page of a paginated collection. Pagination is
// page-number based; the caller replaces whatever page it held before.
func GetPage[T any](ctx context.Context, c *Client, path string, page int, fallback string) (*domain.Page[T], error) {
	if page < 1 {
		page = 1
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	var envelope listEnvelope[T]
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("%s%spage=%d", path, sep, page), nil, &envelope, fallback); err != nil {
		return nil, err
	}

	return &domain.Page[T]{
		Items: envelope.Results,
		Meta: domain.PageMeta{
			Count:    envelope.Count,
			Next:     envelope.Next,
			Previous: envelope.Previous,
		},
	}, nil
}
