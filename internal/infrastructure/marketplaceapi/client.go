// Package marketplaceapi is the typed client of the marketplace REST API.
// Every call takes an explicit identity.Session, and failures come back as
// shared.DomainError values so callers handle remote and local rules alike.
package marketplaceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultConcurrency = 8
	maxResponseBytes   = 4 << 20
	userAgent          = "marketctl/1.0"
)

// Client calls the marketplace API. It is safe for concurrent use.
// Each call is a single attempt.
type Client struct {
	httpClient  *http.Client
	baseURL     *url.URL
	logger      *zap.Logger
	concurrency int
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithConcurrency bounds fan-out lookups such as TieUpStatuses
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewClient creates a client for the API rooted at cfg.BaseURL, for example
// http://localhost:8080/api/v1
func NewClient(cfg config.ClientConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:     u,
		logger:      logger,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope is the API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous calls carry no bearer token
	anonymous bool
}

// do executes c and decodes the envelope's data into out when out is non-nil
func (c *Client) do(ctx context.Context, session identity.Session, req call, out any) error {
	if !req.anonymous && session.Token == "" {
		return shared.ErrUnauthenticated.WithMessage("No session token; log in first")
	}

	u := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.anonymous {
		httpReq.Header.Set("Authorization", "Bearer "+session.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Warn("marketplace API unreachable",
			zap.String("method", req.method), zap.String("path", req.path), zap.Error(err))
		return shared.ErrUpstreamUnavailable.Wrap(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return shared.ErrUpstreamUnavailable.Wrap(fmt.Errorf("reading response: %w", err))
	}

	c.logger.Debug("marketplace API call",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code, message := "", ""
		if decodeErr == nil && env.Error != nil {
			code, message = env.Error.Code, env.Error.Message
		}
		return errorForStatus(resp.StatusCode, code, message)
	}
	if decodeErr != nil {
		return shared.ErrUpstreamUnavailable.Wrap(fmt.Errorf("decoding response: %w", decodeErr))
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return shared.ErrUpstreamUnavailable.Wrap(fmt.Errorf("decoding response data: %w", err))
	}
	return nil
}

var sentinelByCode = map[string]*shared.DomainError{
	shared.CodeUnauthenticated:     shared.ErrUnauthenticated,
	shared.CodeForbidden:           shared.ErrForbidden,
	shared.CodeNotFound:            shared.ErrNotFound,
	shared.CodeDuplicateRequest:    shared.ErrDuplicateRequest,
	shared.CodeInvalidQuantity:     shared.ErrInvalidQuantity,
	shared.CodeInsufficientStock:   shared.ErrInsufficientStock,
	shared.CodeIllegalTransition:   shared.ErrIllegalTransition,
	shared.CodeUpstreamUnavailable: shared.ErrUpstreamUnavailable,
	shared.CodeInvalidInput:        shared.ErrInvalidInput,
	shared.CodeConcurrencyConflict: shared.ErrConcurrencyConflict,
}

// errorForStatus maps a failed response onto the error taxonomy. The status
// decides the class; the server's code refines 409 and 422.
func errorForStatus(status int, code, message string) error {
	var base *shared.DomainError
	switch {
	case status == http.StatusUnauthorized:
		base = shared.ErrUnauthenticated
	case status == http.StatusForbidden:
		base = shared.ErrForbidden
	case status == http.StatusNotFound:
		base = shared.ErrNotFound
	case status == http.StatusConflict:
		base = shared.ErrDuplicateRequest
		if code == shared.CodeConcurrencyConflict {
			base = shared.ErrConcurrencyConflict
		}
	case status == http.StatusUnprocessableEntity:
		base = shared.ErrInvalidInput
		if s, ok := sentinelByCode[code]; ok {
			base = s
		}
	case status == http.StatusBadRequest:
		base = shared.ErrInvalidInput
	default:
		base = shared.ErrUpstreamUnavailable
	}

	if message == "" {
		return base
	}
	return base.WithMessage(message)
}

// IsNotFound reports whether err is a not-found failure
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
