package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "household-budget/internal/errors"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
)

// retryableStatus lists the responses that are tried again with backoff
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client talks to the household-budget backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    func(retry int) time.Duration
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds every single attempt
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets how many times a failed attempt is repeated
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithBackoff replaces the delay before retry n (0-based)
func WithBackoff(backoff func(retry int) time.Duration) Option {
	return func(c *Client) {
		c.backoff = backoff
	}
}

// WithLogger sets the logger used for retry diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// ExponentialBackoff waits 1s, 2s, 4s, ...
func ExponentialBackoff(retry int) time.Duration {
	return time.Second << retry
}

// New creates a client for the backend at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		backoff:    ExponentialBackoff,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{Timeout: c.timeout}
	return c
}

// BaseURL returns the backend address without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// getJSON performs a request and decodes the data field of the envelope into out
func (c *Client) getJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return newRequestError(fmt.Errorf("decode response: %w", err))
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newRequestError(fmt.Errorf("decode response data: %w", err))
	}
	return nil
}

// do runs one logical request with retries and returns the body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, newRequestError(fmt.Errorf("marshal request body: %w", err))
		}
		payload = b
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		status, respBody, err := c.attempt(ctx, method, target, payload)

		var callErr *Error
		switch {
		case err != nil:
			callErr = c.classify(ctx, err)
		case status >= 200 && status < 300:
			return respBody, nil
		default:
			callErr = httpError(status, respBody)
		}

		if attempt >= c.maxRetries || !retryable(callErr) {
			return nil, callErr
		}

		delay := c.backoff(attempt)
		c.logger.Warn("api request failed, retrying",
			"method", method,
			"url", target,
			"attempt", attempt+1,
			"delay", delay,
			"error", callErr.Error(),
		)

		select {
		case <-ctx.Done():
			return nil, newRequestError(ctx.Err())
		case <-time.After(delay):
		}
	}
}

func (c *Client) attempt(ctx context.Context, method, target string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("api request", "method", method, "url", target, "status", resp.StatusCode)
	return resp.StatusCode, body, nil
}

// classify turns a transport error into one of the user-facing kinds
func (c *Client) classify(ctx context.Context, err error) *Error {
	if ctx.Err() != nil {
		return newRequestError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(c.timeout.Seconds(), err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return newConnectionError(c.baseURL, err)
	}

	return newRequestError(err)
}

func retryable(err *Error) bool {
	switch err.Kind {
	case KindConnection, KindTimeout:
		return true
	case KindHTTP:
		return retryableStatus[err.StatusCode]
	default:
		return false
	}
}

// httpError builds an Error from an error envelope, falling back to the raw body
func httpError(status int, body []byte) *Error {
	e := &Error{
		Kind:       KindHTTP,
		StatusCode: status,
		Message:    fmt.Sprintf("HTTPエラー %d", status),
	}

	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Code != "" {
		e.Message = fmt.Sprintf("HTTPエラー %d: %s", status, resp.Error.Message)
		e.Code = resp.Error.Code
		e.Details = resp.Error.Details
		e.TraceID = resp.Error.TraceID
		return e
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		e.Details = []string{text}
	}
	return e
}

func jsonUnmarshal(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return newRequestError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
