package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/piresc/duespay/internal/pkg/logger"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// maxBodyBytes bounds how much of an upstream body is read
const maxBodyBytes = 1 << 20

var errServerStatus = errors.New("upstream server error")

// Config configures a Client
type Config struct {
	BaseURL     string
	BearerToken string
	Timeout     time.Duration
	Breaker     *circuitbreaker.CircuitBreaker
	HTTPClient  *nethttp.Client
}

// Client is a JSON HTTP client for a single upstream API. Every call runs
// under its own timeout and, when configured, behind a circuit breaker that
// counts transport errors and 5xx answers as failures.
type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	breaker    *circuitbreaker.CircuitBreaker
	httpClient *nethttp.Client
}

// Response is a fully read upstream answer
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the body into v
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := config.HTTPClient
	if hc == nil {
		hc = &nethttp.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.BearerToken,
		timeout:    timeout,
		breaker:    config.Breaker,
		httpClient: hc,
	}
}

// BaseURL returns the configured base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request with query parameters
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, nethttp.MethodGet, path, query, nil)
}

// PostJSON performs a POST request with a JSON body
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, nethttp.MethodPost, path, nil, body)
}

// Do sends the request. Non-2xx answers are returned as a Response, not an
// error; errors mean no usable answer was received.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	var resp *Response

	call := func(ctx context.Context) error {
		r, err := c.roundTrip(ctx, method, path, query, body)
		if err != nil {
			return err
		}
		resp = r
		if r.StatusCode >= 500 {
			return errServerStatus
		}
		return nil
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}

	if errors.Is(err, errServerStatus) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ErrorCtx(ctx, "HTTP request failed",
			logger.String("method", method),
			logger.String("url", c.baseURL+path),
			logger.Duration("latency", time.Since(start)),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("method", method),
		logger.String("url", c.baseURL+path),
		logger.Int("status_code", httpResp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	return &Response{StatusCode: httpResp.StatusCode, Body: raw}, nil
}
