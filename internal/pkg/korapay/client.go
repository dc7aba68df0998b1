// Package korapay is a client for the Korapay merchant API: hosted checkout,
// dynamic virtual accounts, bank payouts and webhook signatures.
package korapay

import (
	"time"

	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/duespay/internal/pkg/http"
	"github.com/piresc/duespay/internal/pkg/models"
)

// DefaultBaseURL is the production merchant API
const DefaultBaseURL = "https://api.korapay.com/merchant/api/v1"

const (
	pathChargeInitialize = "/charges/initialize"
	pathBankTransfer     = "/charges/bank-transfer"
	pathDisburse         = "/transactions/disburse"
)

// Client talks to the Korapay merchant API
type Client struct {
	http        *httpclient.Client
	platform    models.PlatformConfig
	development bool
	now         func() time.Time
}

// Option customises a Client
type Option func(*Client)

// WithClock overrides the clock used for virtual account expiry
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Korapay client. Calls go through breaker when it is non-nil.
func NewClient(cfg *models.Config, breaker *circuitbreaker.CircuitBreaker, opts ...Option) *Client {
	baseURL := cfg.Korapay.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		http: httpclient.NewClient(httpclient.Config{
			BaseURL:     baseURL,
			BearerToken: cfg.Korapay.SecretKey,
			Timeout:     cfg.Korapay.Timeout,
			Breaker:     breaker,
		}),
		platform:    cfg.Platform,
		development: cfg.App.IsDevelopment(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) currency(requested string) string {
	if requested != "" {
		return requested
	}
	if c.platform.Currency != "" {
		return c.platform.Currency
	}
	return "NGN"
}
