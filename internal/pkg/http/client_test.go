package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.example.com/"})

	assert.Equal(t, "https://api.example.com", client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.timeout)
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/charges/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "TX-1", body["reference"])

		w.WriteHeader(nethttp.StatusCreated)
		_, _ = w.Write([]byte(`{"status":true}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, BearerToken: "sk_test"})
	resp, err := client.PostJSON(context.Background(), "/charges/initialize", map[string]string{"reference": "TX-1"})

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	var decoded map[string]bool
	require.NoError(t, resp.Decode(&decoded))
	assert.True(t, decoded["status"])
}

func TestClient_GetWithQuery(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "0123456789", r.URL.Query().Get("account_number"))
		assert.Equal(t, "058", r.URL.Query().Get("bank_code"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	resp, err := client.Get(context.Background(), "/api/verify", url.Values{
		"account_number": {"0123456789"},
		"bank_code":      {"058"},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK())
}

func TestClient_NonSuccessIsReturnedAsResponse(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"duplicate reference"}`))
	}))
	defer server.Close()

	resp, err := NewClient(Config{BaseURL: server.URL}).PostJSON(context.Background(), "/x", map[string]int{})

	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Contains(t, string(resp.Body), "duplicate")
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
	resp, err := client.Get(context.Background(), "/slow", nil)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_BreakerCountsServerErrors(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	cfg := circuitbreaker.DefaultConfig("test")
	cfg.FailureThreshold = 2
	breaker := circuitbreaker.New(cfg)
	client := NewClient(Config{BaseURL: server.URL, Breaker: breaker})

	for i := 0; i < 2; i++ {
		resp, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusBadGateway, resp.StatusCode)
	}

	_, err := client.Get(context.Background(), "/", nil)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
}
