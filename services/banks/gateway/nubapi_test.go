package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/piresc/duespay/internal/pkg/http"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGW(t *testing.T, handler http.HandlerFunc) *NubapiGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewNubapiGW(httpclient.NewClient(httpclient.Config{
		BaseURL:     server.URL,
		BearerToken: "nub_test_token",
		Timeout:     2 * time.Second,
	}))
}

func TestFetchBanks_Array(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bank-json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Zenith Bank","code":"057"},{"name":" Access Bank ","code":"044"},{"name":"","code":"999"}]`))
	})

	list, err := gw.FetchBanks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Bank{
		{Name: "Access Bank", Code: "044"},
		{Name: "Zenith Bank", Code: "057"},
	}, list)
}

func TestFetchBanks_ObjectKeyedByCode(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"058":"GTBank","011":"First Bank"}`))
	})

	list, err := gw.FetchBanks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Bank{
		{Name: "First Bank", Code: "011"},
		{Name: "GTBank", Code: "058"},
	}, list)
}

func TestFetchBanks_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusBadGateway, body: `{}`},
		{name: "garbage", status: http.StatusOK, body: `<html>`},
		{name: "empty", status: http.StatusOK, body: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.FetchBanks(context.Background())

			assert.ErrorIs(t, err, models.ErrUpstream)
		})
	}
}

func TestResolveAccount(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/verify", r.URL.Path)
		assert.Equal(t, "Bearer nub_test_token", r.Header.Get("Authorization"))
		assert.Equal(t, "0123456789", r.URL.Query().Get("account_number"))
		assert.Equal(t, "044", r.URL.Query().Get("bank_code"))
		_, _ = w.Write([]byte(`{
			"account_name": "ADA LOVELACE OBI",
			"first_name": "ADA",
			"last_name": "LOVELACE",
			"other_name": "OBI",
			"account_number": "0123456789",
			"bank_code": "044",
			"Bank_name": "Access Bank"
		}`))
	})

	account, err := gw.ResolveAccount(context.Background(), "0123456789", "044")

	require.NoError(t, err)
	assert.Equal(t, "ADA LOVELACE OBI", account.AccountName)
	assert.Equal(t, "ADA", account.FirstName)
	assert.Equal(t, "OBI", account.OtherName)
	assert.Equal(t, "Access Bank", account.BankName)
	assert.Equal(t, "044", account.BankCode)
}

func TestResolveAccount_NoAccountName(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Account not found"}`))
	})

	_, err := gw.ResolveAccount(context.Background(), "0123456789", "044")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestResolveAccount_FillsMissingIdentifiers(t *testing.T) {
	gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"account_name":"TREASURER CSSA"}`))
	})

	account, err := gw.ResolveAccount(context.Background(), "0123456789", "058")

	require.NoError(t, err)
	assert.Equal(t, "0123456789", account.AccountNumber)
	assert.Equal(t, "058", account.BankCode)
}

func TestResolveAccount_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: models.ErrNotFound},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: models.ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: models.ErrUpstream},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: models.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGW(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := gw.ResolveAccount(context.Background(), "0123456789", "044")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
