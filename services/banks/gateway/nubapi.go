package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	httpclient "github.com/piresc/duespay/internal/pkg/http"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/banks"
)

const (
	bankListPath = "/bank-json"
	verifyPath   = "/api/verify"
)

// NubapiGW implements banks.DirectoryGW against the Nubapi HTTP API
type NubapiGW struct {
	client *httpclient.Client
}

// NewNubapiGW creates a new Nubapi gateway
func NewNubapiGW(client *httpclient.Client) *NubapiGW {
	return &NubapiGW{client: client}
}

var _ banks.DirectoryGW = (*NubapiGW)(nil)

type verifyResponse struct {
	AccountName   string `json:"account_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	OtherName     string `json:"other_name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"Bank_name"`
}

// FetchBanks downloads the bank directory sorted by name
func (g *NubapiGW) FetchBanks(ctx context.Context) ([]models.Bank, error) {
	resp, err := g.client.Get(ctx, bankListPath, nil)
	if err != nil {
		return nil, models.UpstreamError("fetch bank list", err)
	}
	if !resp.OK() {
		return nil, models.UpstreamError("fetch bank list", fmt.Errorf("status %d", resp.StatusCode))
	}

	list, err := parseBankList(resp.Body)
	if err != nil {
		return nil, models.UpstreamError("fetch bank list", err)
	}
	if len(list) == 0 {
		return nil, models.UpstreamError("fetch bank list", fmt.Errorf("empty bank list"))
	}

	logger.DebugCtx(ctx, "Fetched bank list", logger.Int("count", len(list)))
	return list, nil
}

// ResolveAccount looks up the holder of an account. An answer without an
// account name is reported as models.ErrNotFound.
func (g *NubapiGW) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*models.ResolvedAccount, error) {
	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)

	resp, err := g.client.Get(ctx, verifyPath, query)
	if err != nil {
		return nil, models.UpstreamError("resolve account", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, models.NotFoundError("bank account")
	case !resp.OK():
		return nil, models.UpstreamError("resolve account", fmt.Errorf("status %d", resp.StatusCode))
	}

	var body verifyResponse
	if err := resp.Decode(&body); err != nil {
		return nil, models.UpstreamError("resolve account", err)
	}
	if strings.TrimSpace(body.AccountName) == "" {
		return nil, models.NotFoundError("bank account")
	}

	account := &models.ResolvedAccount{
		AccountNumber: body.AccountNumber,
		AccountName:   strings.TrimSpace(body.AccountName),
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		OtherName:     body.OtherName,
		BankCode:      body.BankCode,
		BankName:      body.BankName,
	}
	if account.AccountNumber == "" {
		account.AccountNumber = accountNumber
	}
	if account.BankCode == "" {
		account.BankCode = bankCode
	}
	return account, nil
}

// parseBankList accepts either an array of {name, code} objects or an
// object keyed by bank code
func parseBankList(raw []byte) ([]models.Bank, error) {
	var list []models.Bank
	if err := json.Unmarshal(raw, &list); err != nil {
		var byCode map[string]string
		if mapErr := json.Unmarshal(raw, &byCode); mapErr != nil {
			return nil, fmt.Errorf("failed to decode bank list: %w", err)
		}
		list = make([]models.Bank, 0, len(byCode))
		for code, name := range byCode {
			list = append(list, models.Bank{Name: name, Code: code})
		}
	}

	cleaned := list[:0]
	for _, bank := range list {
		bank.Name = strings.TrimSpace(bank.Name)
		bank.Code = strings.TrimSpace(bank.Code)
		if bank.Name == "" || bank.Code == "" {
			continue
		}
		cleaned = append(cleaned, bank)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		if cleaned[i].Name == cleaned[j].Name {
			return cleaned[i].Code < cleaned[j].Code
		}
		return cleaned[i].Name < cleaned[j].Name
	})
	return cleaned, nil
}
