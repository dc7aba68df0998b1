package models

import "time"

// Bank is one entry of the bank directory
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BankList is the cached bank directory snapshot
type BankList struct {
	Banks     []Bank    `json:"banks"`
	FetchedAt time.Time `json:"fetched_at"`
	Fallback  bool      `json:"fallback"`
}

// ResolvedAccount is the holder information returned for a bank account lookup
type ResolvedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	OtherName     string `json:"other_name,omitempty"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name,omitempty"`
}

// ResolveAccountRequest asks the directory who owns an account
type ResolveAccountRequest struct {
	AccountNumber string `query:"account_number" validate:"required,len=10,numeric"`
	BankCode      string `query:"bank_code" validate:"required,min=3,numeric"`
}
