package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitiatePaymentRequest is the payer's request to start paying for items
type InitiatePaymentRequest struct {
	PayerID        int64   `json:"payer_id" validate:"required,gt=0"`
	AssociationID  int64   `json:"association_id" validate:"required,gt=0"`
	SessionID      int64   `json:"session_id" validate:"omitempty,gt=0"`
	PaymentItemIDs []int64 `json:"payment_item_ids" validate:"required,min=1,dive,gt=0"`
}

// CustomerInfo identifies the paying customer towards the provider
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutResponse is returned after a hosted checkout has been initialised
type CheckoutResponse struct {
	ReferenceID  string          `json:"reference_id"`
	Amount       decimal.Decimal `json:"amount"`
	PlatformFee  decimal.Decimal `json:"platform_fee"`
	TotalPayable decimal.Decimal `json:"total_payable"`
	CheckoutURL  string          `json:"checkout_url"`
}

// VirtualAccount describes a dynamic bank account the payer transfers into
type VirtualAccount struct {
	AccountName     string    `json:"account_name"`
	AccountNumber   string    `json:"account_number"`
	BankName        string    `json:"bank_name"`
	BankCode        string    `json:"bank_code"`
	ExpiryDateInUTC time.Time `json:"expiry_date_in_utc"`
	ExpirySeconds   int64     `json:"expiry_seconds"`
}

// BankTransferResponse is returned after a dynamic virtual account has been issued
type BankTransferResponse struct {
	ReferenceID  string          `json:"reference_id"`
	Amount       decimal.Decimal `json:"amount"`
	PlatformFee  decimal.Decimal `json:"platform_fee"`
	TotalPayable decimal.Decimal `json:"total_payable"`
	Currency     string          `json:"currency"`
	BankAccount  VirtualAccount  `json:"bank_account"`
	Customer     CustomerInfo    `json:"customer"`
	Narration    string          `json:"narration"`
}
