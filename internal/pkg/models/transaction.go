package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionState is the reconciliation state of a transaction.
// The only legal transition is Pending -> Verified.
type TransactionState string

const (
	TransactionPending  TransactionState = "pending"
	TransactionVerified TransactionState = "verified"
)

// Transaction represents one attempted payment by one payer
type Transaction struct {
	ID             int64           `json:"id" db:"id"`
	ReferenceID    string          `json:"reference_id" db:"reference_id"`
	PayerID        int64           `json:"payer_id" db:"payer_id"`
	AssociationID  int64           `json:"association_id" db:"association_id"`
	SessionID      int64           `json:"session_id" db:"session_id"`
	PaymentItemIDs []int64         `json:"payment_item_ids" db:"-"`
	AmountPaid     decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	IsVerified     bool            `json:"is_verified" db:"is_verified"`
	SubmittedAt    time.Time       `json:"submitted_at" db:"submitted_at"`
}

// State returns the explicit reconciliation state
func (t *Transaction) State() TransactionState {
	if t.IsVerified {
		return TransactionVerified
	}
	return TransactionPending
}

// TransactionSummary is a transaction row joined with payer details for admin listings
type TransactionSummary struct {
	Transaction
	PayerFirstName    string   `json:"payer_first_name" db:"payer_first_name"`
	PayerLastName     string   `json:"payer_last_name" db:"payer_last_name"`
	PayerMatricNumber string   `json:"payer_matric" db:"payer_matric_number"`
	PayerEmail        string   `json:"payer_email" db:"payer_email"`
	PaymentItemTitles []string `json:"payment_item_titles" db:"-"`
}

// TransactionFilter narrows an admin transaction listing
type TransactionFilter struct {
	AssociationID int64
	State         TransactionState
	Search        string
	Page          int
	PageSize      int
}

// Offset returns the SQL offset for the requested page
func (f TransactionFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the page size bounded to sane values
func (f TransactionFilter) Limit() int {
	switch {
	case f.PageSize <= 0:
		return 20
	case f.PageSize > 100:
		return 100
	}
	return f.PageSize
}

// TransactionStats aggregates a filtered listing
type TransactionStats struct {
	Count             int             `json:"count" db:"count"`
	TotalCollections  decimal.Decimal `json:"total_collections" db:"total_collections"`
	CompletedPayments int             `json:"completed_payments" db:"completed_payments"`
	PendingPayments   int             `json:"pending_payments" db:"pending_payments"`
}

// TransactionList is a page of transactions with aggregate meta
type TransactionList struct {
	Results []TransactionSummary `json:"results"`
	Meta    TransactionStats     `json:"meta"`
	Page    int                  `json:"page"`
}

// PaymentStatus answers a payer polling for the outcome of a payment
type PaymentStatus struct {
	Exists      bool             `json:"exists"`
	ReferenceID string           `json:"reference_id"`
	IsVerified  bool             `json:"is_verified"`
	AmountPaid  *decimal.Decimal `json:"amount_paid,omitempty"`
	ReceiptID   *string          `json:"receipt_id"`
}
