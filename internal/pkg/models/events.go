package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent is published on NSQ when a transaction is created or verified
type TransactionEvent struct {
	ReferenceID   string          `json:"reference_id"`
	TransactionID int64           `json:"transaction_id"`
	AssociationID int64           `json:"association_id"`
	PayerID       int64           `json:"payer_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	IsVerified    bool            `json:"is_verified"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// NewTransactionEvent builds an event snapshot of tx
func NewTransactionEvent(tx *Transaction, at time.Time) TransactionEvent {
	return TransactionEvent{
		ReferenceID:   tx.ReferenceID,
		TransactionID: tx.ID,
		AssociationID: tx.AssociationID,
		PayerID:       tx.PayerID,
		AmountPaid:    tx.AmountPaid,
		IsVerified:    tx.IsVerified,
		OccurredAt:    at,
	}
}

// Receipt is issued once per verified transaction
type Receipt struct {
	TransactionID int64     `json:"transaction_id" db:"transaction_id"`
	ReceiptID     string    `json:"receipt_id" db:"receipt_id"`
	IssuedAt      time.Time `json:"issued_at" db:"issued_at"`
}
