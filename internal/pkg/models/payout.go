package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PayoutStatus records how a payout attempt ended
type PayoutStatus string

const (
	PayoutSucceeded PayoutStatus = "succeeded"
	PayoutDuplicate PayoutStatus = "duplicate"
	PayoutFailed    PayoutStatus = "failed"
	PayoutSkipped   PayoutStatus = "skipped"
	PayoutDeferred  PayoutStatus = "deferred"
	// PayoutScheduled is reported to a webhook delivery whose payout runs in the background
	PayoutScheduled PayoutStatus = "scheduled"
)

// Settled reports whether the provider holds the disbursement
func (s PayoutStatus) Settled() bool {
	return s == PayoutSucceeded || s == PayoutDuplicate
}

// Payout is one recorded payout attempt. A failed row marks a payout pending retry.
type Payout struct {
	ID                   int64           `json:"id" db:"id"`
	Reference            string          `json:"reference" db:"reference"`
	TransactionReference string          `json:"transaction_reference" db:"transaction_reference"`
	Amount               decimal.Decimal `json:"amount" db:"amount"`
	Status               PayoutStatus    `json:"status" db:"status"`
	ProviderResponse     json.RawMessage `json:"provider_response,omitempty" db:"provider_response"`
	Error                string          `json:"error,omitempty" db:"error"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
}

// PayoutOutcome is the result of triggering a payout for a verified transaction
type PayoutOutcome struct {
	Status           PayoutStatus    `json:"status"`
	Reference        string          `json:"reference,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// DeferredPayout is queued for the bulk payout flow of hall associations
type DeferredPayout struct {
	TransactionReference string          `json:"transaction_reference"`
	AssociationID        int64           `json:"association_id"`
	Amount               decimal.Decimal `json:"amount"`
	Reference            string          `json:"reference"`
	Narration            string          `json:"narration"`
	QueuedAt             time.Time       `json:"queued_at"`
}

// ManualPayoutRequest re-runs a payout for one transaction outside the webhook.
// An empty Reference selects the most recent verified transaction.
type ManualPayoutRequest struct {
	Reference       string
	AssociationID   int64
	Amount          *decimal.Decimal
	PayoutReference string
	Unique          bool
	DryRun          bool
}

// ManualPayoutResult describes what was (or, in a dry run, would be) sent
type ManualPayoutResult struct {
	TransactionReference string          `json:"transaction_reference"`
	PayoutReference      string          `json:"payout_reference"`
	Amount               decimal.Decimal `json:"amount"`
	BankCode             string          `json:"bank_code"`
	AccountNumber        string          `json:"account_number"`
	Customer             CustomerInfo    `json:"customer"`
	DryRun               bool            `json:"dry_run"`
	Payload              interface{}     `json:"payload,omitempty"`
	Outcome              *PayoutOutcome  `json:"outcome,omitempty"`
}
