package models

import "github.com/shopspring/decimal"

// WebhookOutcome names how an inbound provider notification was handled
type WebhookOutcome string

const (
	WebhookRejected        WebhookOutcome = "rejected"
	WebhookMalformed       WebhookOutcome = "malformed"
	WebhookIgnored         WebhookOutcome = "ignored"
	WebhookUnmatched       WebhookOutcome = "unmatched"
	WebhookAlreadyVerified WebhookOutcome = "already_verified"
	WebhookVerified        WebhookOutcome = "verified"
	WebhookLostRace        WebhookOutcome = "lost_race"
	// WebhookFailed means a storage error left the transaction pending
	WebhookFailed WebhookOutcome = "failed"
)

// Accepted reports whether the provider should be told the delivery succeeded.
// Everything except a bad signature is acknowledged so the provider stops retrying.
func (o WebhookOutcome) Accepted() bool {
	return o != WebhookRejected
}

// WebhookResult describes what the reconciliation engine did with a delivery
type WebhookResult struct {
	Outcome     WebhookOutcome   `json:"status"`
	Event       string           `json:"event,omitempty"`
	ReferenceID string           `json:"reference_id,omitempty"`
	AmountPaid  *decimal.Decimal `json:"amount_paid,omitempty"`
	Payout      *PayoutOutcome   `json:"payout,omitempty"`
}
