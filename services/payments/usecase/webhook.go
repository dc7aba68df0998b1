package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/piresc/duespay/internal/pkg/constants"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Candidate reference fields, in lookup priority order. Different payment
// rails fill different fields.
var (
	dataReferenceKeys     = []string{"transaction_reference", "reference", "order_reference"}
	metadataReferenceKeys = []string{"txn_ref", "reference", "transaction_reference", "order_ref"}
)

// HandleWebhook reconciles one provider delivery. It never returns an error:
// every outcome except a bad signature is acknowledged to the provider.
func (uc *PaymentUC) HandleWebhook(ctx context.Context, raw []byte, signature string) models.WebhookResult {
	if !uc.verifier.IsValidSignature(raw, signature) {
		logger.WarnCtx(ctx, "Rejected webhook with invalid signature",
			logger.Bool("signature_present", signature != ""))
		return models.WebhookResult{Outcome: models.WebhookRejected}
	}

	payload, ok := decodeObject(raw)
	if !ok {
		logger.WarnCtx(ctx, "Ignoring malformed webhook body", logger.Int("size", len(raw)))
		return models.WebhookResult{Outcome: models.WebhookMalformed}
	}

	event, _ := payload["event"].(string)
	if event != constants.EventChargeSuccess {
		logger.InfoCtx(ctx, "Ignoring webhook event", logger.String("event", event))
		return models.WebhookResult{Outcome: models.WebhookIgnored, Event: event}
	}

	data := objectAt(payload, "data")
	metadata := objectAt(data, "metadata")
	candidates := candidateReferences(data, metadata)

	tx := uc.resolveTransaction(ctx, candidates)
	if tx == nil {
		logger.WarnCtx(ctx, "No transaction matches webhook references",
			logger.Strings("candidates", candidates))
		return models.WebhookResult{Outcome: models.WebhookUnmatched, Event: event}
	}

	result := models.WebhookResult{Event: event, ReferenceID: tx.ReferenceID}
	if tx.IsVerified {
		logger.InfoCtx(ctx, "Transaction already verified",
			logger.String("reference", tx.ReferenceID))
		result.Outcome = models.WebhookAlreadyVerified
		return result
	}

	amount := tx.AmountPaid
	if derived, ok := deriveBaseAmount(data, metadata); ok && !derived.Equal(amount) {
		logger.WarnCtx(ctx, "Provider amount differs from stored amount",
			logger.String("reference", tx.ReferenceID),
			logger.String("stored_amount", money.Format2DP(amount)),
			logger.String("provider_amount", money.Format2DP(derived)))
		amount = derived
	}

	updated, err := uc.repo.MarkVerified(ctx, tx.ID, amount)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to mark transaction verified",
			logger.String("reference", tx.ReferenceID),
			logger.Err(err))
		result.Outcome = models.WebhookFailed
		return result
	}
	if !updated {
		logger.InfoCtx(ctx, "Transaction verified by a concurrent delivery",
			logger.String("reference", tx.ReferenceID))
		result.Outcome = models.WebhookLostRace
		return result
	}

	tx.IsVerified = true
	tx.AmountPaid = amount
	result.Outcome = models.WebhookVerified
	result.AmountPaid = &amount

	logger.InfoCtx(ctx, "Transaction verified",
		logger.String("reference", tx.ReferenceID),
		logger.String("amount", money.Format2DP(amount)))

	if err := uc.events.PublishTransactionVerified(ctx, models.NewTransactionEvent(tx, uc.now())); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction verified event",
			logger.String("reference", tx.ReferenceID),
			logger.Err(err))
	}

	outcome := uc.schedulePayout(ctx, tx)
	result.Payout = &outcome
	return result
}

// resolveTransaction returns the first candidate that names a stored transaction
func (uc *PaymentUC) resolveTransaction(ctx context.Context, candidates []string) *models.Transaction {
	for _, ref := range candidates {
		tx, err := uc.repo.GetTransactionByReference(ctx, ref)
		if err == nil {
			return tx
		}
		if !errors.Is(err, models.ErrNotFound) {
			logger.ErrorCtx(ctx, "Failed to look up webhook reference",
				logger.String("reference", ref),
				logger.Err(err))
		}
	}
	return nil
}

// candidateReferences lists non-empty reference values in priority order
// without duplicates
func candidateReferences(data, metadata map[string]interface{}) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(obj map[string]interface{}, keys []string) {
		for _, k := range keys {
			ref := scalarString(obj[k])
			if ref == "" {
				continue
			}
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			out = append(out, ref)
		}
	}
	add(data, dataReferenceKeys)
	add(metadata, metadataReferenceKeys)
	return out
}

// deriveBaseAmount returns the association's share of the payment: an
// explicit metadata base_amount, else amount minus platform_fee.
func deriveBaseAmount(data, metadata map[string]interface{}) (decimal.Decimal, bool) {
	if base, ok := money.Parse(metadata["base_amount"]); ok {
		return base.Round(2), true
	}

	amount, ok := money.Parse(data["amount"])
	if !ok {
		amount, ok = money.Parse(metadata["amount"])
	}
	if !ok {
		return decimal.Zero, false
	}

	fee, ok := money.Parse(metadata["platform_fee"])
	if !ok {
		fee, ok = money.Parse(data["platform_fee"])
	}
	if !ok {
		return decimal.Zero, false
	}

	return amount.Sub(fee).Round(2), true
}

func decodeObject(raw []byte) (map[string]interface{}, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

func objectAt(obj map[string]interface{}, key string) map[string]interface{} {
	if obj == nil {
		return nil
	}
	nested, _ := obj[key].(map[string]interface{})
	return nested
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return ""
}
