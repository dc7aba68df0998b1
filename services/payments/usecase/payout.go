package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/internal/pkg/retry"
	"github.com/piresc/duespay/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	payoutReferenceSuffix = "-OUT"
	payoutReferenceLen    = 40
	payoutNarrationLen    = 80
)

// PayoutReference is the deterministic payout reference of a transaction.
// Redeliveries produce the same value, which the provider deduplicates.
func PayoutReference(transactionRef string) string {
	return utils.Truncate(transactionRef+payoutReferenceSuffix, payoutReferenceLen)
}

// PayoutNarration is the narration sent with a transaction's payout
func PayoutNarration(transactionRef string) string {
	return utils.Truncate("Dues payout "+transactionRef, payoutNarrationLen)
}

// payoutTarget is everything needed to disburse one transaction
type payoutTarget struct {
	tx          *models.Transaction
	association *models.Association
	account     *models.ReceiverBankAccount
	amount      decimal.Decimal
	reference   string
}

func (t payoutTarget) request() korapay.PayoutRequest {
	return korapay.PayoutRequest{
		Amount:        t.amount,
		BankCode:      t.account.BankCode,
		AccountNumber: t.account.AccountNumber,
		Reference:     t.reference,
		Narration:     PayoutNarration(t.tx.ReferenceID),
		Customer: models.CustomerInfo{
			Name:  t.association.DisplayName(),
			Email: t.association.AdminEmail,
		},
	}
}

// schedulePayout starts the payout of a freshly verified transaction in the
// background so the delivery is acknowledged without waiting on the provider.
// The payout outlives the delivery's context; WaitForPayouts drains it.
func (uc *PaymentUC) schedulePayout(ctx context.Context, tx *models.Transaction) models.PayoutOutcome {
	payoutTx := *tx
	payoutCtx := context.WithoutCancel(ctx)

	uc.payouts.Add(1)
	go func() {
		defer uc.payouts.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorCtx(payoutCtx, "Payout panicked",
					logger.String("reference", payoutTx.ReferenceID),
					logger.Any("panic", r))
			}
		}()
		uc.triggerPayout(payoutCtx, &payoutTx)
	}()

	return models.PayoutOutcome{
		Status:    models.PayoutScheduled,
		Reference: PayoutReference(tx.ReferenceID),
		Amount:    uc.fees.Payout(tx.AmountPaid),
	}
}

// WaitForPayouts blocks until every background payout has finished or ctx is done
func (uc *PaymentUC) WaitForPayouts(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.payouts.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("payouts still running: %w", ctx.Err())
	}
}

// triggerPayout disburses a freshly verified transaction. Failures are
// captured in the outcome and the payouts table, never returned.
func (uc *PaymentUC) triggerPayout(ctx context.Context, tx *models.Transaction) models.PayoutOutcome {
	reference := PayoutReference(tx.ReferenceID)
	amount := uc.fees.Payout(tx.AmountPaid)

	account, err := uc.repo.GetReceiverBankAccount(ctx, tx.AssociationID)
	if errors.Is(err, models.ErrNotFound) {
		logger.InfoCtx(ctx, "No receiver bank account, skipping payout",
			logger.String("reference", tx.ReferenceID),
			logger.Int64("association_id", tx.AssociationID))
		return uc.recordOutcome(ctx, tx, models.PayoutOutcome{
			Status:    models.PayoutSkipped,
			Reference: reference,
			Amount:    amount,
			Error:     "no receiver bank account",
		})
	}
	if err != nil {
		return uc.failPayout(ctx, tx, reference, amount, fmt.Errorf("failed to load receiver bank account: %w", err))
	}

	association, err := uc.repo.GetAssociation(ctx, tx.AssociationID)
	if err != nil {
		return uc.failPayout(ctx, tx, reference, amount, fmt.Errorf("failed to load association: %w", err))
	}

	target := payoutTarget{tx: tx, association: association, account: account, amount: amount, reference: reference}

	if uc.cfg.Payout.DeferHalls && association.Type == models.AssociationTypeHall {
		return uc.deferPayout(ctx, target)
	}

	return uc.executePayout(ctx, target)
}

// deferPayout hands a hall payout to the bulk payout queue
func (uc *PaymentUC) deferPayout(ctx context.Context, target payoutTarget) models.PayoutOutcome {
	req := target.request()
	err := uc.bulkQueue.EnqueueDeferredPayout(ctx, models.DeferredPayout{
		TransactionReference: target.tx.ReferenceID,
		AssociationID:        target.association.ID,
		Amount:               target.amount,
		Reference:            target.reference,
		Narration:            req.Narration,
		QueuedAt:             uc.now().UTC(),
	})
	if err != nil {
		return uc.failPayout(ctx, target.tx, target.reference, target.amount, fmt.Errorf("failed to queue deferred payout: %w", err))
	}

	logger.InfoCtx(ctx, "Payout deferred to bulk settlement",
		logger.String("reference", target.tx.ReferenceID),
		logger.String("association_type", string(target.association.Type)))

	return uc.recordOutcome(ctx, target.tx, models.PayoutOutcome{
		Status:    models.PayoutDeferred,
		Reference: target.reference,
		Amount:    target.amount,
	})
}

// executePayout calls the provider through the retrier. Each attempt is
// recorded; a final failed row marks the payout as pending retry.
func (uc *PaymentUC) executePayout(ctx context.Context, target payoutTarget) models.PayoutOutcome {
	req := target.request()
	var outcome models.PayoutOutcome

	err := retry.New(uc.payoutCfg).Execute(ctx, func(ctx context.Context, attempt int) error {
		res, err := uc.provider.PayoutToBank(ctx, req)
		if err != nil {
			failed := models.PayoutOutcome{
				Status:    models.PayoutFailed,
				Reference: target.reference,
				Amount:    target.amount,
				Error:     err.Error(),
			}
			var httpErr *korapay.HTTPError
			if errors.As(err, &httpErr) {
				failed.ProviderResponse = httpErr.Body
			}
			outcome = uc.recordOutcome(ctx, target.tx, failed)
			return err
		}

		status := models.PayoutSucceeded
		if res.Duplicate {
			status = models.PayoutDuplicate
		}
		outcome = uc.recordOutcome(ctx, target.tx, models.PayoutOutcome{
			Status:           status,
			Reference:        target.reference,
			Amount:           target.amount,
			ProviderResponse: res.Body,
		})
		return nil
	})

	if err != nil {
		logger.ErrorCtx(ctx, "Payout failed, left pending retry",
			logger.String("reference", target.tx.ReferenceID),
			logger.String("payout_reference", target.reference),
			logger.String("amount", money.Format2DP(target.amount)),
			logger.String("provider_response", string(outcome.ProviderResponse)),
			logger.Err(err))
		outcome.Status = models.PayoutFailed
		outcome.Error = err.Error()
		return outcome
	}

	logger.InfoCtx(ctx, "Payout settled",
		logger.String("reference", target.tx.ReferenceID),
		logger.String("payout_reference", target.reference),
		logger.String("status", string(outcome.Status)),
		logger.String("amount", money.Format2DP(target.amount)))
	return outcome
}

func (uc *PaymentUC) failPayout(ctx context.Context, tx *models.Transaction, reference string, amount decimal.Decimal, err error) models.PayoutOutcome {
	logger.ErrorCtx(ctx, "Payout could not be attempted",
		logger.String("reference", tx.ReferenceID),
		logger.Err(err))
	return uc.recordOutcome(ctx, tx, models.PayoutOutcome{
		Status:    models.PayoutFailed,
		Reference: reference,
		Amount:    amount,
		Error:     err.Error(),
	})
}

// recordOutcome stores the outcome as a payouts row. A storage failure is
// logged only.
func (uc *PaymentUC) recordOutcome(ctx context.Context, tx *models.Transaction, outcome models.PayoutOutcome) models.PayoutOutcome {
	outcome.ProviderResponse = asJSON(outcome.ProviderResponse)
	row := &models.Payout{
		Reference:            outcome.Reference,
		TransactionReference: tx.ReferenceID,
		Amount:               outcome.Amount,
		Status:               outcome.Status,
		ProviderResponse:     outcome.ProviderResponse,
		Error:                outcome.Error,
		CreatedAt:            uc.now().UTC(),
	}
	if err := uc.repo.RecordPayout(ctx, row); err != nil {
		logger.ErrorCtx(ctx, "Failed to record payout attempt",
			logger.String("reference", tx.ReferenceID),
			logger.String("status", string(outcome.Status)),
			logger.Err(err))
	}
	return outcome
}

// isRetryablePayoutError retries transport failures and provider 5xx/429.
// Local validation, provider rejections and an open breaker are final.
func isRetryablePayoutError(err error) bool {
	if korapay.IsValidationError(err) ||
		errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) ||
		errors.Is(err, circuitbreaker.ErrTooManyRequests) ||
		errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *korapay.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}
	return true
}

// ManualPayout re-runs the payout of one verified transaction with the same
// deterministic reference unless overridden. Validation problems are returned
// as errors here, unlike the webhook path.
func (uc *PaymentUC) ManualPayout(ctx context.Context, req models.ManualPayoutRequest) (*models.ManualPayoutResult, error) {
	tx, err := uc.manualPayoutTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	if !tx.IsVerified {
		return nil, models.ValidationError("transaction %s is not verified", tx.ReferenceID)
	}

	account, err := uc.repo.GetReceiverBankAccount(ctx, tx.AssociationID)
	if err != nil {
		return nil, err
	}
	association, err := uc.repo.GetAssociation(ctx, tx.AssociationID)
	if err != nil {
		return nil, err
	}

	amount := uc.fees.Payout(tx.AmountPaid)
	if req.Amount != nil {
		amount = req.Amount.Round(2)
	}

	reference := PayoutReference(tx.ReferenceID)
	if req.PayoutReference != "" {
		reference = req.PayoutReference
	}
	if req.Unique {
		reference = fmt.Sprintf("%s-%d", reference, uc.now().Unix())
	}
	reference = utils.Truncate(reference, payoutReferenceLen)

	target := payoutTarget{tx: tx, association: association, account: account, amount: amount, reference: reference}
	payoutReq := target.request()

	result := &models.ManualPayoutResult{
		TransactionReference: tx.ReferenceID,
		PayoutReference:      reference,
		Amount:               amount,
		BankCode:             account.BankCode,
		AccountNumber:        utils.MaskAccountNumber(account.AccountNumber),
		Customer:             payoutReq.Customer,
		DryRun:               req.DryRun,
	}

	payload, err := uc.provider.BuildPayout(payoutReq)
	if err != nil {
		return nil, err
	}
	if req.DryRun {
		result.Payload = payload
		return result, nil
	}

	outcome := uc.executePayout(ctx, target)
	result.Outcome = &outcome
	return result, nil
}

func (uc *PaymentUC) manualPayoutTransaction(ctx context.Context, req models.ManualPayoutRequest) (*models.Transaction, error) {
	if req.Reference == "" {
		return uc.repo.GetLatestVerifiedTransaction(ctx, req.AssociationID)
	}
	tx, err := uc.repo.GetTransactionByReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}
	if req.AssociationID != 0 && tx.AssociationID != req.AssociationID {
		return nil, models.NotFoundError("transaction")
	}
	return tx, nil
}

// asJSON keeps valid JSON bodies and wraps anything else as a JSON string
func asJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
