package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// pendingCharge is a stored pending transaction ready to be sent to the provider
type pendingCharge struct {
	tx          *models.Transaction
	association *models.Association
	payer       *models.Payer
	fee         decimal.Decimal
	total       decimal.Decimal
	metadata    *korapay.Metadata
}

// InitiateCheckout stores a pending transaction and opens a hosted checkout for it
func (uc *PaymentUC) InitiateCheckout(ctx context.Context, req models.InitiatePaymentRequest) (*models.CheckoutResponse, error) {
	redirectURL, err := uc.redirectURL()
	if err != nil {
		return nil, err
	}

	pc, err := uc.createPendingCharge(ctx, req)
	if err != nil {
		return nil, err
	}
	ref := pc.tx.ReferenceID

	charge, err := uc.provider.InitializeCharge(ctx, korapay.ChargeRequest{
		Amount:      pc.total,
		Currency:    uc.cfg.Platform.Currency,
		Reference:   ref,
		Customer:    models.CustomerInfo{Name: pc.payer.FullName(), Email: pc.payer.Email},
		RedirectURL: withReference(redirectURL, ref),
		Metadata:    pc.metadata,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to initialize checkout",
			logger.String("reference", ref),
			logger.Err(err))
		return nil, err
	}

	return &models.CheckoutResponse{
		ReferenceID:  ref,
		Amount:       pc.tx.AmountPaid,
		PlatformFee:  pc.fee,
		TotalPayable: pc.total,
		CheckoutURL:  charge.CheckoutURL,
	}, nil
}

// InitiateBankTransfer stores a pending transaction and issues a dynamic
// virtual account for the payer to transfer into
func (uc *PaymentUC) InitiateBankTransfer(ctx context.Context, req models.InitiatePaymentRequest) (*models.BankTransferResponse, error) {
	pc, err := uc.createPendingCharge(ctx, req)
	if err != nil {
		return nil, err
	}
	ref := pc.tx.ReferenceID
	customer := models.CustomerInfo{
		Name:  korapay.SanitizeCustomerName(pc.payer.FullName()),
		Email: pc.payer.Email,
	}
	narration := fmt.Sprintf("%s dues %s", pc.association.DisplayName(), ref)

	transfer, err := uc.provider.InitializeBankTransfer(ctx, korapay.BankTransferRequest{
		Amount:          pc.total,
		Currency:        uc.cfg.Platform.Currency,
		Reference:       ref,
		Customer:        customer,
		NotificationURL: uc.cfg.Korapay.WebhookURL,
		AccountName:     uc.cfg.Platform.Name,
		Narration:       narration,
		Metadata:        pc.metadata,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to initialize bank transfer",
			logger.String("reference", ref),
			logger.Err(err))
		return nil, err
	}
	if transfer.Narration != "" {
		narration = transfer.Narration
	}

	return &models.BankTransferResponse{
		ReferenceID:  ref,
		Amount:       pc.tx.AmountPaid,
		PlatformFee:  pc.fee,
		TotalPayable: pc.total,
		Currency:     uc.cfg.Platform.Currency,
		BankAccount:  transfer.BankAccount,
		Customer:     customer,
		Narration:    narration,
	}, nil
}

// createPendingCharge validates the selection, prices it, and stores the
// pending transaction under a fresh reference
func (uc *PaymentUC) createPendingCharge(ctx context.Context, req models.InitiatePaymentRequest) (*pendingCharge, error) {
	if len(req.PaymentItemIDs) == 0 {
		return nil, models.ValidationError("at least one payment item is required")
	}

	association, err := uc.repo.GetAssociation(ctx, req.AssociationID)
	if err != nil {
		return nil, err
	}

	payer, err := uc.repo.GetPayer(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	if payer.AssociationID != association.ID {
		return nil, models.ValidationError("payer %d does not belong to association %d", payer.ID, association.ID)
	}

	session, err := uc.resolveSession(ctx, association.ID, req.SessionID)
	if err != nil {
		return nil, err
	}

	ids := uniqueIDs(req.PaymentItemIDs)
	items, err := uc.repo.GetPaymentItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	base, err := sumSelectedItems(ids, items, association.ID, session.ID)
	if err != nil {
		return nil, err
	}

	fee := uc.fees.Fee(base)
	total := uc.fees.Charge(base)

	ref, err := uc.uniqueReference(ctx)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ReferenceID:    ref,
		PayerID:        payer.ID,
		AssociationID:  association.ID,
		SessionID:      session.ID,
		PaymentItemIDs: ids,
		AmountPaid:     base,
		IsVerified:     false,
		SubmittedAt:    uc.now().UTC(),
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Pending transaction created",
		logger.String("reference", ref),
		logger.Int64("association_id", association.ID),
		logger.String("amount", money.Format2DP(base)),
		logger.String("platform_fee", money.Format2DP(fee)))

	if err := uc.events.PublishTransactionCreated(ctx, models.NewTransactionEvent(tx, uc.now())); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction created event",
			logger.String("reference", ref),
			logger.Err(err))
	}

	metadata := korapay.NewMetadata().
		Set("base_amount", base).
		Set("platform_fee", fee).
		Set("association_id", association.ID).
		Set("session_id", session.ID).
		Set("payer_id", payer.ID)

	return &pendingCharge{
		tx:          tx,
		association: association,
		payer:       payer,
		fee:         fee,
		total:       total,
		metadata:    metadata,
	}, nil
}

func (uc *PaymentUC) resolveSession(ctx context.Context, associationID, sessionID int64) (*models.Session, error) {
	if sessionID == 0 {
		return uc.repo.GetCurrentSession(ctx, associationID)
	}
	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AssociationID != associationID {
		return nil, models.ValidationError("session %d does not belong to association %d", sessionID, associationID)
	}
	return session, nil
}

// sumSelectedItems returns the base total. Every id must be a known, active
// item of the association and session.
func sumSelectedItems(ids []int64, items []models.PaymentItem, associationID, sessionID int64) (decimal.Decimal, error) {
	byID := make(map[int64]models.PaymentItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	amounts := make([]decimal.Decimal, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		switch {
		case !ok:
			return decimal.Zero, models.ValidationError("payment item %d not found", id)
		case item.AssociationID != associationID || item.SessionID != sessionID:
			return decimal.Zero, models.ValidationError("payment item %d does not belong to this session", id)
		case !item.IsActive:
			return decimal.Zero, models.ValidationError("payment item %d is not active", id)
		}
		amounts = append(amounts, item.Amount)
	}

	base := money.Sum(amounts...).Round(2)
	if !base.IsPositive() {
		return decimal.Zero, models.ValidationError("amount must be greater than zero")
	}
	return base, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// redirectURL returns the checkout redirect. It is checked before anything is
// stored: outside development only https is accepted.
func (uc *PaymentUC) redirectURL() (string, error) {
	redirect := uc.cfg.Korapay.RedirectURL
	if redirect == "" {
		return "", fmt.Errorf("%w: KORAPAY_REDIRECT_URL is not set", models.ErrConfiguration)
	}
	if !strings.HasPrefix(redirect, "https://") && !uc.cfg.App.IsDevelopment() {
		return "", fmt.Errorf("%w: %q", korapay.ErrInsecureRedirect, redirect)
	}
	return redirect, nil
}

// withReference appends the merchant reference as a query parameter
func withReference(raw, ref string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("reference", ref)
	u.RawQuery = q.Encode()
	return u.String()
}
