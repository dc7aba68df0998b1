package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/services/notifications"
)

// NotificationUC implements notifications.NotificationUC
type NotificationUC struct {
	cfg    *models.Config
	repo   notifications.NotificationRepo
	mailer notifications.Mailer
	now    func() time.Time
	newID  func() string
}

// Option customises a NotificationUC
type Option func(*NotificationUC)

// WithClock overrides the clock
func WithClock(now func() time.Time) Option {
	return func(uc *NotificationUC) { uc.now = now }
}

// WithReceiptIDGenerator overrides how receipt IDs are drawn
func WithReceiptIDGenerator(gen func() string) Option {
	return func(uc *NotificationUC) { uc.newID = gen }
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(cfg *models.Config, repo notifications.NotificationRepo, mailer notifications.Mailer, opts ...Option) *NotificationUC {
	uc := &NotificationUC{
		cfg:    cfg,
		repo:   repo,
		mailer: mailer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ notifications.NotificationUC = (*NotificationUC)(nil)

// NotifyTransactionCreated tells the association admin that a payer started
// a payment. Associations without an admin email are skipped.
func (uc *NotificationUC) NotifyTransactionCreated(ctx context.Context, event models.TransactionEvent) error {
	association, err := uc.repo.GetAssociation(ctx, event.AssociationID)
	if err != nil {
		return fmt.Errorf("load association %d: %w", event.AssociationID, err)
	}
	if strings.TrimSpace(association.AdminEmail) == "" {
		logger.InfoCtx(ctx, "Association has no admin email, skipping notification",
			logger.Int64("association_id", association.ID),
			logger.String("reference", event.ReferenceID))
		return nil
	}

	payerName := "A payer"
	if payer, err := uc.repo.GetPayer(ctx, event.PayerID); err == nil {
		if name := payer.FullName(); name != "" {
			payerName = name
		}
	} else if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("load payer %d: %w", event.PayerID, err)
	}

	email := models.Email{
		To:      association.AdminEmail,
		Subject: fmt.Sprintf("New payment initiated: %s", event.ReferenceID),
		Body: fmt.Sprintf("%s started a payment of %s %s to %s.\nReference: %s\nIt will be marked verified once the provider confirms it.",
			payerName,
			uc.cfg.Platform.Currency,
			money.Format2DP(event.AmountPaid),
			association.DisplayName(),
			event.ReferenceID),
	}
	if err := uc.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("send admin notification: %w", err)
	}
	return nil
}

// IssueReceipt records the receipt for a verified transaction and emails it to
// the payer. Redelivered events return the receipt issued the first time
// without emailing again.
func (uc *NotificationUC) IssueReceipt(ctx context.Context, event models.TransactionEvent) (*models.Receipt, error) {
	if !event.IsVerified {
		return nil, models.ValidationError("transaction %s is not verified", event.ReferenceID)
	}
	if event.TransactionID <= 0 {
		return nil, models.ValidationError("transaction id is required")
	}

	receipt, created, err := uc.repo.CreateReceipt(ctx, event.TransactionID, uc.newID(), uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if !created {
		logger.InfoCtx(ctx, "Receipt already issued",
			logger.String("reference", event.ReferenceID),
			logger.String("receipt_id", receipt.ReceiptID))
		return receipt, nil
	}

	logger.InfoCtx(ctx, "Receipt issued",
		logger.String("reference", event.ReferenceID),
		logger.String("receipt_id", receipt.ReceiptID))

	payer, err := uc.repo.GetPayer(ctx, event.PayerID)
	if err != nil {
		logger.WarnCtx(ctx, "Receipt issued but payer could not be loaded",
			logger.Int64("payer_id", event.PayerID),
			logger.Err(err))
		return receipt, nil
	}
	if payer.Email == "" {
		return receipt, nil
	}

	email := models.Email{
		To:      payer.Email,
		Subject: fmt.Sprintf("Payment receipt %s", receipt.ReceiptID),
		Body: fmt.Sprintf("Hello %s,\nWe received your payment of %s %s.\nReference: %s\nReceipt: %s\nIssued: %s",
			payer.FirstName,
			uc.cfg.Platform.Currency,
			money.Format2DP(event.AmountPaid),
			event.ReferenceID,
			receipt.ReceiptID,
			receipt.IssuedAt.Format(time.RFC1123)),
	}
	// The receipt row is the record; a failed email is not retried
	if err := uc.mailer.Send(ctx, email); err != nil {
		logger.WarnCtx(ctx, "Failed to email receipt",
			logger.String("receipt_id", receipt.ReceiptID),
			logger.Err(err))
	}
	return receipt, nil
}

// NotifyDeferredPayout tells the admin that a payout joined the bulk queue
func (uc *NotificationUC) NotifyDeferredPayout(ctx context.Context, payout models.DeferredPayout) error {
	association, err := uc.repo.GetAssociation(ctx, payout.AssociationID)
	if err != nil {
		return fmt.Errorf("load association %d: %w", payout.AssociationID, err)
	}
	if strings.TrimSpace(association.AdminEmail) == "" {
		return nil
	}

	email := models.Email{
		To:      association.AdminEmail,
		Subject: fmt.Sprintf("Payout queued for bulk settlement: %s", payout.Reference),
		Body: fmt.Sprintf("A payout of %s %s for transaction %s was queued and will be settled with the next bulk payout.",
			uc.cfg.Platform.Currency,
			money.Format2DP(payout.Amount),
			payout.TransactionReference),
	}
	if err := uc.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("send payout notification: %w", err)
	}
	return nil
}
