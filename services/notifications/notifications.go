package notifications

import (
	"context"
	"time"

	"github.com/piresc/duespay/internal/pkg/models"
)

// NotificationUC reacts to transaction lifecycle events
// go:generate mockgen -destination=mocks/mock_notifications.go -package=mocks github.com/piresc/duespay/services/notifications NotificationUC,NotificationRepo,Mailer
type NotificationUC interface {
	NotifyTransactionCreated(ctx context.Context, event models.TransactionEvent) error
	IssueReceipt(ctx context.Context, event models.TransactionEvent) (*models.Receipt, error)
	NotifyDeferredPayout(ctx context.Context, payout models.DeferredPayout) error
}

// NotificationRepo reads recipients and stores receipts
type NotificationRepo interface {
	GetAssociation(ctx context.Context, id int64) (*models.Association, error)
	GetPayer(ctx context.Context, id int64) (*models.Payer, error)
	// CreateReceipt issues receiptID for the transaction unless one exists.
	// It returns the stored receipt and whether it was created by this call.
	CreateReceipt(ctx context.Context, transactionID int64, receiptID string, issuedAt time.Time) (*models.Receipt, bool, error)
}

// Mailer delivers notification emails
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}
