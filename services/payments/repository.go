package payments

import (
	"context"

	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// PaymentRepo defines the interface for payment data access operations.
// Lookups of a missing row return an error wrapping models.ErrNotFound.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/duespay/services/payments PaymentRepo
type PaymentRepo interface {
	// Read-only association data
	GetAssociation(ctx context.Context, id int64) (*models.Association, error)
	GetPayer(ctx context.Context, id int64) (*models.Payer, error)
	GetSession(ctx context.Context, id int64) (*models.Session, error)
	GetCurrentSession(ctx context.Context, associationID int64) (*models.Session, error)
	GetPaymentItems(ctx context.Context, ids []int64) ([]models.PaymentItem, error)
	GetReceiverBankAccount(ctx context.Context, associationID int64) (*models.ReceiverBankAccount, error)

	// Transactions
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	GetLatestVerifiedTransaction(ctx context.Context, associationID int64) (*models.Transaction, error)
	MarkVerified(ctx context.Context, id int64, amountPaid decimal.Decimal) (bool, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error)
	GetTransactionStats(ctx context.Context, filter models.TransactionFilter) (*models.TransactionStats, error)
	GetReceiptID(ctx context.Context, transactionID int64) (*string, error)

	// Payout attempts
	RecordPayout(ctx context.Context, payout *models.Payout) error
}
