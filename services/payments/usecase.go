package payments

import (
	"context"

	"github.com/piresc/duespay/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/duespay/services/payments PaymentUC
type PaymentUC interface {
	InitiateCheckout(ctx context.Context, req models.InitiatePaymentRequest) (*models.CheckoutResponse, error)
	InitiateBankTransfer(ctx context.Context, req models.InitiatePaymentRequest) (*models.BankTransferResponse, error)
	GetPaymentStatus(ctx context.Context, reference string) (*models.PaymentStatus, error)
	HandleWebhook(ctx context.Context, raw []byte, signature string) models.WebhookResult
	ListTransactions(ctx context.Context, filter models.TransactionFilter) (*models.TransactionList, error)
	ManualPayout(ctx context.Context, req models.ManualPayoutRequest) (*models.ManualPayoutResult, error)
}
