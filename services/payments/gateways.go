package payments

import (
	"context"

	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/models"
)

// ProviderGW is the payment provider
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/duespay/services/payments ProviderGW,EventGW,BulkPayoutQueue
type ProviderGW interface {
	InitializeCharge(ctx context.Context, req korapay.ChargeRequest) (*korapay.ChargeResponse, error)
	InitializeBankTransfer(ctx context.Context, req korapay.BankTransferRequest) (*korapay.BankTransferResponse, error)
	BuildPayout(req korapay.PayoutRequest) (*korapay.PayoutPayload, error)
	PayoutToBank(ctx context.Context, req korapay.PayoutRequest) (*korapay.PayoutResult, error)
}

// EventGW publishes transaction lifecycle events for notification and receipt workers
type EventGW interface {
	PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error
	PublishTransactionVerified(ctx context.Context, event models.TransactionEvent) error
}

// BulkPayoutQueue takes payouts that are settled in bulk instead of immediately
type BulkPayoutQueue interface {
	EnqueueDeferredPayout(ctx context.Context, payout models.DeferredPayout) error
}
