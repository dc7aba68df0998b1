package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/notifications/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*NotificationHandler, *mocks.MockNotificationUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockNotificationUC(ctrl)
	return NewNotificationHandler(mockUC, &models.Config{}), mockUC
}

const createdMessage = `{"reference_id":"TX-1234-001-AB","transaction_id":42,"association_id":7,"payer_id":11,"amount_paid":"1000.00","is_verified":false}`
const verifiedMessage = `{"reference_id":"TX-1234-001-AB","transaction_id":42,"association_id":7,"payer_id":11,"amount_paid":"1000.00","is_verified":true}`

func TestHandleTransactionCreated(t *testing.T) {
	h, mockUC := newTestHandler(t)
	mockUC.EXPECT().NotifyTransactionCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.TransactionEvent) error {
			assert.NotEmpty(t, logger.RequestIDFromContext(ctx))
			assert.Equal(t, "TX-1234-001-AB", event.ReferenceID)
			assert.True(t, event.AmountPaid.Equal(decimal.NewFromInt(1000)))
			return nil
		})

	assert.NoError(t, h.handleTransactionCreated([]byte(createdMessage)))
}

func TestHandleTransactionCreated_ErrorRequeues(t *testing.T) {
	h, mockUC := newTestHandler(t)
	mockUC.EXPECT().NotifyTransactionCreated(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.Error(t, h.handleTransactionCreated([]byte(createdMessage)))
}

func TestHandleMalformedMessagesAreDropped(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.NoError(t, h.handleTransactionCreated([]byte("{not json")))
	assert.NoError(t, h.handleTransactionVerified([]byte("{not json")))
	assert.NoError(t, h.handlePayoutDeferred([]byte("{not json")))
}

func TestHandleTransactionVerified(t *testing.T) {
	h, mockUC := newTestHandler(t)
	mockUC.EXPECT().IssueReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TransactionEvent) (*models.Receipt, error) {
			assert.True(t, event.IsVerified)
			assert.Equal(t, int64(42), event.TransactionID)
			return &models.Receipt{TransactionID: 42, ReceiptID: "r-1"}, nil
		})

	assert.NoError(t, h.handleTransactionVerified([]byte(verifiedMessage)))
}

func TestHandleTransactionVerified_Errors(t *testing.T) {
	h, mockUC := newTestHandler(t)

	mockUC.EXPECT().IssueReceipt(gomock.Any(), gomock.Any()).Return(nil, models.ValidationError("transaction id is required"))
	assert.NoError(t, h.handleTransactionVerified([]byte(verifiedMessage)))

	mockUC.EXPECT().IssueReceipt(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	assert.Error(t, h.handleTransactionVerified([]byte(verifiedMessage)))
}

func TestHandlePayoutDeferred(t *testing.T) {
	h, mockUC := newTestHandler(t)
	mockUC.EXPECT().NotifyDeferredPayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payout models.DeferredPayout) error {
			assert.Equal(t, "TX-1234-001-AB-OUT", payout.Reference)
			assert.Equal(t, int64(7), payout.AssociationID)
			return nil
		})

	msg := `{"transaction_reference":"TX-1234-001-AB","association_id":7,"amount":"1000.00","reference":"TX-1234-001-AB-OUT"}`
	assert.NoError(t, h.handlePayoutDeferred([]byte(msg)))
}
