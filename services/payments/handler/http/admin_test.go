package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/middleware"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/payments/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewAdminHandler(mockUC)

	mockUC.EXPECT().ListTransactions(gomock.Any(), models.TransactionFilter{
		AssociationID: 7,
		State:         models.TransactionVerified,
		Search:        "ada",
		Page:          2,
		PageSize:      5,
	}).Return(&models.TransactionList{
		Results: []models.TransactionSummary{{Transaction: models.Transaction{ReferenceID: "TX-1234-001-AB"}}},
		Meta:    models.TransactionStats{Count: 6, TotalCollections: decimal.RequireFromString("6000"), CompletedPayments: 6},
		Page:    2,
	}, nil)

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/transactions?status=verified&search=ada&page=2&page_size=5", nil), rec)
	c.Set(middleware.ContextKeyAssociationID, int64(7))

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed_payments":6`)
	assert.Contains(t, rec.Body.String(), `"page_size":5`)
	assert.Contains(t, rec.Body.String(), "TX-1234-001-AB")
}

func TestListTransactions_BadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockPaymentUC(ctrl))

	for _, target := range []string{"/?status=refunded", "/?page=abc"} {
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
		c.Set(middleware.ContextKeyAssociationID, int64(7))

		require.NoError(t, h.ListTransactions(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManualPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewAdminHandler(mockUC)

	mockUC.EXPECT().ManualPayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ManualPayoutRequest) (*models.ManualPayoutResult, error) {
			assert.Equal(t, "TX-1234-001-AB", req.Reference)
			assert.Equal(t, int64(7), req.AssociationID)
			assert.True(t, req.DryRun)
			require.NotNil(t, req.Amount)
			assert.Equal(t, "500", req.Amount.String())
			return &models.ManualPayoutResult{
				TransactionReference: req.Reference,
				PayoutReference:      "TX-1234-001-AB-OUT",
				DryRun:               true,
			}, nil
		})

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(jsonRequest(http.MethodPost, "/", `{"amount":"500","dry_run":true}`), rec)
	c.SetParamNames("reference")
	c.SetParamValues("TX-1234-001-AB")
	c.Set(middleware.ContextKeyAssociationID, int64(7))

	require.NoError(t, h.ManualPayout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TX-1234-001-AB-OUT")
}

func TestManualPayout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "negative amount", body: `{"amount":"-5"}`, status: http.StatusBadRequest},
		{name: "not verified", body: `{}`, err: models.ValidationError("transaction is not verified"), status: http.StatusBadRequest},
		{name: "unknown", body: `{}`, err: models.NotFoundError("transaction"), status: http.StatusNotFound},
		{name: "bad destination", body: `{}`, err: korapay.ErrInvalidAccountNumber, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPaymentUC(ctrl)
			if tt.err != nil {
				mockUC.EXPECT().ManualPayout(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}
			h := NewAdminHandler(mockUC)

			rec := httptest.NewRecorder()
			c := newEcho().NewContext(jsonRequest(http.MethodPost, "/", tt.body), rec)
			c.SetParamNames("reference")
			c.SetParamValues("TX-1234-001-AB")
			c.Set(middleware.ContextKeyAssociationID, int64(7))

			require.NoError(t, h.ManualPayout(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
