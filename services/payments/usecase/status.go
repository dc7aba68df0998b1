package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/duespay/internal/pkg/models"
)

// GetPaymentStatus answers a payer polling for a reference. Unknown
// references are reported with Exists false, not as an error.
func (uc *PaymentUC) GetPaymentStatus(ctx context.Context, reference string) (*models.PaymentStatus, error) {
	reference = strings.TrimSpace(reference)
	status := &models.PaymentStatus{ReferenceID: reference}
	if reference == "" {
		return status, nil
	}

	tx, err := uc.repo.GetTransactionByReference(ctx, reference)
	if errors.Is(err, models.ErrNotFound) {
		return status, nil
	}
	if err != nil {
		return nil, err
	}

	amount := tx.AmountPaid
	status.Exists = true
	status.IsVerified = tx.IsVerified
	status.AmountPaid = &amount

	receiptID, err := uc.repo.GetReceiptID(ctx, tx.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	status.ReceiptID = receiptID

	return status, nil
}

// ListTransactions returns one page of an association's transactions with
// totals over the whole filtered set
func (uc *PaymentUC) ListTransactions(ctx context.Context, filter models.TransactionFilter) (*models.TransactionList, error) {
	if filter.AssociationID <= 0 {
		return nil, models.ValidationError("association is required")
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Page < 1 {
		filter.Page = 1
	}

	results, err := uc.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.GetTransactionStats(ctx, filter)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.TransactionSummary{}
	}

	return &models.TransactionList{
		Results: results,
		Meta:    *stats,
		Page:    filter.Page,
	}, nil
}
