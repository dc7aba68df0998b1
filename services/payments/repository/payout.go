package repository

import (
	"context"
	"fmt"

	"github.com/piresc/duespay/internal/pkg/models"
)

// RecordPayout stores one payout attempt and sets payout.ID
func (r *PaymentRepo) RecordPayout(ctx context.Context, payout *models.Payout) error {
	query := `
		INSERT INTO payouts (
			reference, transaction_reference, amount, status, provider_response, error, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var providerResponse interface{}
	if len(payout.ProviderResponse) > 0 {
		providerResponse = string(payout.ProviderResponse)
	}

	err := r.db.QueryRowxContext(ctx, query,
		payout.Reference,
		payout.TransactionReference,
		payout.Amount,
		string(payout.Status),
		providerResponse,
		payout.Error,
		payout.CreatedAt,
	).Scan(&payout.ID)
	if err != nil {
		return fmt.Errorf("failed to record payout: %w", err)
	}
	return nil
}

// ListPendingPayouts returns transaction references whose latest payout
// attempt failed, oldest first
func (r *PaymentRepo) ListPendingPayouts(ctx context.Context, limit int) ([]models.Payout, error) {
	query := `
		SELECT id, reference, transaction_reference, amount, status, provider_response, error, created_at
		FROM (
			SELECT DISTINCT ON (transaction_reference)
				id, reference, transaction_reference, amount, status,
				COALESCE(provider_response, 'null'::jsonb) AS provider_response,
				error, created_at
			FROM payouts
			ORDER BY transaction_reference, created_at DESC, id DESC
		) latest
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	var payouts []models.Payout
	if err := r.db.SelectContext(ctx, &payouts, query, string(models.PayoutFailed), limit); err != nil {
		return nil, fmt.Errorf("failed to list pending payouts: %w", err)
	}
	return payouts, nil
}
