package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const transactionColumns = `t.id, t.reference_id, t.payer_id, t.association_id, t.session_id,
		t.amount_paid, t.is_verified, t.submitted_at`

// ReferenceExists reports whether a transaction already uses reference
func (r *PaymentRepo) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE reference_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, reference); err != nil {
		return false, fmt.Errorf("failed to check reference: %w", err)
	}
	return exists, nil
}

// CreateTransaction inserts a pending transaction and its selected payment
// items atomically and sets tx.ID
func (r *PaymentRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) (err error) {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = dbTx.Rollback()
		}
	}()

	query := `
		INSERT INTO transactions (
			reference_id, payer_id, association_id, session_id, amount_paid, is_verified, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = dbTx.QueryRowxContext(ctx, query,
		tx.ReferenceID,
		tx.PayerID,
		tx.AssociationID,
		tx.SessionID,
		tx.AmountPaid,
		tx.IsVerified,
		tx.SubmittedAt,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for _, itemID := range tx.PaymentItemIDs {
		_, err = dbTx.ExecContext(ctx,
			`INSERT INTO transaction_payment_items (transaction_id, payment_item_id) VALUES ($1, $2)`,
			tx.ID, itemID)
		if err != nil {
			return fmt.Errorf("failed to link payment item %d: %w", itemID, err)
		}
	}

	if err = dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTransactionByReference retrieves a transaction by its merchant reference
func (r *PaymentRepo) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.reference_id = $1
	`
	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, reference); err != nil {
		return nil, notFound(err, "transaction")
	}
	return &tx, nil
}

// GetLatestVerifiedTransaction returns the most recently submitted verified
// transaction, optionally scoped to an association
func (r *PaymentRepo) GetLatestVerifiedTransaction(ctx context.Context, associationID int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.is_verified = TRUE`
	var args []interface{}
	if associationID > 0 {
		query += ` AND t.association_id = $1`
		args = append(args, associationID)
	}
	query += ` ORDER BY t.submitted_at DESC, t.id DESC LIMIT 1`

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, args...); err != nil {
		return nil, notFound(err, "verified transaction")
	}
	return &tx, nil
}

// MarkVerified flips a pending transaction to verified with the settled
// amount. It reports false when the row was already verified.
func (r *PaymentRepo) MarkVerified(ctx context.Context, id int64, amountPaid decimal.Decimal) (bool, error) {
	query := `
		UPDATE transactions
		SET is_verified = TRUE, amount_paid = $2
		WHERE id = $1 AND is_verified = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, id, amountPaid)
	if err != nil {
		return false, fmt.Errorf("failed to mark transaction verified: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

// ListTransactions returns one page of the filtered listing, newest first,
// with payer details and item titles
func (r *PaymentRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error) {
	where, args := transactionWhere(filter)
	args = append(args, filter.Limit(), filter.Offset())

	query := fmt.Sprintf(`
		SELECT %s,
			p.first_name AS payer_first_name,
			p.last_name AS payer_last_name,
			p.matric_number AS payer_matric_number,
			p.email AS payer_email
		FROM transactions t
		JOIN payers p ON p.id = t.payer_id
		WHERE %s
		ORDER BY t.submitted_at DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, transactionColumns, where, len(args)-1, len(args))

	var results []models.TransactionSummary
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if err := r.attachItems(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetTransactionStats aggregates the whole filtered set, ignoring pagination
func (r *PaymentRepo) GetTransactionStats(ctx context.Context, filter models.TransactionFilter) (*models.TransactionStats, error) {
	where, args := transactionWhere(filter)
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(t.amount_paid) FILTER (WHERE t.is_verified), 0) AS total_collections,
			COUNT(*) FILTER (WHERE t.is_verified) AS completed_payments,
			COUNT(*) FILTER (WHERE NOT t.is_verified) AS pending_payments
		FROM transactions t
		JOIN payers p ON p.id = t.payer_id
		WHERE %s
	`, where)

	var stats models.TransactionStats
	if err := r.db.GetContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get transaction stats: %w", err)
	}
	return &stats, nil
}

// GetReceiptID returns the receipt issued for a verified transaction
func (r *PaymentRepo) GetReceiptID(ctx context.Context, transactionID int64) (*string, error) {
	var receiptID string
	query := `SELECT receipt_id FROM transaction_receipts WHERE transaction_id = $1`
	if err := r.db.GetContext(ctx, &receiptID, query, transactionID); err != nil {
		return nil, notFound(err, "receipt")
	}
	return &receiptID, nil
}

type transactionItem struct {
	TransactionID int64  `db:"transaction_id"`
	PaymentItemID int64  `db:"payment_item_id"`
	Title         string `db:"title"`
}

func (r *PaymentRepo) attachItems(ctx context.Context, results []models.TransactionSummary) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]int64, len(results))
	index := make(map[int64]int, len(results))
	for i := range results {
		ids[i] = results[i].ID
		index[results[i].ID] = i
	}

	query, args, err := sqlx.In(`
		SELECT tpi.transaction_id, tpi.payment_item_id, pi.title
		FROM transaction_payment_items tpi
		JOIN payment_items pi ON pi.id = tpi.payment_item_id
		WHERE tpi.transaction_id IN (?)
		ORDER BY tpi.transaction_id, tpi.payment_item_id
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build transaction items query: %w", err)
	}

	var items []transactionItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to get transaction items: %w", err)
	}
	for _, item := range items {
		i, ok := index[item.TransactionID]
		if !ok {
			continue
		}
		results[i].PaymentItemIDs = append(results[i].PaymentItemIDs, item.PaymentItemID)
		results[i].PaymentItemTitles = append(results[i].PaymentItemTitles, item.Title)
	}
	return nil
}

// transactionWhere renders the filter as a WHERE clause over t and p with
// positional args starting at $1
func transactionWhere(filter models.TransactionFilter) (string, []interface{}) {
	clauses := []string{"t.association_id = $1"}
	args := []interface{}{filter.AssociationID}

	switch filter.State {
	case models.TransactionVerified:
		clauses = append(clauses, "t.is_verified = TRUE")
	case models.TransactionPending:
		clauses = append(clauses, "t.is_verified = FALSE")
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(t.reference_id ILIKE $%[1]d OR p.first_name ILIKE $%[1]d OR p.last_name ILIKE $%[1]d OR p.matric_number ILIKE $%[1]d OR p.email ILIKE $%[1]d)", n))
	}

	return strings.Join(clauses, " AND "), args
}
