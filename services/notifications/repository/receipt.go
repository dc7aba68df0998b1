package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/notifications"
)

// NotificationRepo implements notifications.NotificationRepo on PostgreSQL
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	logger.Info("Initializing notification repository")
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

var _ notifications.NotificationRepo = (*NotificationRepo)(nil)

// GetAssociation retrieves an association by ID
func (r *NotificationRepo) GetAssociation(ctx context.Context, id int64) (*models.Association, error) {
	query := `
		SELECT id, name, short_name, association_type, admin_email
		FROM associations
		WHERE id = $1
	`
	var association models.Association
	if err := r.db.GetContext(ctx, &association, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("association")
		}
		return nil, fmt.Errorf("failed to get association: %w", err)
	}
	return &association, nil
}

// GetPayer retrieves a payer by ID
func (r *NotificationRepo) GetPayer(ctx context.Context, id int64) (*models.Payer, error) {
	query := `
		SELECT id, association_id, session_id, first_name, last_name, email, phone_number, matric_number
		FROM payers
		WHERE id = $1
	`
	var payer models.Payer
	if err := r.db.GetContext(ctx, &payer, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("payer")
		}
		return nil, fmt.Errorf("failed to get payer: %w", err)
	}
	return &payer, nil
}

// CreateReceipt inserts a receipt, or returns the one already issued for the
// transaction
func (r *NotificationRepo) CreateReceipt(ctx context.Context, transactionID int64, receiptID string, issuedAt time.Time) (*models.Receipt, bool, error) {
	insert := `
		INSERT INTO transaction_receipts (transaction_id, receipt_id, issued_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (transaction_id) DO NOTHING
		RETURNING transaction_id, receipt_id, issued_at
	`
	var receipt models.Receipt
	err := r.db.GetContext(ctx, &receipt, insert, transactionID, receiptID, issuedAt)
	if err == nil {
		return &receipt, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to create receipt: %w", err)
	}

	existing := `
		SELECT transaction_id, receipt_id, issued_at
		FROM transaction_receipts
		WHERE transaction_id = $1
	`
	if err := r.db.GetContext(ctx, &receipt, existing, transactionID); err != nil {
		return nil, false, fmt.Errorf("failed to get existing receipt: %w", err)
	}
	return &receipt, false, nil
}
