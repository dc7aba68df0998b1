package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/payments"
)

// PaymentRepo implements payments.PaymentRepo on PostgreSQL
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	logger.Info("Initializing payment repository")
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

var _ payments.PaymentRepo = (*PaymentRepo)(nil)

// GetAssociation retrieves an association by ID
func (r *PaymentRepo) GetAssociation(ctx context.Context, id int64) (*models.Association, error) {
	query := `
		SELECT id, name, short_name, association_type, admin_email
		FROM associations
		WHERE id = $1
	`
	var association models.Association
	if err := r.db.GetContext(ctx, &association, query, id); err != nil {
		return nil, notFound(err, "association")
	}
	return &association, nil
}

// GetPayer retrieves a payer by ID
func (r *PaymentRepo) GetPayer(ctx context.Context, id int64) (*models.Payer, error) {
	query := `
		SELECT id, association_id, session_id, first_name, last_name, email, phone_number, matric_number
		FROM payers
		WHERE id = $1
	`
	var payer models.Payer
	if err := r.db.GetContext(ctx, &payer, query, id); err != nil {
		return nil, notFound(err, "payer")
	}
	return &payer, nil
}

// GetSession retrieves a session by ID
func (r *PaymentRepo) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	query := `
		SELECT id, association_id, title, is_active, created_at
		FROM sessions
		WHERE id = $1
	`
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, notFound(err, "session")
	}
	return &session, nil
}

// GetCurrentSession returns the association's most recent active session
func (r *PaymentRepo) GetCurrentSession(ctx context.Context, associationID int64) (*models.Session, error) {
	query := `
		SELECT id, association_id, title, is_active, created_at
		FROM sessions
		WHERE association_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, associationID); err != nil {
		return nil, notFound(err, "current session")
	}
	return &session, nil
}

// GetPaymentItems retrieves the payment items with the given IDs. Unknown IDs
// are simply absent from the result.
func (r *PaymentRepo) GetPaymentItems(ctx context.Context, ids []int64) ([]models.PaymentItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT id, association_id, session_id, title, amount, status, is_active
		FROM payment_items
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment items query: %w", err)
	}

	var items []models.PaymentItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get payment items: %w", err)
	}
	return items, nil
}

// GetReceiverBankAccount retrieves the association's payout destination
func (r *PaymentRepo) GetReceiverBankAccount(ctx context.Context, associationID int64) (*models.ReceiverBankAccount, error) {
	query := `
		SELECT association_id, bank_name, bank_code, account_name, account_number, is_verified
		FROM receiver_bank_accounts
		WHERE association_id = $1
	`
	var account models.ReceiverBankAccount
	if err := r.db.GetContext(ctx, &account, query, associationID); err != nil {
		return nil, notFound(err, "receiver bank account")
	}
	return &account, nil
}

// notFound maps sql.ErrNoRows to models.ErrNotFound and wraps anything else
func notFound(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFoundError(entity)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}
