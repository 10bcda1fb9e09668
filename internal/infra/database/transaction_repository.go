package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pjcweb/site-backend/internal/entity"
)

type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Open commits the pending/initiated row. StartCheckout refuses to return a
// redirect URL until this insert succeeds.
func (r *TransactionRepository) Open(ctx context.Context, tx *entity.PaymentTransaction) error {
	metadata, err := json.Marshal(tx.Metadata)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	query := `
		INSERT INTO payment_transactions (
			id, package_id, amount, currency, provider, session_id,
			payment_status, status, metadata, customer_email,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		tx.ID,
		tx.PackageID,
		tx.Amount,
		tx.Currency,
		tx.Provider,
		tx.SessionID,
		tx.PaymentStatus,
		tx.Status,
		metadata,
		nullString(tx.CustomerEmail),
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("opening payment transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error) {
	query := `
		SELECT id, package_id, amount, currency, provider, session_id,
		       payment_status, status, metadata, COALESCE(customer_email, ''),
		       created_at, updated_at
		FROM payment_transactions
		WHERE session_id = $1
	`

	var tx entity.PaymentTransaction
	var metadata []byte

	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&tx.ID,
		&tx.PackageID,
		&tx.Amount,
		&tx.Currency,
		&tx.Provider,
		&tx.SessionID,
		&tx.PaymentStatus,
		&tx.Status,
		&metadata,
		&tx.CustomerEmail,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading payment transaction: %w", err)
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &tx.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling metadata: %w", err)
		}
	}
	return &tx, nil
}

// MarkPaidIfUnprocessed is the idempotency anchor for the whole payment
// flow. The WHERE clause closes the race between a client status poll and a
// provider webhook: however many callers arrive, exactly one update matches.
func (r *TransactionRepository) MarkPaidIfUnprocessed(ctx context.Context, sessionID string) (bool, error) {
	query := `
		UPDATE payment_transactions
		SET payment_status = $1, status = $2, updated_at = NOW()
		WHERE session_id = $3 AND payment_status <> $1
	`

	res, err := r.DB.ExecContext(ctx, query, entity.PaymentStatusPaid, entity.TxStatusCompleted, sessionID)
	if err != nil {
		return false, fmt.Errorf("marking transaction paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil
	}

	// Nothing updated: either already paid, or the session doesn't exist.
	var exists bool
	if err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM payment_transactions WHERE session_id = $1)`, sessionID).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, entity.ErrTransactionNotFound
	}
	return true, nil
}

// MarkFailedIfPending flips terminal provider failures. The pending guard
// means a stale failure report can never downgrade a paid row.
func (r *TransactionRepository) MarkFailedIfPending(ctx context.Context, sessionID string) error {
	query := `
		UPDATE payment_transactions
		SET payment_status = $1, updated_at = NOW()
		WHERE session_id = $2 AND payment_status = $3
	`
	_, err := r.DB.ExecContext(ctx, query, entity.PaymentStatusFailed, sessionID, entity.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("marking transaction failed: %w", err)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
