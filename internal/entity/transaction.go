package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errors.New("payment transaction not found")

const (
	ProviderStripe = "stripe"
	ProviderPayPal = "paypal"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	TxStatusInitiated = "initiated"
	TxStatusCompleted = "completed"
)

// PaymentTransaction is a ledger row for one provider session. The amount is
// always computed server-side from the package catalog before the row is
// written; it is never taken from the client.
type PaymentTransaction struct {
	ID            string            `json:"id"`
	PackageID     string            `json:"package_id"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Provider      string            `json:"provider"`
	SessionID     string            `json:"session_id"`
	PaymentStatus string            `json:"payment_status"`
	Status        string            `json:"status"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewPaymentTransaction builds a pending/initiated row. The ledger invariant:
// this row must be durably committed before the customer is redirected to the
// provider.
func NewPaymentTransaction(packageID string, amount float64, currency, provider, sessionID, customerEmail string, metadata map[string]string) *PaymentTransaction {
	now := time.Now().UTC()
	return &PaymentTransaction{
		ID:            uuid.New().String(),
		PackageID:     packageID,
		Amount:        amount,
		Currency:      currency,
		Provider:      provider,
		SessionID:     sessionID,
		PaymentStatus: PaymentStatusPending,
		Status:        TxStatusInitiated,
		Metadata:      metadata,
		CustomerEmail: customerEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type TransactionRepositoryInterface interface {
	Open(ctx context.Context, tx *PaymentTransaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*PaymentTransaction, error)

	// MarkPaidIfUnprocessed performs the single atomic conditional update the
	// whole payment flow leans on: set paid/completed only where the row is
	// not already paid, and report whether this call won the transition.
	MarkPaidIfUnprocessed(ctx context.Context, sessionID string) (alreadyProcessed bool, err error)

	// MarkFailedIfPending flips a still-pending row to failed when the
	// provider reports a terminal failure. Same guard, so a late failure
	// signal can never overwrite a paid row.
	MarkFailedIfPending(ctx context.Context, sessionID string) error
}
