package usecase

import (
	"context"

	"github.com/pjcweb/site-backend/internal/infra/queue"
)

// PaymentSession is the one internal shape every provider response is
// normalized into before the ledger sees it. Handlers and the ledger never
// branch on Stripe- or PayPal-specific payloads.
type PaymentSession struct {
	Provider    string
	SessionID   string
	RedirectURL string

	// ProviderStatus keeps the raw upstream status string for debugging;
	// PaymentState is the normalized one the ledger acts on.
	ProviderStatus string
	PaymentState   string // pending | paid | failed

	AmountTotal float64
	Currency    string
	Metadata    map[string]string
}

type CreateSessionInput struct {
	PackageID     string
	Description   string
	Amount        float64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*PaymentSession, error)
	GetSession(ctx context.Context, sessionID string) (*PaymentSession, error)
}

// CaptureGateway is implemented by providers with a two-step approve/capture
// flow (PayPal). Stripe sessions settle without an explicit capture call.
type CaptureGateway interface {
	CaptureOrder(ctx context.Context, orderID string) (*PaymentSession, error)
}

type QueueProducerInterface interface {
	PublishReceipt(ctx context.Context, payload queue.ReceiptPayload) error
}

type ChatProvider interface {
	Complete(ctx context.Context, sessionID, message string) (string, error)
}

type EmailService interface {
	SendWelcome(to, name, packageName string, amount float64) error
}
