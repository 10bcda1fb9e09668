package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/infra/queue"
)

const checkoutCurrency = "usd"

type CheckoutUseCase struct {
	TxRepo   entity.TransactionRepositoryInterface
	Gateways map[string]PaymentGateway
	Queue    QueueProducerInterface

	// Empty slice disables the check and origin_url is used verbatim.
	AllowedOrigins []string
}

func NewCheckoutUseCase(txRepo entity.TransactionRepositoryInterface, gateways map[string]PaymentGateway, producer QueueProducerInterface, allowedOrigins []string) *CheckoutUseCase {
	return &CheckoutUseCase{
		TxRepo:         txRepo,
		Gateways:       gateways,
		Queue:          producer,
		AllowedOrigins: allowedOrigins,
	}
}

type StartCheckoutInput struct {
	PackageID     string `json:"package_id"`
	TotalPages    int    `json:"total_pages"`
	OriginURL     string `json:"origin_url"`
	CustomerEmail string `json:"customer_email"`
	Provider      string `json:"provider"`
}

type StartCheckoutOutput struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type PaymentStatusOutput struct {
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   float64           `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// StartCheckout runs the strict ordering the ledger depends on: price is
// computed server-side, the provider session is created, and the pending row
// is committed before the redirect URL leaves this function.
func (uc *CheckoutUseCase) StartCheckout(ctx context.Context, input StartCheckoutInput) (*StartCheckoutOutput, error) {
	quote, err := CalculatePrice(input.PackageID, input.TotalPages)
	if err != nil {
		return nil, err
	}

	origin := strings.TrimRight(strings.TrimSpace(input.OriginURL), "/")
	if origin == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "origin_url is required"}
	}
	if err := uc.checkOrigin(origin); err != nil {
		return nil, err
	}

	provider := input.Provider
	if provider == "" {
		provider = entity.ProviderStripe
	}
	gateway, ok := uc.Gateways[provider]
	if !ok {
		return nil, ErrUnsupportedProvider
	}

	pkg, _ := entity.FindPackage(input.PackageID)

	session, err := gateway.CreateSession(ctx, CreateSessionInput{
		PackageID:     quote.PackageID,
		Description:   pkg.Name,
		Amount:        quote.FinalPrice,
		Currency:      checkoutCurrency,
		CustomerEmail: input.CustomerEmail,
		SuccessURL:    origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/checkout/cancel",
		Metadata: map[string]string{
			"package_id": quote.PackageID,
			"pages":      strconv.Itoa(quote.TotalPages),
		},
	})
	if err != nil {
		// No ledger row exists yet; the transaction simply never started.
		return nil, &PaymentProviderError{Provider: provider, Message: err.Error(), Err: err}
	}

	tx := entity.NewPaymentTransaction(
		quote.PackageID,
		quote.FinalPrice,
		checkoutCurrency,
		provider,
		session.SessionID,
		input.CustomerEmail,
		map[string]string{
			"package_id": quote.PackageID,
			"pages":      strconv.Itoa(quote.TotalPages),
			"origin":     origin,
		},
	)

	if err := uc.TxRepo.Open(ctx, tx); err != nil {
		// A provider session now exists with no local record. Nothing here
		// can safely undo the provider side, so surface it loudly for
		// reconciliation instead of attempting a compensating call.
		log.Printf("[checkout] RECONCILIATION GAP: provider=%s session=%s has no ledger row: %v", provider, session.SessionID, err)
		return nil, fmt.Errorf("recording transaction: %w", err)
	}

	return &StartCheckoutOutput{URL: session.RedirectURL, SessionID: session.SessionID}, nil
}

func (uc *CheckoutUseCase) checkOrigin(origin string) error {
	if len(uc.AllowedOrigins) == 0 {
		return nil
	}
	for _, allowed := range uc.AllowedOrigins {
		if strings.TrimRight(allowed, "/") == origin {
			return nil
		}
	}
	return ErrOriginNotAllowed
}

// PollStatus asks the provider for the session's current state and converges
// on the same conditional ledger transition the webhook path uses, so
// whichever arrives first wins and the other becomes a no-op.
func (uc *CheckoutUseCase) PollStatus(ctx context.Context, sessionID string) (*PaymentStatusOutput, error) {
	tx, err := uc.TxRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	gateway, ok := uc.Gateways[tx.Provider]
	if !ok {
		return nil, ErrUnsupportedProvider
	}

	session, err := gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, &PaymentProviderError{Provider: tx.Provider, Message: err.Error(), Err: err}
	}

	switch session.PaymentState {
	case entity.PaymentStatusPaid:
		if _, err := uc.CompletePayment(ctx, sessionID); err != nil {
			return nil, err
		}
	case entity.PaymentStatusFailed:
		if err := uc.TxRepo.MarkFailedIfPending(ctx, sessionID); err != nil {
			log.Printf("[checkout] mark failed session=%s: %v", sessionID, err)
		}
	}

	tx, err = uc.TxRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &PaymentStatusOutput{
		Status:        tx.Status,
		PaymentStatus: tx.PaymentStatus,
		AmountTotal:   tx.Amount,
		Currency:      tx.Currency,
		Metadata:      tx.Metadata,
	}, nil
}

// CompletePayment performs the idempotent mark-paid transition. Downstream
// side effects (receipt email via the queue) fire only on the call that wins
// the transition; reports from the losing path are no-ops.
func (uc *CheckoutUseCase) CompletePayment(ctx context.Context, sessionID string) (alreadyProcessed bool, err error) {
	alreadyProcessed, err = uc.TxRepo.MarkPaidIfUnprocessed(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if alreadyProcessed {
		return true, nil
	}

	tx, err := uc.TxRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return false, err
	}

	payload := queue.ReceiptPayload{
		SessionID:     tx.SessionID,
		Provider:      tx.Provider,
		PackageID:     tx.PackageID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		CustomerEmail: tx.CustomerEmail,
	}
	if uc.Queue != nil {
		if err := uc.Queue.PublishReceipt(ctx, payload); err != nil {
			// Ledger already flipped; losing the receipt email is preferable
			// to failing the webhook and triggering a provider retry storm.
			log.Printf("[checkout] paid in ledger but receipt publish failed session=%s: %v", sessionID, err)
		}
	}

	log.Printf("[checkout] payment completed provider=%s session=%s package=%s amount=%.2f", tx.Provider, tx.SessionID, tx.PackageID, tx.Amount)
	return false, nil
}

// CaptureOrder finalizes a two-step provider flow (PayPal). A completed
// capture funnels into the same CompletePayment transition.
func (uc *CheckoutUseCase) CaptureOrder(ctx context.Context, provider, orderID string) (*PaymentStatusOutput, error) {
	gateway, ok := uc.Gateways[provider]
	if !ok {
		return nil, ErrUnsupportedProvider
	}
	capturer, ok := gateway.(CaptureGateway)
	if !ok {
		return nil, ErrUnsupportedProvider
	}

	session, err := capturer.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, &PaymentProviderError{Provider: provider, Message: err.Error(), Err: err}
	}

	switch session.PaymentState {
	case entity.PaymentStatusPaid:
		if _, err := uc.CompletePayment(ctx, orderID); err != nil {
			return nil, err
		}
	case entity.PaymentStatusFailed:
		if err := uc.TxRepo.MarkFailedIfPending(ctx, orderID); err != nil {
			log.Printf("[checkout] mark failed order=%s: %v", orderID, err)
		}
	}

	tx, err := uc.TxRepo.FindBySessionID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &PaymentStatusOutput{
		Status:        tx.Status,
		PaymentStatus: tx.PaymentStatus,
		AmountTotal:   tx.Amount,
		Currency:      tx.Currency,
		Metadata:      tx.Metadata,
	}, nil
}
