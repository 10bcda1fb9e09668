package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/infra/http/middleware"
	"github.com/pjcweb/site-backend/internal/infra/integration/stripe"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type StripeWebhookHandler struct {
	CheckoutUC    *usecase.CheckoutUseCase
	WebhookSecret string
}

func NewStripeWebhookHandler(uc *usecase.CheckoutUseCase, secret string) *StripeWebhookHandler {
	return &StripeWebhookHandler{CheckoutUC: uc, WebhookSecret: secret}
}

// Handle verifies the signature against the raw body before any decoding.
// Unknown event types are acknowledged so Stripe stops retrying them.
func (h *StripeWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "unreadable body", Code: "VALIDATION_ERROR"})
		return
	}

	if h.WebhookSecret != "" {
		sig := r.Header.Get("Stripe-Signature")
		if err := stripe.VerifySignature(body, sig, h.WebhookSecret, time.Now()); err != nil {
			middleware.RecordIntegrationError("stripe")
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid signature", Code: "INVALID_SIGNATURE"})
			return
		}
	}

	event, err := stripe.ParseEvent(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid payload", Code: "VALIDATION_ERROR"})
		return
	}

	if !event.CompletionEvent() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
		return
	}

	alreadyProcessed, err := h.CheckoutUC.CompletePayment(r.Context(), event.SessionID)
	if err != nil {
		// A delivery for a session we never opened is not retryable; 200 it.
		if errors.Is(err, entity.ErrTransactionNotFound) {
			log.Printf("[webhook] stripe event %s references unknown session %s", event.ID, event.SessionID)
			writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
			return
		}
		writeError(w, err)
		return
	}

	if !alreadyProcessed {
		middleware.RecordPayment(entity.ProviderStripe, entity.PaymentStatusPaid)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
