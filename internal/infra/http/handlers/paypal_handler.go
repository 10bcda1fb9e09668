package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/infra/http/middleware"
	"github.com/pjcweb/site-backend/internal/infra/integration/paypal"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type PayPalHandler struct {
	CheckoutUC *usecase.CheckoutUseCase
}

func NewPayPalHandler(uc *usecase.CheckoutUseCase) *PayPalHandler {
	return &PayPalHandler{CheckoutUC: uc}
}

func (h *PayPalHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input usecase.StartCheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}
	input.Provider = entity.ProviderPayPal

	output, err := h.CheckoutUC.StartCheckout(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"order_id":     output.SessionID,
		"approval_url": output.URL,
	})
}

func (h *PayPalHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	output, err := h.CheckoutUC.CaptureOrder(r.Context(), entity.ProviderPayPal, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	if output.PaymentStatus == entity.PaymentStatusPaid {
		middleware.RecordPayment(entity.ProviderPayPal, entity.PaymentStatusPaid)
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *PayPalHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	output, err := h.CheckoutUC.PollStatus(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleWebhook mirrors the Stripe path: completion events funnel into the
// same idempotent transition, so a webhook landing after an explicit capture
// is a no-op.
func (h *PayPalHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "unreadable body", Code: "VALIDATION_ERROR"})
		return
	}

	event, err := paypal.ParseEvent(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid payload", Code: "VALIDATION_ERROR"})
		return
	}

	switch {
	case event.CompletionEvent():
		alreadyProcessed, err := h.CheckoutUC.CompletePayment(r.Context(), event.OrderID)
		if err != nil {
			if errors.Is(err, entity.ErrTransactionNotFound) {
				log.Printf("[webhook] paypal event %s references unknown order %s", event.ID, event.OrderID)
				break
			}
			writeError(w, err)
			return
		}
		if !alreadyProcessed {
			middleware.RecordPayment(entity.ProviderPayPal, entity.PaymentStatusPaid)
		}
	case event.FailureEvent():
		if err := h.CheckoutUC.TxRepo.MarkFailedIfPending(r.Context(), event.OrderID); err != nil {
			log.Printf("[webhook] paypal mark failed order=%s: %v", event.OrderID, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
