package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type CheckoutHandler struct {
	CheckoutUC *usecase.CheckoutUseCase
}

func NewCheckoutHandler(uc *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{CheckoutUC: uc}
}

func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input usecase.StartCheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON", Code: "VALIDATION_ERROR"})
		return
	}

	output, err := h.CheckoutUC.StartCheckout(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CheckoutHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "session_id is required", Code: "VALIDATION_ERROR"})
		return
	}

	output, err := h.CheckoutUC.PollStatus(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
