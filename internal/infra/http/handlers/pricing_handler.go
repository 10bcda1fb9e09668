package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

func (h *PricingHandler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "packageID")

	pages := 0
	if raw := r.URL.Query().Get("pages"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "pages must be an integer", Code: "VALIDATION_ERROR"})
			return
		}
		pages = n
	}

	quote, err := usecase.CalculatePrice(packageID, pages)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

func (h *PricingHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"packages": entity.ListPackages()})
}
