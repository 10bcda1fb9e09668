package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors onto the HTTP surface in one place so every
// handler reports failures the same way.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	var providerErr *usecase.PaymentProviderError
	if errors.As(err, &providerErr) {
		log.Printf("[http] provider error: %v", providerErr)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: providerErr.Error(), Code: "PROVIDER_ERROR"})
		return
	}

	switch {
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrTransactionNotFound),
		errors.Is(err, entity.ErrBlogPostNotFound),
		errors.Is(err, entity.ErrSocialPostNotFound),
		errors.Is(err, entity.ErrAffiliateLinkNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Code: "NOT_FOUND"})
	case errors.Is(err, entity.ErrPackageNotFound),
		errors.Is(err, entity.ErrPageCountExceeded),
		errors.Is(err, usecase.ErrOriginNotAllowed),
		errors.Is(err, usecase.ErrUnsupportedProvider):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Code: "VALIDATION_ERROR"})
	default:
		log.Printf("[http] internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error", Code: "INTERNAL"})
	}
}
