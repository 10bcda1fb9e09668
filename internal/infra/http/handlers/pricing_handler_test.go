package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/pjcweb/site-backend/internal/entity"
)

func newPricingRouter() *chi.Mux {
	handler := NewPricingHandler()
	r := chi.NewRouter()
	r.Get("/api/calculate-price/{packageID}", handler.CalculatePrice)
	r.Get("/api/packages", handler.ListPackages)
	return r
}

func TestCalculatePriceEndpoint(t *testing.T) {
	r := newPricingRouter()

	t.Run("Starter With Extra Pages", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calculate-price/starter?pages=5", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var quote entity.PriceQuote
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
		assert.Equal(t, 537.0, quote.FinalPrice)
		assert.Equal(t, 2, quote.AdditionalPages)
	})

	t.Run("No Pages Param Uses Included Count", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calculate-price/growth", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var quote entity.PriceQuote
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
		assert.Equal(t, 747.0, quote.FinalPrice)
		assert.Equal(t, 6, quote.TotalPages)
	})

	t.Run("Pages Over Maximum", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calculate-price/starter?pages=11", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Non Numeric Pages", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calculate-price/starter?pages=many", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown Package Is A Client Error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calculate-price/enterprise", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
	})
}

func TestListPackagesEndpoint(t *testing.T) {
	r := newPricingRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Packages []entity.Package `json:"packages"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Packages, 5)
	assert.Equal(t, "starter", body.Packages[0].ID)
}
