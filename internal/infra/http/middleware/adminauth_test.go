package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := AdminAuth("secret-key")(next)

	t.Run("Correct Key Passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		req.Header.Set("X-Admin-Key", "secret-key")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong Key Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		req.Header.Set("X-Admin-Key", "guess")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing Key Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unset Admin Key Locks Admin Routes", func(t *testing.T) {
		locked := AdminAuth("")(next)
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		req.Header.Set("X-Admin-Key", "")
		rec := httptest.NewRecorder()
		locked.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
