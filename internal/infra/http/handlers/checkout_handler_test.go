package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/usecase"
)

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*usecase.PaymentSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PaymentSession), args.Error(1)
}

func (m *MockPaymentGateway) GetSession(ctx context.Context, sessionID string) (*usecase.PaymentSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PaymentSession), args.Error(1)
}

func newCheckoutHandlerFixture() (*CheckoutHandler, *MockTransactionRepository, *MockPaymentGateway) {
	txRepo := new(MockTransactionRepository)
	gateway := new(MockPaymentGateway)
	producer := new(MockQueueProducer)
	uc := usecase.NewCheckoutUseCase(txRepo, map[string]usecase.PaymentGateway{entity.ProviderStripe: gateway}, producer, nil)
	return NewCheckoutHandler(uc), txRepo, gateway
}

func postCheckout(handler *CheckoutHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/session", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateSession(rec, req)
	return rec
}

func TestCreateSessionEndpoint(t *testing.T) {
	t.Run("Returns Redirect URL", func(t *testing.T) {
		handler, txRepo, gateway := newCheckoutHandlerFixture()
		gateway.On("CreateSession", mock.Anything, mock.Anything).Return(&usecase.PaymentSession{
			Provider:    entity.ProviderStripe,
			SessionID:   "cs_test_1",
			RedirectURL: "https://checkout.stripe.com/pay/cs_test_1",
		}, nil)
		txRepo.On("Open", mock.Anything, mock.Anything).Return(nil)

		rec := postCheckout(handler, `{"package_id":"starter","total_pages":5,"origin_url":"https://pjcwebdesigns.solutions"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var output usecase.StartCheckoutOutput
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
		assert.Equal(t, "cs_test_1", output.SessionID)
	})

	t.Run("Provider Failure Returns 500 With Upstream Text", func(t *testing.T) {
		handler, txRepo, gateway := newCheckoutHandlerFixture()
		gateway.On("CreateSession", mock.Anything, mock.Anything).
			Return(nil, errors.New("rate limit exceeded"))

		rec := postCheckout(handler, `{"package_id":"starter","origin_url":"https://pjcwebdesigns.solutions"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body errorBody
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "PROVIDER_ERROR", body.Code)
		assert.Contains(t, body.Error, "rate limit exceeded")
		txRepo.AssertNotCalled(t, "Open")
	})

	t.Run("Unknown Package Returns 400", func(t *testing.T) {
		handler, _, gateway := newCheckoutHandlerFixture()

		rec := postCheckout(handler, `{"package_id":"enterprise","origin_url":"https://pjcwebdesigns.solutions"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		gateway.AssertNotCalled(t, "CreateSession")
	})

	t.Run("Invalid JSON Rejected", func(t *testing.T) {
		handler, _, _ := newCheckoutHandlerFixture()

		rec := postCheckout(handler, `{"package_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
