package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/infra/integration/stripe"
	"github.com/pjcweb/site-backend/internal/infra/queue"
	"github.com/pjcweb/site-backend/internal/usecase"
)

const testWebhookSecret = "whsec_handler_test"

// MockTransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Open(ctx context.Context, tx *entity.PaymentTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentTransaction), args.Error(1)
}

func (m *MockTransactionRepository) MarkPaidIfUnprocessed(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) MarkFailedIfPending(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishReceipt(ctx context.Context, payload queue.ReceiptPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newWebhookFixture() (*StripeWebhookHandler, *MockTransactionRepository, *MockQueueProducer) {
	txRepo := new(MockTransactionRepository)
	producer := new(MockQueueProducer)
	uc := usecase.NewCheckoutUseCase(txRepo, map[string]usecase.PaymentGateway{}, producer, nil)
	return NewStripeWebhookHandler(uc, testWebhookSecret), txRepo, producer
}

func postWebhook(handler *StripeWebhookHandler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestStripeWebhookHandler(t *testing.T) {
	completedBody := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_1", "payment_status": "paid"}}
	}`)

	paidTx := &entity.PaymentTransaction{
		SessionID:     "cs_test_1",
		Provider:      entity.ProviderStripe,
		PackageID:     "starter",
		Amount:        325.0,
		Currency:      "usd",
		PaymentStatus: entity.PaymentStatusPaid,
		Status:        entity.TxStatusCompleted,
		CustomerEmail: "ana@example.com",
	}

	t.Run("Signed Completion Marks Paid", func(t *testing.T) {
		handler, txRepo, producer := newWebhookFixture()
		txRepo.On("MarkPaidIfUnprocessed", mock.Anything, "cs_test_1").Return(false, nil)
		txRepo.On("FindBySessionID", mock.Anything, "cs_test_1").Return(paidTx, nil)
		producer.On("PublishReceipt", mock.Anything, mock.Anything).Return(nil)

		rec := postWebhook(handler, completedBody, stripe.Sign(completedBody, testWebhookSecret, time.Now()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
		txRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Delivery Acknowledged Without Side Effects", func(t *testing.T) {
		handler, txRepo, producer := newWebhookFixture()
		txRepo.On("MarkPaidIfUnprocessed", mock.Anything, "cs_test_1").Return(true, nil)

		rec := postWebhook(handler, completedBody, stripe.Sign(completedBody, testWebhookSecret, time.Now()))

		assert.Equal(t, http.StatusOK, rec.Code)
		producer.AssertNotCalled(t, "PublishReceipt")
	})

	t.Run("Bad Signature Rejected Before Ledger", func(t *testing.T) {
		handler, txRepo, _ := newWebhookFixture()

		rec := postWebhook(handler, completedBody, stripe.Sign(completedBody, "whsec_wrong", time.Now()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		txRepo.AssertNotCalled(t, "MarkPaidIfUnprocessed")
	})

	t.Run("Missing Signature Rejected", func(t *testing.T) {
		handler, txRepo, _ := newWebhookFixture()

		rec := postWebhook(handler, completedBody, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		txRepo.AssertNotCalled(t, "MarkPaidIfUnprocessed")
	})

	t.Run("Unrelated Event Acknowledged", func(t *testing.T) {
		handler, txRepo, _ := newWebhookFixture()
		body := []byte(`{"id":"evt_9","type":"invoice.created","data":{"object":{"id":"in_1"}}}`)

		rec := postWebhook(handler, body, stripe.Sign(body, testWebhookSecret, time.Now()))

		assert.Equal(t, http.StatusOK, rec.Code)
		txRepo.AssertNotCalled(t, "MarkPaidIfUnprocessed")
	})

	t.Run("Unknown Session Acknowledged To Stop Retries", func(t *testing.T) {
		handler, txRepo, _ := newWebhookFixture()
		txRepo.On("MarkPaidIfUnprocessed", mock.Anything, "cs_test_1").Return(false, entity.ErrTransactionNotFound)

		rec := postWebhook(handler, completedBody, stripe.Sign(completedBody, testWebhookSecret, time.Now()))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
