package stripe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/pjcweb/site-backend/internal/entity"
)

const testSecret = "whsec_test_secret"

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()

	t.Run("Valid Signature", func(t *testing.T) {
		header := Sign(body, testSecret, now)

		assert.NoError(t, VerifySignature(body, header, testSecret, now))
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		header := Sign(body, "whsec_other", now)

		assert.ErrorIs(t, VerifySignature(body, header, testSecret, now), ErrInvalidSignature)
	})

	t.Run("Tampered Body", func(t *testing.T) {
		header := Sign(body, testSecret, now)
		tampered := []byte(`{"id":"evt_1","type":"checkout.session.expired"}`)

		assert.ErrorIs(t, VerifySignature(tampered, header, testSecret, now), ErrInvalidSignature)
	})

	t.Run("Stale Timestamp", func(t *testing.T) {
		header := Sign(body, testSecret, now.Add(-6*time.Minute))

		assert.ErrorIs(t, VerifySignature(body, header, testSecret, now), ErrInvalidSignature)
	})

	t.Run("Future Timestamp", func(t *testing.T) {
		header := Sign(body, testSecret, now.Add(6*time.Minute))

		assert.ErrorIs(t, VerifySignature(body, header, testSecret, now), ErrInvalidSignature)
	})

	t.Run("Within Tolerance", func(t *testing.T) {
		header := Sign(body, testSecret, now.Add(-4*time.Minute))

		assert.NoError(t, VerifySignature(body, header, testSecret, now))
	})

	t.Run("Missing Header", func(t *testing.T) {
		assert.ErrorIs(t, VerifySignature(body, "", testSecret, now), ErrInvalidSignature)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		assert.ErrorIs(t, VerifySignature(body, "t=abc", testSecret, now), ErrInvalidSignature)
		assert.ErrorIs(t, VerifySignature(body, "v1=deadbeef", testSecret, now), ErrInvalidSignature)
	})
}

func TestParseEvent(t *testing.T) {
	t.Run("Completed Session", func(t *testing.T) {
		body := []byte(`{
			"id": "evt_1",
			"type": "checkout.session.completed",
			"data": {"object": {"id": "cs_test_1", "payment_status": "paid"}}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_1", event.SessionID)
		assert.Equal(t, entity.PaymentStatusPaid, event.PaymentState)
		assert.True(t, event.CompletionEvent())
	})

	t.Run("Completed But Unpaid Is Not Completion", func(t *testing.T) {
		body := []byte(`{
			"id": "evt_2",
			"type": "checkout.session.completed",
			"data": {"object": {"id": "cs_test_2", "payment_status": "unpaid"}}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.False(t, event.CompletionEvent())
	})

	t.Run("Async Payment Succeeded", func(t *testing.T) {
		body := []byte(`{
			"id": "evt_3",
			"type": "checkout.session.async_payment_succeeded",
			"data": {"object": {"id": "cs_test_3", "payment_status": "paid"}}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.True(t, event.CompletionEvent())
	})

	t.Run("Unrelated Event Type", func(t *testing.T) {
		body := []byte(`{
			"id": "evt_4",
			"type": "invoice.created",
			"data": {"object": {"id": "in_1", "payment_status": "paid"}}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.False(t, event.CompletionEvent())
	})

	t.Run("Garbage Body", func(t *testing.T) {
		_, err := ParseEvent([]byte("not json"))

		assert.Error(t, err)
	})
}
