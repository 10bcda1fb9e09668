package paypal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvent(t *testing.T) {
	t.Run("Capture Completed Resolves Order Via Supplementary Data", func(t *testing.T) {
		body := []byte(`{
			"id": "WH-1",
			"event_type": "PAYMENT.CAPTURE.COMPLETED",
			"resource": {
				"id": "CAPTURE-1",
				"supplementary_data": {"related_ids": {"order_id": "ORDER-1"}}
			}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.Equal(t, "ORDER-1", event.OrderID)
		assert.True(t, event.CompletionEvent())
		assert.False(t, event.FailureEvent())
	})

	t.Run("Order Approved Is Not Payment", func(t *testing.T) {
		body := []byte(`{
			"id": "WH-2",
			"event_type": "CHECKOUT.ORDER.APPROVED",
			"resource": {"id": "ORDER-2"}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.Equal(t, "ORDER-2", event.OrderID)
		assert.False(t, event.CompletionEvent())
	})

	t.Run("Capture Denied Is Terminal Failure", func(t *testing.T) {
		body := []byte(`{
			"id": "WH-3",
			"event_type": "PAYMENT.CAPTURE.DENIED",
			"resource": {
				"id": "CAPTURE-3",
				"supplementary_data": {"related_ids": {"order_id": "ORDER-3"}}
			}
		}`)

		event, err := ParseEvent(body)

		assert.NoError(t, err)
		assert.True(t, event.FailureEvent())
		assert.False(t, event.CompletionEvent())
	})

	t.Run("Garbage Body", func(t *testing.T) {
		_, err := ParseEvent([]byte("<xml/>"))

		assert.Error(t, err)
	})
}
