package paypal

import (
	"encoding/json"
	"fmt"
)

// Event is the part of a PayPal webhook delivery the backend acts on.
type Event struct {
	ID        string
	EventType string
	OrderID   string
}

func ParseEvent(body []byte) (*Event, error) {
	var raw webhookEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding paypal event: %w", err)
	}

	event := &Event{
		ID:        raw.ID,
		EventType: raw.EventType,
		OrderID:   raw.Resource.ID,
	}

	// Capture events reference the order indirectly.
	if raw.Resource.SupplementaryData != nil && raw.Resource.SupplementaryData.RelatedIDs.OrderID != "" {
		event.OrderID = raw.Resource.SupplementaryData.RelatedIDs.OrderID
	}
	return event, nil
}

// CompletionEvent reports whether this delivery should drive the mark-paid
// transition.
func (e *Event) CompletionEvent() bool {
	switch e.EventType {
	case "CHECKOUT.ORDER.APPROVED":
		// Approval is not payment; capture drives completion.
		return false
	case "PAYMENT.CAPTURE.COMPLETED", "CHECKOUT.ORDER.COMPLETED":
		return true
	}
	return false
}

// FailureEvent reports a terminal provider-side failure.
func (e *Event) FailureEvent() bool {
	switch e.EventType {
	case "PAYMENT.CAPTURE.DENIED", "CHECKOUT.ORDER.VOIDED":
		return true
	}
	return false
}
