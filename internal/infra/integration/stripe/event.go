package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/pjcweb/site-backend/internal/entity"
)

// Event is the slice of a webhook delivery the rest of the backend cares
// about: which session, and whether it is now paid.
type Event struct {
	ID           string
	Type         string
	SessionID    string
	PaymentState string
}

func ParseEvent(body []byte) (*Event, error) {
	var raw webhookEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding stripe event: %w", err)
	}

	state := entity.PaymentStatusPending
	if raw.Data.Object.PaymentStatus == "paid" {
		state = entity.PaymentStatusPaid
	}

	return &Event{
		ID:           raw.ID,
		Type:         raw.Type,
		SessionID:    raw.Data.Object.ID,
		PaymentState: state,
	}, nil
}

// CompletionEvent reports whether this delivery should drive the mark-paid
// transition.
func (e *Event) CompletionEvent() bool {
	switch e.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		return e.PaymentState == entity.PaymentStatusPaid
	}
	return false
}
