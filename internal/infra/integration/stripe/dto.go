package stripe

// Stripe checkout-session responses, reduced to the fields the backend
// reads. These shapes stay inside this package; callers only ever see the
// normalized usecase.PaymentSession.

type checkoutSessionResponse struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`         // open | complete | expired
	PaymentStatus string            `json:"payment_status"` // paid | unpaid | no_payment_required
	AmountTotal   int64             `json:"amount_total"`   // cents
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// webhookEvent is the envelope Stripe posts to the webhook endpoint.
type webhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object checkoutSessionResponse `json:"object"`
	} `json:"data"`
}
