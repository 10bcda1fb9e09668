package paypal

// PayPal Orders v2 request/response shapes, private to this package.

type createOrderRequest struct {
	Intent             string          `json:"intent"`
	PurchaseUnits      []purchaseUnit  `json:"purchase_units"`
	ApplicationContext *applicationCtx `json:"application_context,omitempty"`
}

type purchaseUnit struct {
	ReferenceID string `json:"reference_id,omitempty"`
	Description string `json:"description,omitempty"`
	CustomID    string `json:"custom_id,omitempty"`
	Amount      amount `json:"amount"`
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type applicationCtx struct {
	ReturnURL string `json:"return_url,omitempty"`
	CancelURL string `json:"cancel_url,omitempty"`
	BrandName string `json:"brand_name,omitempty"`
}

type orderResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"` // CREATED, APPROVED, COMPLETED, VOIDED
	PurchaseUnits []struct {
		ReferenceID string `json:"reference_id"`
		CustomID    string `json:"custom_id"`
		Amount      amount `json:"amount"`
		Payments    *struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"` // COMPLETED, DECLINED, PENDING
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
	Payer *struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
	Links []link `json:"links"`
}

type link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"` // approve, self, capture
	Method string `json:"method"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details []struct {
		Issue       string `json:"issue"`
		Description string `json:"description"`
	} `json:"details"`
}

// webhookEvent is the envelope PayPal posts to the webhook endpoint.
type webhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		// For capture events the order id lives here.
		SupplementaryData *struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
	} `json:"resource"`
}
