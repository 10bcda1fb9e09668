package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/usecase"
)

const defaultBaseURL = "https://api.stripe.com"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateSession creates a hosted checkout session. Stripe's API is
// form-encoded, amounts in cents.
func (c *Client) CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*usecase.PaymentSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", input.SuccessURL)
	form.Set("cancel_url", input.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", input.Currency)
	form.Set("line_items[0][price_data][product_data][name]", input.Description)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(toCents(input.Amount), 10))
	if input.CustomerEmail != "" {
		form.Set("customer_email", input.CustomerEmail)
	}
	for k, v := range input.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var resp checkoutSessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &resp); err != nil {
		return nil, err
	}
	return normalize(&resp), nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*usecase.PaymentSession, error) {
	var resp checkoutSessionResponse
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil, &resp); err != nil {
		return nil, err
	}
	return normalize(&resp), nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("stripe rejected request (status %d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("stripe rejected request (status %d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding stripe response: %w", err)
	}
	return nil
}

func normalize(resp *checkoutSessionResponse) *usecase.PaymentSession {
	state := entity.PaymentStatusPending
	switch {
	case resp.PaymentStatus == "paid":
		state = entity.PaymentStatusPaid
	case resp.Status == "expired":
		state = entity.PaymentStatusFailed
	}

	return &usecase.PaymentSession{
		Provider:       entity.ProviderStripe,
		SessionID:      resp.ID,
		RedirectURL:    resp.URL,
		ProviderStatus: resp.Status,
		PaymentState:   state,
		AmountTotal:    fromCents(resp.AmountTotal),
		Currency:       resp.Currency,
		Metadata:       resp.Metadata,
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
