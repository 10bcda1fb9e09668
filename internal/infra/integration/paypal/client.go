package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/usecase"
)

type Client struct {
	baseURL  string
	clientID string
	secret   string
	http     *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(clientID, secret, baseURL string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		secret:   secret,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// token returns a cached OAuth2 client-credentials token, refreshing a
// minute before expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal token rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decoding paypal token: %w", err)
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// CreateSession creates an order and returns its approval link as the
// redirect URL. The order id doubles as the ledger session id.
func (c *Client) CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*usecase.PaymentSession, error) {
	payload := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: input.PackageID,
			Description: input.Description,
			CustomID:    input.Metadata["package_id"],
			Amount: amount{
				CurrencyCode: strings.ToUpper(input.Currency),
				Value:        fmt.Sprintf("%.2f", input.Amount),
			},
		}},
		ApplicationContext: &applicationCtx{
			ReturnURL: input.SuccessURL,
			CancelURL: input.CancelURL,
			BrandName: "PJC Web Designs",
		},
	}

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", payload, &resp); err != nil {
		return nil, err
	}
	return c.normalize(&resp), nil
}

func (c *Client) GetSession(ctx context.Context, orderID string) (*usecase.PaymentSession, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+url.PathEscape(orderID), nil, &resp); err != nil {
		return nil, err
	}
	return c.normalize(&resp), nil
}

// CaptureOrder finalizes an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*usecase.PaymentSession, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return c.normalize(&resp), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling paypal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("paypal request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("paypal rejected request (status %d): %s %s", resp.StatusCode, apiErr.Name, apiErr.Message)
		}
		return fmt.Errorf("paypal rejected request (status %d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding paypal response: %w", err)
	}
	return nil
}

func (c *Client) normalize(resp *orderResponse) *usecase.PaymentSession {
	session := &usecase.PaymentSession{
		Provider:       entity.ProviderPayPal,
		SessionID:      resp.ID,
		ProviderStatus: resp.Status,
		PaymentState:   entity.PaymentStatusPending,
	}

	for _, l := range resp.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			session.RedirectURL = l.Href
			break
		}
	}

	if len(resp.PurchaseUnits) > 0 {
		unit := resp.PurchaseUnits[0]
		session.Currency = strings.ToLower(unit.Amount.CurrencyCode)
		fmt.Sscanf(unit.Amount.Value, "%f", &session.AmountTotal)
		if unit.CustomID != "" {
			session.Metadata = map[string]string{"package_id": unit.CustomID}
		}

		if unit.Payments != nil {
			for _, capture := range unit.Payments.Captures {
				switch capture.Status {
				case "COMPLETED":
					session.PaymentState = entity.PaymentStatusPaid
				case "DECLINED", "FAILED":
					session.PaymentState = entity.PaymentStatusFailed
				}
			}
		}
	}

	switch resp.Status {
	case "COMPLETED":
		session.PaymentState = entity.PaymentStatusPaid
	case "VOIDED":
		session.PaymentState = entity.PaymentStatusFailed
	}

	return session
}
