// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rentfolio/backend/internal/application/adapter"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// gatewayClient implements adapter.PaymentGateway against the payment
// provider's REST API. Webhook signatures are hex-encoded HMAC-SHA256 over
// the raw request body.
type gatewayClient struct {
	baseURL       string
	apiKey        string
	webhookSecret []byte
	httpClient    *http.Client
}

// NewGatewayClient creates a new payment gateway client.
func NewGatewayClient(baseURL, apiKey, webhookSecret string) adapter.PaymentGateway {
	return &gatewayClient{
		baseURL:       baseURL,
		apiKey:        apiKey,
		webhookSecret: []byte(webhookSecret),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type checkoutSessionRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
}

type checkoutSessionResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type refundRequest struct {
	SessionID   string `json:"session_id"`
	AmountCents int64  `json:"amount_cents"`
}

type webhookPayload struct {
	Type        string    `json:"type"`
	SessionID   string    `json:"session_id"`
	AmountCents int64     `json:"amount_cents"`
	FeeCents    int64     `json:"fee_cents"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCheckoutSession creates a hosted checkout session.
func (c *gatewayClient) CreateCheckoutSession(ctx context.Context, input adapter.CreateCheckoutInput) (*adapter.CheckoutSession, error) {
	reqBody := checkoutSessionRequest{
		AmountCents: input.Amount.Cents(),
		Currency:    "usd",
		Description: input.Description,
		Reference:   input.Reference,
	}

	var respBody checkoutSessionResponse
	if err := c.post(ctx, "/v1/checkout/sessions", reqBody, &respBody); err != nil {
		return nil, err
	}

	return &adapter.CheckoutSession{
		ID:        respBody.ID,
		URL:       respBody.URL,
		ExpiresAt: respBody.ExpiresAt,
	}, nil
}

// VerifyWebhook checks the HMAC signature of a raw webhook body and decodes
// the event.
func (c *gatewayClient) VerifyWebhook(body []byte, signature string) (*adapter.WebhookEvent, error) {
	mac := hmac.New(sha256.New, c.webhookSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return nil, domainerror.ErrWebhookBadSignature
	}
	expectedBytes, _ := hex.DecodeString(expected)
	if !hmac.Equal(provided, expectedBytes) {
		return nil, domainerror.ErrWebhookBadSignature
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	return &adapter.WebhookEvent{
		Type:      payload.Type,
		SessionID: payload.SessionID,
		Amount:    valueobject.MoneyFromCents(payload.AmountCents),
		Fee:       valueobject.MoneyFromCents(payload.FeeCents),
		Reference: payload.Reference,
		CreatedAt: payload.CreatedAt,
	}, nil
}

// IssueRefund asks the gateway to return money for a settled session.
func (c *gatewayClient) IssueRefund(ctx context.Context, sessionID string, amount valueobject.Money) error {
	reqBody := refundRequest{
		SessionID:   sessionID,
		AmountCents: amount.Cents(),
	}
	return c.post(ctx, "/v1/refunds", reqBody, nil)
}

// post sends an authenticated JSON request and decodes the response into out
// when out is non-nil.
func (c *gatewayClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", domainerror.ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("gateway rejected request: status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}
