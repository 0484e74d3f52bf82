package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

const internalAPIKeyHeader = "X-Internal-Api-Key"

// Client implements ports.PaymentGateway against the payment authority's
// HTTP API. Authorize and Refund always return a result: network errors,
// timeouts and non-2xx responses are folded into a failed result so callers
// branch on Success rather than unwinding errors mid-settlement.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a payment authority client from config.
func NewClient(cfg config.PaymentConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "payment_client").Logger(),
	}
}

// Authorize charges the customer for an order.
func (c *Client) Authorize(ctx context.Context, params ports.AuthorizeParams) *domain.PaymentResult {
	result := &domain.PaymentResult{}
	if err := c.post(ctx, "/api/payments/process", params, result); err != nil {
		c.log.Error().Err(err).Int64("order_id", params.OrderID).Msg("payment authorization failed")
		return &domain.PaymentResult{
			Success:      false,
			Amount:       params.Amount,
			Currency:     params.Currency,
			Status:       domain.PaymentStatusFailed,
			ErrorMessage: err.Error(),
		}
	}
	return result
}

// Refund reverses a previously authorized payment.
func (c *Client) Refund(ctx context.Context, params ports.RefundParams) *domain.RefundResult {
	result := &domain.RefundResult{}
	if err := c.post(ctx, "/api/payments/refund", params, result); err != nil {
		c.log.Error().Err(err).Str("transaction_id", params.TransactionID).Msg("refund failed")
		return &domain.RefundResult{
			Success:      false,
			Amount:       params.Amount,
			Status:       domain.PaymentStatusFailed,
			ErrorMessage: err.Error(),
		}
	}
	return result
}

// GetTransaction looks up the authority's record of a transaction. Unlike
// Authorize and Refund it surfaces failures as errors: there is no partial
// result to hand back.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/payments/transaction/"+transactionID, nil)
	if err != nil {
		return nil, fmt.Errorf("building transaction request: %w", err)
	}
	req.Header.Set(internalAPIKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction %s: %w", transactionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("transaction lookup returned status %d", resp.StatusCode)
	}

	var tx domain.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("decoding transaction: %w", err)
	}
	return &tx, nil
}

// post sends body as JSON and decodes the response into out. A non-2xx
// response with a decodable body is NOT an error: the authority reports
// declines as structured results, which are passed through verbatim.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(internalAPIKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payment service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("payment service call")

	if err := json.Unmarshal(respBody, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("payment service returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
