package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SignatureHeader carries the hex HMAC-SHA256 digest of the request body.
const SignatureHeader = "x-signature"

// EventOrderCompleted is the outbound partner event tag.
const EventOrderCompleted = "order.completed"

// DeliveryError describes why a webhook dispatch failed. It never leaves
// the notifier: the caller of Dispatch cannot observe it, it is only
// logged. A failed dispatch is permanently lost.
type DeliveryError struct {
	Stage      string // "marshal", "request", "network", "status"
	StatusCode int    // set for "status"
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("webhook delivery failed at %s (HTTP %d): %v", e.Stage, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("webhook delivery failed at %s: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// NotifierService implements ports.EventNotifier. It awards a loyalty
// coupon in the partner system when a settled order clears a discount
// tier, via a signed fire-and-forget webhook.
type NotifierService struct {
	webhookURL string
	secret     string
	prefix     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
	now        func() time.Time
}

// NewNotifierService creates a new NotifierService.
func NewNotifierService(
	webhookURL string,
	secret string,
	couponPrefix string,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	log zerolog.Logger,
) *NotifierService {
	return &NotifierService{
		webhookURL: webhookURL,
		secret:     secret,
		prefix:     couponPrefix,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
		now:        time.Now,
	}
}

// Dispatch builds, signs and sends the order-completed webhook for a
// settled order. Orders under the lowest tier send nothing. Delivery runs
// off the caller's path: any failure is logged and swallowed, so order
// creation can never fail or roll back because the partner was unreachable.
func (s *NotifierService) Dispatch(order ports.SettledOrder) {
	discount := domain.DiscountFor(order.TotalAmount)
	if discount == 0 {
		s.log.Info().
			Int64("order_id", order.OrderID).
			Float64("total_amount", order.TotalAmount).
			Msg("order does not qualify for a partner coupon, webhook skipped")
		return
	}

	payload := s.buildPayload(order, discount)
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Int64("order_id", order.OrderID).Msg("webhook payload marshal failed")
		return
	}
	// The signature covers these exact bytes; the body must be sent verbatim.
	signature := s.sigSvc.Sign(s.secret, body)

	go func() {
		if derr := s.deliver(body, signature); derr != nil {
			s.log.Error().Err(derr).
				Int64("order_id", order.OrderID).
				Str("coupon_code", payload.Data.CouponEarned.Code).
				Msg("partner webhook lost")
			return
		}
		s.log.Info().
			Int64("order_id", order.OrderID).
			Str("coupon_code", payload.Data.CouponEarned.Code).
			Int("discount", discount).
			Msg("partner webhook delivered")
	}()
}

// buildPayload assembles the signed envelope for one qualifying order.
func (s *NotifierService) buildPayload(order ports.SettledOrder, discount int) domain.WebhookPayload {
	now := s.now().UTC()

	return domain.WebhookPayload{
		Event: EventOrderCompleted,
		Data: domain.WebhookData{
			OrderID:       order.OrderID,
			CustomerEmail: order.CustomerEmail,
			CustomerName:  order.CustomerName,
			TotalAmount:   order.TotalAmount,
			CouponEarned: domain.Coupon{
				Code:          s.couponCode(order.OrderID, now),
				DiscountType:  "percentage",
				DiscountValue: discount,
				ValidFrom:     now.Format(time.RFC3339),
				ValidUntil:    now.Add(domain.CouponValidity).Format(time.RFC3339),
				Description: fmt.Sprintf("%d%% gym discount earned with a $%.2f marketplace purchase",
					discount, order.TotalAmount),
			},
			Timestamp: now.Format(time.RFC3339),
		},
	}
}

// couponCode builds "<PREFIX>-<order_id>-<unix_millis>". The order id
// component keeps codes unique even within the same millisecond.
func (s *NotifierService) couponCode(orderID int64, now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", s.prefix, orderID, now.UnixMilli())
}

// deliver performs the single POST. No retry: an ambiguous failure must
// not risk a duplicate coupon, so at-most-once is deliberate.
func (s *NotifierService) deliver(body []byte, signature string) *DeliveryError {
	req, err := http.NewRequest(http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Stage: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, signature)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &DeliveryError{Stage: "network", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DeliveryError{
			Stage:      "status",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("partner returned %s", resp.Status),
		}
	}
	return nil
}
