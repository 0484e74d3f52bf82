package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// Inbound partner event tags.
const (
	EventCouponIssued      = "coupon.issued"
	EventCouponRedeemed    = "coupon.redeemed"
	EventMembershipCreated = "membership.created"
)

// processedCouponTTL bounds how long an applied coupon code is remembered
// for redelivery detection.
const processedCouponTTL = 90 * 24 * time.Hour

// partnerEnvelope is the wire shape of an inbound partner webhook.
type partnerEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// couponIssuedData is the body of a coupon.issued event.
type couponIssuedData struct {
	CouponCode      string  `json:"coupon_code"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountType    string  `json:"discount_type"`
	ValidFor        string  `json:"valid_for"`
	ExpiresAt       *string `json:"expires_at"`
	IssuedBy        string  `json:"issued_by"`
	MinimumPurchase float64 `json:"minimum_purchase"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerName    string  `json:"customer_name"`
}

// PartnerWebhookService implements ports.PartnerWebhookHandler. It verifies
// the HMAC signature over the raw body before any field is trusted, and
// applies coupon issuance idempotently: a redelivered coupon_code is
// acknowledged without a second side effect.
type PartnerWebhookService struct {
	secret    string
	sigSvc    ports.SignatureService
	processed ports.ProcessedMarker
	coupons   ports.CouponStore
	log       zerolog.Logger
}

// NewPartnerWebhookService creates a new PartnerWebhookService.
func NewPartnerWebhookService(
	secret string,
	sigSvc ports.SignatureService,
	processed ports.ProcessedMarker,
	coupons ports.CouponStore,
	log zerolog.Logger,
) *PartnerWebhookService {
	return &PartnerWebhookService{
		secret:    secret,
		sigSvc:    sigSvc,
		processed: processed,
		coupons:   coupons,
		log:       log,
	}
}

// HandleEvent verifies and processes one inbound partner webhook.
// rawBody must be the exact bytes received: the signature is recomputed
// over them, and any mismatch rejects the request before side effects.
func (s *PartnerWebhookService) HandleEvent(ctx context.Context, rawBody []byte, signature string) error {
	if signature == "" {
		return apperror.ErrMissingSignature()
	}
	if !s.sigSvc.Verify(s.secret, rawBody, signature) {
		s.log.Warn().Msg("inbound partner webhook rejected: signature mismatch")
		return apperror.ErrInvalidSignature()
	}

	var env partnerEnvelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return apperror.ErrMalformedWebhook(err)
	}

	switch env.Event {
	case EventCouponIssued:
		return s.processCouponIssued(ctx, env.Data)
	case EventCouponRedeemed:
		s.log.Info().RawJSON("data", env.Data).Msg("partner coupon redeemed")
		return nil
	case EventMembershipCreated:
		s.log.Info().RawJSON("data", env.Data).Msg("partner membership created")
		return nil
	default:
		// Unknown events are acknowledged and ignored.
		s.log.Debug().Str("event", env.Event).Msg("unrecognized partner event ignored")
		return nil
	}
}

// processCouponIssued credits a coupon to a customer record, once.
func (s *PartnerWebhookService) processCouponIssued(ctx context.Context, data json.RawMessage) error {
	var d couponIssuedData
	if err := json.Unmarshal(data, &d); err != nil {
		return apperror.ErrMalformedWebhook(err)
	}
	if d.CustomerEmail == "" || d.CouponCode == "" {
		return apperror.ErrIncompleteCoupon()
	}

	fresh, err := s.processed.MarkIfNew(ctx, d.CouponCode, processedCouponTTL)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("coupon idempotency check: %w", err))
	}
	if !fresh {
		s.log.Info().Str("coupon_code", d.CouponCode).Msg("coupon already processed, redelivery ignored")
		return nil
	}

	coupon := &domain.PartnerCoupon{
		Code:            d.CouponCode,
		DiscountType:    orDefault(d.DiscountType, "percentage"),
		DiscountPercent: orDefaultInt(d.DiscountPercent, 15),
		ValidFor:        orDefault(d.ValidFor, "marketplace_products"),
		IssuedBy:        orDefault(d.IssuedBy, "Gym Management"),
		MinimumPurchase: d.MinimumPurchase,
		CustomerEmail:   d.CustomerEmail,
		CustomerName:    d.CustomerName,
		Active:          true,
		Used:            false,
		CreatedAt:       time.Now().UTC(),
	}
	if d.ExpiresAt != nil {
		if ts, perr := time.Parse(time.RFC3339, *d.ExpiresAt); perr == nil {
			coupon.ExpiresAt = &ts
		}
	}

	if err := s.coupons.Save(ctx, coupon); err != nil {
		// The partner retries on our error response. Release the marker so
		// the redelivery is not mistaken for an already-credited coupon.
		if uerr := s.processed.Unmark(ctx, d.CouponCode); uerr != nil {
			s.log.Error().Err(uerr).Str("coupon_code", d.CouponCode).Msg("coupon marker not released after failed save")
		}
		return apperror.ErrDatabaseError(fmt.Errorf("save partner coupon: %w", err))
	}

	s.log.Info().
		Str("coupon_code", coupon.Code).
		Str("customer_email", coupon.CustomerEmail).
		Int("discount_percent", coupon.DiscountPercent).
		Msg("partner coupon credited")
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
