package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
)

// PaymentService handles Paystack charge webhooks.
type PaymentService struct {
	secret []byte
	orders OrderConfirmer
	marker WebhookMarker
	log    *logger.Logger
}

func NewPaymentService(secret string, orders OrderConfirmer, marker WebhookMarker, log *logger.Logger) *PaymentService {
	return &PaymentService{
		secret: []byte(secret),
		orders: orders,
		marker: marker,
		log:    log,
	}
}

// Sign returns the hex HMAC-SHA512 of body under the webhook secret.
func (s *PaymentService) Sign(body []byte) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *PaymentService) verify(body []byte, signature string) bool {
	if len(s.secret) == 0 || signature == "" {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, s.secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), got)
}

// HandleWebhook verifies the raw body against signature and confirms the
// referenced order on charge.success. Once the signature verifies, only a
// malformed body or a store failure produce an error.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.verify(body, signature) {
		return fmt.Errorf("%w: invalid signature", domain.ErrUnauthorized)
	}

	var event domain.PaystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: malformed event: %v", domain.ErrValidation, err)
	}

	if event.Event != domain.ChargeSuccess {
		s.log.Debug(ctx, "payment_webhook", "ignoring event", slog.String("event", event.Event))
		return nil
	}

	orderID := event.Data.Metadata.OrderID
	if orderID == "" {
		s.log.Warn(ctx, "payment_webhook", "charge without order reference",
			slog.String("reference", event.Data.Reference))
		return nil
	}

	// The reference is marked before confirming. A crash between the two leaves
	// the order pending until the marker expires.
	reference := event.Data.Reference
	if s.marker != nil && reference != "" {
		fresh, err := s.marker.MarkProcessed(ctx, reference)
		switch {
		case err != nil:
			s.log.Error(ctx, "payment_webhook", "failed to record webhook reference", err,
				slog.String("reference", reference))
		case !fresh:
			s.log.Info(ctx, "payment_webhook", "duplicate charge event acknowledged",
				slog.String("reference", reference), slog.String("order_id", orderID))
			return nil
		}
	}

	amount := event.AmountPaid()
	confirmed, err := s.orders.ConfirmPaid(ctx, orderID, amount)
	if err != nil {
		if s.marker != nil && reference != "" {
			if ferr := s.marker.Forget(ctx, reference); ferr != nil {
				s.log.Error(ctx, "payment_webhook", "failed to release webhook reference", ferr,
					slog.String("reference", reference))
			}
		}
		return err
	}

	if confirmed {
		s.log.Info(ctx, "payment_webhook", "order marked as confirmed", slog.String("order_id", orderID))
	} else {
		s.log.Warn(ctx, "payment_webhook", "no pending order matched the paid amount",
			slog.String("order_id", orderID), slog.String("amount", amount.StringFixed(2)))
	}
	return nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
