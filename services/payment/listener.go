package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotelier/config"
	paymentRepo "hotelier/database/repository/payment"
	"hotelier/models"
	"hotelier/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const eventPaymentIntentSucceeded = "payment_intent.succeeded"

// WebhookListener implements ConfirmationListener.
type WebhookListener struct {
	Payments  paymentRepo.PaymentRepository
	Bills     BillSettler
	Cache     EventCache
	Secret    string
	Tolerance time.Duration
	Logger    *zap.Logger
}

// NewWebhookListener wires a listener. bills and cache may be nil.
func NewWebhookListener(cfg config.StripeConfig, payments paymentRepo.PaymentRepository, bills BillSettler, cache EventCache, logger *zap.Logger) *WebhookListener {
	return &WebhookListener{
		Payments:  payments,
		Bills:     bills,
		Cache:     cache,
		Secret:    cfg.WebhookSecret,
		Tolerance: cfg.WebhookTolerance,
		Logger:    logger,
	}
}

// HandleEvent verifies, parses and applies one webhook delivery. A nil error
// means the delivery may be acknowledged. Storage failures are returned so
// the processor redelivers.
func (l *WebhookListener) HandleEvent(ctx context.Context, payload []byte, signatureHeader string) (Outcome, error) {
	if err := webhook.ValidatePayloadWithTolerance(payload, signatureHeader, l.Secret, l.Tolerance); err != nil {
		l.Logger.Warn("Rejected webhook with invalid signature", zap.Error(err))
		return "", utils.NewSignatureInvalid(err)
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		l.Logger.Warn("Rejected malformed webhook event", zap.Error(err))
		return "", utils.NewMalformedEvent("event body is not valid JSON", err)
	}
	if event.ID == "" || event.Type == "" {
		l.Logger.Warn("Rejected webhook event without id or type")
		return "", utils.NewMalformedEvent("event id and type are required", nil)
	}

	if event.Type != eventPaymentIntentSucceeded {
		l.Logger.Debug("Ignoring webhook event",
			zap.String("eventID", event.ID),
			zap.String("type", string(event.Type)))
		return OutcomeIgnored, nil
	}

	pi, err := decodePaymentIntent(event)
	if err != nil {
		l.Logger.Warn("Rejected payment event", zap.String("eventID", event.ID), zap.Error(err))
		return "", err
	}

	if l.seen(ctx, event.ID) {
		l.Logger.Info("Webhook event already processed",
			zap.String("eventID", event.ID),
			zap.String("paymentIntentID", pi.ID))
		return OutcomeDuplicate, nil
	}

	payment := paymentFromIntent(event.ID, pi)
	created, err := l.Payments.InsertIfAbsent(ctx, payment)
	if err != nil {
		l.Logger.Error("Failed to record payment",
			zap.String("eventID", event.ID),
			zap.String("paymentIntentID", pi.ID),
			zap.Error(err))
		return "", fmt.Errorf("record payment %s: %w", pi.ID, err)
	}

	outcome := OutcomeRecorded
	if created {
		l.Logger.Info("Payment recorded",
			zap.String("paymentIntentID", payment.PaymentIntentID),
			zap.Float64("amount", utils.FromMinorUnits(payment.Amount, payment.Currency)),
			zap.String("currency", payment.Currency))
	} else {
		l.Logger.Info("Payment already recorded", zap.String("paymentIntentID", pi.ID))
		outcome = OutcomeDuplicate
	}

	// Redeliveries settle again, so a settlement that failed earlier is
	// finished by the processor's retry. MarkPaid is idempotent.
	if err := l.settle(ctx, payment); err != nil {
		return "", err
	}

	if l.Cache != nil {
		if err := l.Cache.MarkSeen(ctx, event.ID); err != nil {
			l.Logger.Warn("Failed to cache processed event", zap.String("eventID", event.ID), zap.Error(err))
		}
	}
	return outcome, nil
}

// settle marks the payment's bill as paid. A bill that no longer exists is
// logged and skipped; any other failure is returned so the event is not
// acknowledged.
func (l *WebhookListener) settle(ctx context.Context, payment *models.Payment) error {
	if payment.BillID == "" || l.Bills == nil {
		return nil
	}
	err := l.Bills.MarkPaid(ctx, payment.BillID)
	switch {
	case err == nil:
		return nil
	case utils.IsKind(err, utils.KindNotFound):
		l.Logger.Warn("Paid bill no longer exists",
			zap.String("billID", payment.BillID),
			zap.String("paymentIntentID", payment.PaymentIntentID))
		return nil
	default:
		l.Logger.Error("Failed to mark bill paid",
			zap.String("billID", payment.BillID),
			zap.String("paymentIntentID", payment.PaymentIntentID),
			zap.Error(err))
		return fmt.Errorf("settle bill %s: %w", payment.BillID, err)
	}
}

// seen consults the cache. A cache error counts as a miss; the unique index
// on payments still prevents duplicates.
func (l *WebhookListener) seen(ctx context.Context, eventID string) bool {
	if l.Cache == nil {
		return false
	}
	ok, err := l.Cache.Seen(ctx, eventID)
	if err != nil {
		l.Logger.Warn("Processed-event cache unavailable", zap.String("eventID", eventID), zap.Error(err))
		return false
	}
	return ok
}

func decodePaymentIntent(event stripe.Event) (*stripe.PaymentIntent, error) {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, utils.NewMalformedEvent("event has no data object", nil)
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, utils.NewMalformedEvent("event data is not a payment intent", err)
	}
	if pi.ID == "" {
		return nil, utils.NewMalformedEvent("payment intent id is missing", nil)
	}
	return &pi, nil
}

func paymentFromIntent(eventID string, pi *stripe.PaymentIntent) *models.Payment {
	amount := pi.AmountReceived
	if amount == 0 {
		amount = pi.Amount
	}
	return &models.Payment{
		PaymentIntentID: pi.ID,
		EventID:         eventID,
		Amount:          amount,
		Currency:        string(pi.Currency),
		Status:          string(pi.Status),
		NationalID:      pi.Metadata[MetadataNationalID],
		BillID:          pi.Metadata[MetadataBillID],
		CreatedAt:       time.Now().UTC(),
	}
}
