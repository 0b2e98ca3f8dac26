package payment

import (
	"context"
	"strings"

	"hotelier/config"
	"hotelier/models"
	"hotelier/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// StripeGateway implements PaymentGateway. Each request makes exactly one
// call to the processor and is never retried.
type StripeGateway struct {
	Intents IntentCreator
	Bills   BillReader
	Logger  *zap.Logger
}

// NewStripeGateway builds a gateway with its own processor client so no
// process-wide API key is needed.
func NewStripeGateway(cfg config.StripeConfig, bills BillReader, logger *zap.Logger) *StripeGateway {
	sc := client.New(cfg.SecretKey, nil)
	return &StripeGateway{
		Intents: sc.PaymentIntents,
		Bills:   bills,
		Logger:  logger,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResult, error) {
	amount := req.Amount
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	metadata := make(map[string]string, len(req.Metadata)+2)
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	if req.BillID != "" {
		if g.Bills == nil {
			return nil, utils.NewInvalidRequest("billId", "bill lookups are not available")
		}
		bill, err := g.Bills.Get(ctx, req.BillID)
		if err != nil {
			return nil, err
		}
		if req.OwnerID != "" && bill.UserID != req.OwnerID {
			return nil, utils.NewNotFound("bill", req.BillID)
		}
		if bill.Status == models.BillPaid {
			return nil, utils.NewConflict("bill " + bill.ID + " is already paid")
		}
		if currency == "" {
			currency = bill.Currency
		}
		amount = utils.ToMinorUnits(bill.TotalAmount, currency)
		metadata[MetadataBillID] = bill.ID
		if bill.NationalID != "" {
			metadata[MetadataNationalID] = bill.NationalID
		}
	}

	if amount <= 0 {
		return nil, utils.NewInvalidRequest("amount", "must be greater than zero")
	}
	if currency == "" {
		return nil, utils.NewInvalidRequest("currency", "is required")
	}
	if len(currency) != 3 {
		return nil, utils.NewInvalidRequest("currency", "must be a three-letter ISO code")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.Intents.New(params)
	if err != nil {
		g.Logger.Error("Payment processor rejected intent creation",
			zap.Int64("amount", amount),
			zap.String("currency", currency),
			zap.Error(err))
		return nil, utils.NewUpstreamError("failed to create payment intent", err)
	}

	g.Logger.Info("Payment intent created",
		zap.String("paymentIntentID", pi.ID),
		zap.Int64("amount", amount),
		zap.String("currency", currency))

	return &models.PaymentIntentResult{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          amount,
		Currency:        currency,
	}, nil
}
