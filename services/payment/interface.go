// Package payment creates payment intents with the processor and records
// confirmed payments from its signed webhook events.
package payment

import (
	"context"

	"hotelier/models"

	"github.com/stripe/stripe-go/v76"
)

// IntentCreator is the part of the processor SDK the gateway uses. It is
// satisfied by *paymentintent.Client.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// BillReader resolves a bill when an intent is requested for it.
type BillReader interface {
	Get(ctx context.Context, id string) (*models.Bill, error)
}

// BillSettler marks bills as paid once their payment is recorded.
type BillSettler interface {
	MarkPaid(ctx context.Context, id string) error
}

// EventCache remembers webhook events whose payment is already stored so
// redeliveries can skip the database.
type EventCache interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	MarkSeen(ctx context.Context, eventID string) error
}

// PaymentGateway requests charge authorizations from the processor.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResult, error)
}

// ConfirmationListener consumes processor webhook deliveries.
type ConfirmationListener interface {
	HandleEvent(ctx context.Context, payload []byte, signatureHeader string) (Outcome, error)
}

// Outcome says what HandleEvent did with an accepted event.
type Outcome string

const (
	OutcomeRecorded  Outcome = "recorded"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)

// Metadata keys attached to payment intents and read back from webhook events.
const (
	MetadataBillID     = "billId"
	MetadataNationalID = "nationalId"
)
