package paymentRepo

import (
	"context"

	"hotelier/models"
)

// PaymentRepository defines methods for payment record access. Records are
// only ever created through InsertIfAbsent.
type PaymentRepository interface {
	// InsertIfAbsent stores the payment unless one already exists for the same
	// payment intent. created reports whether this call wrote the record.
	InsertIfAbsent(ctx context.Context, payment *models.Payment) (created bool, err error)
	// GetByIntentID retrieves the payment recorded for a payment intent.
	GetByIntentID(ctx context.Context, intentID string) (*models.Payment, error)
	// List returns payments newest first.
	List(ctx context.Context) ([]models.Payment, error)
}
