package payment

import (
	"context"

	paymentRepo "hotelier/database/repository/payment"
	"hotelier/models"
)

// Records is the read side of recorded payments.
type Records struct {
	Payments paymentRepo.PaymentRepository
}

func NewRecords(payments paymentRepo.PaymentRepository) *Records {
	return &Records{Payments: payments}
}

func (r *Records) Get(ctx context.Context, intentID string) (*models.Payment, error) {
	return r.Payments.GetByIntentID(ctx, intentID)
}

// List returns payments newest first.
func (r *Records) List(ctx context.Context) ([]models.Payment, error) {
	return r.Payments.List(ctx)
}
