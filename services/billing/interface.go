// Package billing issues and maintains customer bills derived from bookings.
package billing

import (
	"context"

	billRepo "hotelier/database/repository/bill"
	bookingRepo "hotelier/database/repository/booking"
	"hotelier/models"

	"go.uber.org/zap"
)

// BillService is the bill builder. It only ever talks to the bill and
// booking stores.
type BillService interface {
	Create(ctx context.Context, req models.BillCreateRequest) (*models.Bill, error)
	Get(ctx context.Context, id string) (*models.Bill, error)
	List(ctx context.Context, criteria billRepo.BillSearchCriteria) ([]models.Bill, error)
	Update(ctx context.Context, id string, req models.BillUpdateRequest) (*models.Bill, error)
	Delete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
}

// DefaultBillService implements BillService.
type DefaultBillService struct {
	Bills           billRepo.BillRepository
	Bookings        bookingRepo.BookingRepository
	DefaultCurrency string
	Logger          *zap.Logger
}

func NewBillService(bills billRepo.BillRepository, bookings bookingRepo.BookingRepository, currency string, logger *zap.Logger) *DefaultBillService {
	return &DefaultBillService{
		Bills:           bills,
		Bookings:        bookings,
		DefaultCurrency: currency,
		Logger:          logger,
	}
}
