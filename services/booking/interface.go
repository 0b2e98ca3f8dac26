package booking

import (
	"context"

	bookingRepo "hotelier/database/repository/booking"
	"hotelier/models"

	"go.uber.org/zap"
)

// BookingService manages reservations. Every create or line-item change is
// priced server-side.
type BookingService interface {
	Quote(req models.QuoteRequest) (*models.PricedReservation, error)
	Create(ctx context.Context, userID string, req models.BookingCreateRequest) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, userID string) ([]models.Booking, error)
	Update(ctx context.Context, id string, req models.BookingUpdateRequest) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

func NewBookingService(repo bookingRepo.BookingRepository, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Logger: logger}
}
