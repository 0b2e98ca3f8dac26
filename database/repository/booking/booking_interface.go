package bookingRepo

import (
	"context"

	"hotelier/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// List returns bookings newest first. An empty userID lists every booking.
	List(ctx context.Context, userID string) ([]models.Booking, error)
	// Update replaces the stored booking with the given one.
	Update(ctx context.Context, booking *models.Booking) error
	// Delete removes a booking record by its ID.
	Delete(ctx context.Context, id string) error
}
