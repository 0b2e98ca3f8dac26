package billRepo

import (
	"context"

	"hotelier/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BillRepository defines methods for bill data access.
type BillRepository interface {
	// Create inserts a new bill record.
	Create(ctx context.Context, bill *models.Bill) error
	// GetByID retrieves a bill by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Bill, error)
	// List returns bills newest first, optionally restricted to one booking
	// or one user.
	List(ctx context.Context, criteria BillSearchCriteria) ([]models.Bill, error)
	// UpdateFields applies a $set to the bill and bumps its version. When
	// expectedVersion is non-nil the update only applies to that version.
	UpdateFields(ctx context.Context, id string, fields bson.M, expectedVersion *int64) (*models.Bill, error)
	// Delete removes a bill record by its ID.
	Delete(ctx context.Context, id string) error
}

// BillSearchCriteria holds optional list filters.
type BillSearchCriteria struct {
	BookingID string
	UserID    string
}
