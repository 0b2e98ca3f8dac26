package booking

import (
	"context"
	"time"

	"hotelier/models"
	"hotelier/services/pricing"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Quote prices line items without storing anything.
func (s *DefaultBookingService) Quote(req models.QuoteRequest) (*models.PricedReservation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	priced := pricing.Calculate(req.Rooms, req.ExtraCharges, req.Discount)
	return &priced, nil
}

func (s *DefaultBookingService) Create(ctx context.Context, userID string, req models.BookingCreateRequest) (*models.Booking, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		GuestName:  req.GuestName,
		NationalID: req.NationalID,
		Email:      req.Email,
		Phone:      req.Phone,
		RoomID:     req.RoomID,
		RoomType:   req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     models.BookingConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	booking.ApplyPricing(pricing.Calculate(req.Rooms, req.ExtraCharges, req.Discount))

	if err := s.Repo.Create(ctx, booking); err != nil {
		s.Logger.Error("Failed to create booking", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.Float64("grandTotal", booking.GrandTotal))
	return booking, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) List(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.List(ctx, userID)
}

// Update applies a partial change. Supplying rooms, extra charges or discount
// reprices the booking; the other pricing inputs keep their stored values.
func (s *DefaultBookingService) Update(ctx context.Context, id string, req models.BookingUpdateRequest) (*models.Booking, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GuestName != nil {
		booking.GuestName = *req.GuestName
	}
	if req.NationalID != nil {
		booking.NationalID = *req.NationalID
	}
	if req.Email != nil {
		booking.Email = *req.Email
	}
	if req.Phone != nil {
		booking.Phone = *req.Phone
	}
	if req.RoomID != nil {
		booking.RoomID = *req.RoomID
	}
	if req.RoomType != nil {
		booking.RoomType = *req.RoomType
	}
	if req.CheckIn != nil {
		booking.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		booking.CheckOut = *req.CheckOut
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if !booking.CheckOut.After(booking.CheckIn) {
		return nil, utils.NewValidationError("checkOut", "must be after checkIn")
	}

	if req.Rooms != nil || req.ExtraCharges != nil || req.Discount != nil {
		rooms := booking.Rooms
		if req.Rooms != nil {
			rooms = req.Rooms
		}
		extra := booking.ExtraCharges
		if req.ExtraCharges != nil {
			extra = *req.ExtraCharges
		}
		discount := booking.Discount
		if req.Discount != nil {
			discount = *req.Discount
		}
		booking.ApplyPricing(pricing.Calculate(rooms, &extra, &discount))
	}

	booking.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Booking deleted", zap.String("bookingID", id))
	return nil
}
