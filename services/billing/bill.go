package billing

import (
	"context"
	"strings"
	"time"

	billRepo "hotelier/database/repository/bill"
	"hotelier/models"
	"hotelier/services/pricing"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Create issues a bill for an existing booking. The total is the booking's
// grand total at this moment; later booking edits never reach the bill.
func (s *DefaultBillService) Create(ctx context.Context, req models.BillCreateRequest) (*models.Bill, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if req.OwnerID != "" && booking.UserID != req.OwnerID {
		return nil, utils.NewNotFound("booking", req.BookingID)
	}

	now := time.Now().UTC()
	bill := &models.Bill{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		GuestName:     orDefault(req.GuestName, booking.GuestName),
		NationalID:    orDefault(req.NationalID, booking.NationalID),
		Email:         orDefault(req.Email, booking.Email),
		Phone:         orDefault(req.Phone, booking.Phone),
		RoomID:        orDefault(req.RoomID, booking.RoomID),
		RoomType:      orDefault(req.RoomType, booking.RoomType),
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		PricePerNight: booking.PricePerNight(),
		TotalAmount:   booking.GrandTotal,
		Currency:      strings.ToLower(orDefault(req.Currency, s.DefaultCurrency)),
		Status:        models.BillIssued,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.CheckIn != nil {
		bill.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		bill.CheckOut = *req.CheckOut
	}
	if req.PricePerNight != nil {
		bill.PricePerNight = *req.PricePerNight
	}

	if bill.GuestName == "" {
		return nil, utils.NewValidationError("guestName", "is required")
	}
	if bill.RoomID == "" {
		return nil, utils.NewValidationError("roomId", "is required")
	}
	if !bill.CheckOut.After(bill.CheckIn) {
		return nil, utils.NewValidationError("checkOut", "must be after checkIn")
	}

	if err := s.Bills.Create(ctx, bill); err != nil {
		s.Logger.Error("Failed to create bill", zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Bill issued",
		zap.String("billID", bill.ID),
		zap.String("bookingID", bill.BookingID),
		zap.Float64("totalAmount", bill.TotalAmount))
	return bill, nil
}

func (s *DefaultBillService) Get(ctx context.Context, id string) (*models.Bill, error) {
	return s.Bills.GetByID(ctx, id)
}

// List returns bills newest first.
func (s *DefaultBillService) List(ctx context.Context, criteria billRepo.BillSearchCriteria) ([]models.Bill, error) {
	return s.Bills.List(ctx, criteria)
}

// Update applies a partial change. When rooms are supplied the total is
// recomputed by the pricing calculator and any totalAmount in the request is
// ignored. A non-nil Version makes the update conditional on it.
func (s *DefaultBillService) Update(ctx context.Context, id string, req models.BillUpdateRequest) (*models.Bill, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	fields := bson.M{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setString("guestName", req.GuestName)
	setString("nationalId", req.NationalID)
	setString("email", req.Email)
	setString("phone", req.Phone)
	setString("roomId", req.RoomID)
	setString("roomType", req.RoomType)
	if req.CheckIn != nil {
		fields["checkIn"] = req.CheckIn.UTC()
	}
	if req.CheckOut != nil {
		fields["checkOut"] = req.CheckOut.UTC()
	}
	if req.PricePerNight != nil {
		fields["pricePerNight"] = *req.PricePerNight
	}
	if req.Status != nil {
		fields["status"] = string(*req.Status)
	}

	switch {
	case req.Rooms != nil:
		priced := pricing.Calculate(req.Rooms, req.ExtraCharges, req.Discount)
		fields["totalAmount"] = priced.GrandTotal
		if req.PricePerNight == nil {
			fields["pricePerNight"] = priced.Rooms[0].RoomRate
		}
	case req.ExtraCharges != nil || req.Discount != nil:
		return nil, utils.NewValidationError("rooms", "is required when extraCharges or discount change")
	case req.TotalAmount != nil:
		if *req.TotalAmount < 0 {
			return nil, utils.NewValidationError("totalAmount", "must be greater than or equal to 0")
		}
		fields["totalAmount"] = *req.TotalAmount
	}

	if len(fields) == 0 {
		return nil, utils.NewValidationError("", "no fields to update")
	}
	if req.CheckIn != nil || req.CheckOut != nil {
		if err := s.checkStayDates(ctx, id, req); err != nil {
			return nil, err
		}
	}

	bill, err := s.Bills.UpdateFields(ctx, id, fields, req.Version)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Bill updated",
		zap.String("billID", bill.ID),
		zap.Int64("version", bill.Version),
		zap.Float64("totalAmount", bill.TotalAmount))
	return bill, nil
}

// checkStayDates rejects an update that would leave checkOut at or before
// checkIn once merged with the stored dates.
func (s *DefaultBillService) checkStayDates(ctx context.Context, id string, req models.BillUpdateRequest) error {
	current, err := s.Bills.GetByID(ctx, id)
	if err != nil {
		return err
	}
	checkIn, checkOut := current.CheckIn, current.CheckOut
	if req.CheckIn != nil {
		checkIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		checkOut = *req.CheckOut
	}
	if !checkOut.After(checkIn) {
		return utils.NewValidationError("checkOut", "must be after checkIn")
	}
	return nil
}

// Delete removes the bill only. Bookings and payments are left untouched.
func (s *DefaultBillService) Delete(ctx context.Context, id string) error {
	if err := s.Bills.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("Bill deleted", zap.String("billID", id))
	return nil
}

// MarkPaid flags a bill as settled.
func (s *DefaultBillService) MarkPaid(ctx context.Context, id string) error {
	_, err := s.Bills.UpdateFields(ctx, id, bson.M{"status": string(models.BillPaid)}, nil)
	return err
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
