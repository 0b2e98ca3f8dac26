package models

import "time"

// BookingCreateRequest is the client payload for a new booking. Line totals,
// subtotal and grand total are never read from it.
type BookingCreateRequest struct {
	GuestName    string             `json:"guestName" validate:"required"`
	NationalID   string             `json:"nationalId"`
	Email        string             `json:"email" validate:"omitempty,email"`
	Phone        string             `json:"phone"`
	RoomID       string             `json:"roomId" validate:"required"`
	RoomType     string             `json:"roomType"`
	CheckIn      time.Time          `json:"checkIn" validate:"required"`
	CheckOut     time.Time          `json:"checkOut" validate:"required,gtfield=CheckIn"`
	Rooms        []RoomStayLineItem `json:"rooms" validate:"required,min=1,dive"`
	ExtraCharges *float64           `json:"extraCharges,omitempty" validate:"omitempty,gte=0"`
	Discount     *float64           `json:"discount,omitempty" validate:"omitempty,gte=0"`
}

// BookingUpdateRequest is a partial update. Supplying Rooms, ExtraCharges or
// Discount reprices the booking.
type BookingUpdateRequest struct {
	GuestName    *string            `json:"guestName,omitempty" validate:"omitempty,min=1"`
	NationalID   *string            `json:"nationalId,omitempty"`
	Email        *string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string            `json:"phone,omitempty"`
	RoomID       *string            `json:"roomId,omitempty" validate:"omitempty,min=1"`
	RoomType     *string            `json:"roomType,omitempty"`
	CheckIn      *time.Time         `json:"checkIn,omitempty"`
	CheckOut     *time.Time         `json:"checkOut,omitempty"`
	Rooms        []RoomStayLineItem `json:"rooms,omitempty" validate:"omitempty,min=1,dive"`
	ExtraCharges *float64           `json:"extraCharges,omitempty" validate:"omitempty,gte=0"`
	Discount     *float64           `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Status       *BookingStatus     `json:"status,omitempty" validate:"omitempty,oneof=confirmed cancelled"`
}

// BillCreateRequest issues a bill for a booking. Omitted customer and room
// fields are filled from the booking.
type BillCreateRequest struct {
	BookingID     string     `json:"bookingId" validate:"required"`
	GuestName     string     `json:"guestName"`
	NationalID    string     `json:"nationalId"`
	Email         string     `json:"email" validate:"omitempty,email"`
	Phone         string     `json:"phone"`
	RoomID        string     `json:"roomId"`
	RoomType      string     `json:"roomType"`
	CheckIn       *time.Time `json:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	PricePerNight *float64   `json:"pricePerNight,omitempty" validate:"omitempty,gte=0"`
	Currency      string     `json:"currency" validate:"omitempty,len=3"`

	// OwnerID, when set, limits the request to bookings of that user.
	OwnerID string `json:"-"`
}

// BillUpdateRequest is a partial update. When Rooms is present the total is
// recomputed from it and TotalAmount is ignored. Version, when set, must match
// the stored bill.
type BillUpdateRequest struct {
	GuestName     *string            `json:"guestName,omitempty" validate:"omitempty,min=1"`
	NationalID    *string            `json:"nationalId,omitempty"`
	Email         *string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string            `json:"phone,omitempty"`
	RoomID        *string            `json:"roomId,omitempty"`
	RoomType      *string            `json:"roomType,omitempty"`
	CheckIn       *time.Time         `json:"checkIn,omitempty"`
	CheckOut      *time.Time         `json:"checkOut,omitempty"`
	PricePerNight *float64           `json:"pricePerNight,omitempty" validate:"omitempty,gte=0"`
	TotalAmount   *float64           `json:"totalAmount,omitempty"`
	Rooms         []RoomStayLineItem `json:"rooms,omitempty" validate:"omitempty,min=1,dive"`
	ExtraCharges  *float64           `json:"extraCharges,omitempty" validate:"omitempty,gte=0"`
	Discount      *float64           `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Status        *BillStatus        `json:"status,omitempty" validate:"omitempty,oneof=issued paid"`
	Version       *int64             `json:"version,omitempty"`
}
