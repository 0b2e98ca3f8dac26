package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reservation spanning one or more room stays for a customer.
type Booking struct {
	ID           string             `bson:"id" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	GuestName    string             `bson:"guestName" json:"guestName"`
	NationalID   string             `bson:"nationalId" json:"nationalId"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	RoomID       string             `bson:"roomId" json:"roomId"`
	RoomType     string             `bson:"roomType" json:"roomType"`
	CheckIn      time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut     time.Time          `bson:"checkOut" json:"checkOut"`
	Rooms        []RoomStayLineItem `bson:"rooms" json:"rooms"`
	ExtraCharges float64            `bson:"extraCharges" json:"extraCharges"`
	Discount     float64            `bson:"discount" json:"discount"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	GrandTotal   float64            `bson:"grandTotal" json:"grandTotal"`
	Status       BookingStatus      `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyPricing copies a priced reservation onto the booking.
func (b *Booking) ApplyPricing(p PricedReservation) {
	b.Rooms = p.Rooms
	b.ExtraCharges = p.ExtraCharges
	b.Discount = p.Discount
	b.Subtotal = p.Subtotal
	b.GrandTotal = p.GrandTotal
}

// PricePerNight is the first room's nightly rate, used as the bill's headline price.
func (b *Booking) PricePerNight() float64 {
	if len(b.Rooms) == 0 {
		return 0
	}
	return b.Rooms[0].RoomRate
}
