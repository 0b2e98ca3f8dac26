package models

import "time"

type BillStatus string

const (
	BillIssued BillStatus = "issued"
	BillPaid   BillStatus = "paid"
)

// Bill is the durable, customer-facing priced record derived from a booking.
// TotalAmount is a snapshot taken when the bill is issued.
type Bill struct {
	ID            string     `bson:"id" json:"id"`
	BookingID     string     `bson:"bookingId" json:"bookingId"`
	UserID        string     `bson:"userId" json:"userId"`
	GuestName     string     `bson:"guestName" json:"guestName"`
	NationalID    string     `bson:"nationalId" json:"nationalId"`
	Email         string     `bson:"email" json:"email"`
	Phone         string     `bson:"phone" json:"phone"`
	RoomID        string     `bson:"roomId" json:"roomId"`
	RoomType      string     `bson:"roomType" json:"roomType"`
	CheckIn       time.Time  `bson:"checkIn" json:"checkIn"`
	CheckOut      time.Time  `bson:"checkOut" json:"checkOut"`
	PricePerNight float64    `bson:"pricePerNight" json:"pricePerNight"`
	TotalAmount   float64    `bson:"totalAmount" json:"totalAmount"`
	Currency      string     `bson:"currency" json:"currency"`
	Status        BillStatus `bson:"status" json:"status"`
	Version       int64      `bson:"version" json:"version"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
