package models

// RoomStayLineItem is one room's charge for a stay. Total is always
// recomputed server-side; whatever a client sends in it is discarded.
type RoomStayLineItem struct {
	Name       string  `bson:"name" json:"name"`
	StayLength string  `bson:"stayLength" json:"stayLength"` // e.g. "2 nights"
	RoomRate   float64 `bson:"roomRate" json:"roomRate" validate:"gte=0"`
	Taxes      float64 `bson:"taxes" json:"taxes" validate:"gte=0"`
	ResortFee  float64 `bson:"resortFee" json:"resortFee" validate:"gte=0"`
	Total      float64 `bson:"total" json:"total"`
}

// PricedReservation is the output of the pricing calculator.
type PricedReservation struct {
	Rooms        []RoomStayLineItem `bson:"rooms" json:"rooms"`
	ExtraCharges float64            `bson:"extraCharges" json:"extraCharges"`
	Discount     float64            `bson:"discount" json:"discount"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	GrandTotal   float64            `bson:"grandTotal" json:"grandTotal"`
}

// QuoteRequest prices line items without persisting anything.
type QuoteRequest struct {
	Rooms        []RoomStayLineItem `json:"rooms" validate:"dive"`
	ExtraCharges *float64           `json:"extraCharges,omitempty" validate:"omitempty,gte=0"`
	Discount     *float64           `json:"discount,omitempty" validate:"omitempty,gte=0"`
}
