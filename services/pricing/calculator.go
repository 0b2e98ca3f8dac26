// Package pricing turns room-stay line items into a priced reservation.
package pricing

import "hotelier/models"

// LineTotal is rate + taxes + resort fee.
func LineTotal(item models.RoomStayLineItem) float64 {
	return item.RoomRate + item.Taxes + item.ResortFee
}

// Calculate prices the given rooms. Every line total is recomputed and any
// total already present on the input is ignored. A nil extraCharges or
// discount counts as zero. The input slice is not modified.
//
// Calculate does no validation; negative values are the caller's problem.
func Calculate(rooms []models.RoomStayLineItem, extraCharges, discount *float64) models.PricedReservation {
	priced := models.PricedReservation{
		Rooms:        make([]models.RoomStayLineItem, len(rooms)),
		ExtraCharges: valueOrZero(extraCharges),
		Discount:     valueOrZero(discount),
	}

	subtotal := 0.0
	for i, room := range rooms {
		room.Total = LineTotal(room)
		priced.Rooms[i] = room
		subtotal += room.Total
	}

	priced.Subtotal = subtotal
	priced.GrandTotal = subtotal + priced.ExtraCharges - priced.Discount
	return priced
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
