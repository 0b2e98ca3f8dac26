package models

import "time"

// Payment is the durable record of a completed, confirmed charge. There is at
// most one per PaymentIntentID.
type Payment struct {
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	EventID         string    `bson:"eventId" json:"eventId"`
	Amount          int64     `bson:"amount" json:"amount"` // minor units
	Currency        string    `bson:"currency" json:"currency"`
	Status          string    `bson:"status" json:"status"`
	NationalID      string    `bson:"nationalId,omitempty" json:"nationalId,omitempty"`
	BillID          string    `bson:"billId,omitempty" json:"billId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest asks the gateway for a charge authorization. Either
// Amount (minor units) or BillID must be set.
type PaymentIntentRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	BillID   string            `json:"billId,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`

	// OwnerID, when set, limits BillID to that user's bills.
	OwnerID string `json:"-"`
}

// PaymentIntentResult is what the client needs to complete the charge with
// the processor directly.
type PaymentIntentResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}
