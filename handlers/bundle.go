package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AuthMiddleware authenticates every non-public route.
	AuthMiddleware gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc

	// Booking endpoints
	QuoteHandler         gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	UpdateBookingHandler gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc

	// Bill endpoints
	CreateBillHandler  gin.HandlerFunc
	ListBillsHandler   gin.HandlerFunc
	GetBillHandler     gin.HandlerFunc
	UpdateBillHandler  gin.HandlerFunc
	DeleteBillHandler  gin.HandlerFunc
	BillReceiptHandler gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc
	ListPaymentsHandler        gin.HandlerFunc
	GetPaymentHandler          gin.HandlerFunc

	// Processor webhooks
	StripeWebhookHandler gin.HandlerFunc
}
