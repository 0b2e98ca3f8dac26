package routes

import (
	"time"

	"hotelier/handlers"
	"hotelier/middleware"
	"hotelier/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterBookingRoutes registers reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(hb.AuthMiddleware)
		api.POST("/quote", hb.QuoteHandler)
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id", hb.UpdateBookingHandler)
		api.DELETE("/:id", middleware.RequireRole(utils.RoleAdmin), hb.DeleteBookingHandler)
	}
}

// RegisterBillRoutes registers bill builder endpoints. Edits and deletes are
// administrative.
func RegisterBillRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bills")
	{
		api.Use(hb.AuthMiddleware)
		api.POST("", hb.CreateBillHandler)
		api.GET("", hb.ListBillsHandler)
		api.GET("/:id", hb.GetBillHandler)
		api.GET("/:id/receipt", hb.BillReceiptHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(utils.RoleAdmin))
		admin.PATCH("/:id", hb.UpdateBillHandler)
		admin.DELETE("/:id", hb.DeleteBillHandler)
	}
}

// RegisterPaymentRoutes registers payment intent and payment record endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(hb.AuthMiddleware)
		api.POST("/intent", hb.CreatePaymentIntentHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(utils.RoleAdmin))
		admin.GET("", hb.ListPaymentsHandler)
		admin.GET("/:intentId", hb.GetPaymentHandler)
	}
}

// RegisterWebhookRoutes registers processor callbacks. They authenticate by
// signature, not by bearer token.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.StripeWebhookHandler)
}

func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterBillRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
}
