package handlers

import (
	"net/http"

	"hotelier/models"
	"hotelier/services/booking"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves reservations and price quotes.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// QuoteHandler handles POST /api/bookings/quote.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req models.QuoteRequest
	if err := bindJSON(c, &req); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	priced, err := h.Service.Quote(req)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, priced)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	created, err := h.Service.Create(c.Request.Context(), identityFrom(c).UserID, req)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookingsHandler handles GET /api/bookings. Admins see every booking.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	who := identityFrom(c)
	userID := who.UserID
	if who.IsAdmin() {
		userID = c.Query("userId")
	}
	list, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	found, err := h.owned(c, c.Param("id"))
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateBookingHandler handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.BookingUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	if _, err := h.owned(c, id); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// owned loads a booking the caller may see. Other users' bookings look
// missing rather than forbidden.
func (h *BookingHandler) owned(c *gin.Context, id string) (*models.Booking, error) {
	found, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	who := identityFrom(c)
	if !who.IsAdmin() && found.UserID != who.UserID {
		return nil, utils.NewNotFound("booking", id)
	}
	return found, nil
}
