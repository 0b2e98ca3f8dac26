package handlers

import (
	"bytes"
	"net/http"

	billRepo "hotelier/database/repository/bill"
	"hotelier/models"
	"hotelier/services/billing"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillHandler exposes the bill builder.
type BillHandler struct {
	Service billing.BillService
	Logger  *zap.Logger
}

func NewBillHandler(svc billing.BillService, logger *zap.Logger) *BillHandler {
	return &BillHandler{Service: svc, Logger: logger}
}

// CreateBillHandler handles POST /api/bills.
func (h *BillHandler) CreateBillHandler(c *gin.Context) {
	var req models.BillCreateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	if who := identityFrom(c); !who.IsAdmin() {
		req.OwnerID = who.UserID
	}
	bill, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// ListBillsHandler handles GET /api/bills?bookingId=. Non-admins only see
// their own bills.
func (h *BillHandler) ListBillsHandler(c *gin.Context) {
	criteria := billRepo.BillSearchCriteria{BookingID: c.Query("bookingId")}
	if who := identityFrom(c); !who.IsAdmin() {
		criteria.UserID = who.UserID
	}
	bills, err := h.Service.List(c.Request.Context(), criteria)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// GetBillHandler handles GET /api/bills/:id.
func (h *BillHandler) GetBillHandler(c *gin.Context) {
	bill, err := h.owned(c, c.Param("id"))
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// UpdateBillHandler handles PATCH /api/bills/:id.
func (h *BillHandler) UpdateBillHandler(c *gin.Context) {
	var req models.BillUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	bill, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// DeleteBillHandler handles DELETE /api/bills/:id.
func (h *BillHandler) DeleteBillHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted"})
}

// ReceiptHandler handles GET /api/bills/:id/receipt and returns a PDF.
func (h *BillHandler) ReceiptHandler(c *gin.Context) {
	bill, err := h.owned(c, c.Param("id"))
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	var buf bytes.Buffer
	if err := billing.WriteReceipt(&buf, bill); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="bill-`+bill.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// owned loads a bill the caller may see. Bills of other users' bookings look
// missing.
func (h *BillHandler) owned(c *gin.Context, id string) (*models.Bill, error) {
	bill, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	who := identityFrom(c)
	if !who.IsAdmin() && bill.UserID != who.UserID {
		return nil, utils.NewNotFound("bill", id)
	}
	return bill, nil
}
