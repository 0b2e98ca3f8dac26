package handlers

import (
	"net/http"

	"hotelier/models"
	"hotelier/services/payment"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves intent creation and the recorded payments.
type PaymentHandler struct {
	Gateway payment.PaymentGateway
	Records *payment.Records
	Logger  *zap.Logger
}

func NewPaymentHandler(gateway payment.PaymentGateway, records *payment.Records, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Gateway: gateway, Records: records, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /api/payments/intent. The client
// secret goes back to the caller only.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := bindJSON(c, &req); err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	if who := identityFrom(c); !who.IsAdmin() {
		req.OwnerID = who.UserID
	}
	res, err := h.Gateway.CreateIntent(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListPaymentsHandler handles GET /api/payments.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	list, err := h.Records.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPaymentHandler handles GET /api/payments/:intentId.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	p, err := h.Records.Get(c.Request.Context(), c.Param("intentId"))
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
