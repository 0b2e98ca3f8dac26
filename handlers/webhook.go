package handlers

import (
	"io"
	"net/http"

	"hotelier/services/payment"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = int64(65536)

// WebhookHandler receives processor events.
type WebhookHandler struct {
	Listener payment.ConfirmationListener
	Logger   *zap.Logger
}

func NewWebhookHandler(listener payment.ConfirmationListener, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Listener: listener, Logger: logger}
}

// StripeWebhookHandler handles POST /api/webhooks/stripe. A 2xx tells the
// processor to stop redelivering; anything else makes it retry.
func (h *WebhookHandler) StripeWebhookHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, h.Logger, http.StatusServiceUnavailable, "could not read request body", err.Error())
		return
	}

	outcome, err := h.Listener.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		utils.RespondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true, "outcome": outcome})
}
