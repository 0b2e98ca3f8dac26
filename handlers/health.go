package handlers

import (
	"context"
	"net/http"

	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports the state of the backing stores.
type HealthChecker interface {
	Check(ctx context.Context) utils.HealthStatus
}

// HealthHandler handles GET /health.
func HealthHandler(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := checker.Check(c.Request.Context())
		code := http.StatusOK
		if !status.OK() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
