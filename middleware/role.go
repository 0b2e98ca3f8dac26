package middleware

import (
	"net/http"

	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only when the JWT middleware recorded
// one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[c.GetString(utils.CtxRole)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
