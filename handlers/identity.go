package handlers

import (
	"hotelier/utils"

	"github.com/gin-gonic/gin"
)

// identityFrom reads the caller set by the JWT middleware.
func identityFrom(c *gin.Context) utils.Identity {
	return utils.Identity{
		UserID: c.GetString(utils.CtxUserID),
		Role:   c.GetString(utils.CtxRole),
	}
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return utils.NewInvalidRequest("", "invalid request body: "+err.Error())
	}
	return nil
}
