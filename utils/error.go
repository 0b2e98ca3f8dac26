package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, logger *zap.Logger, status int, message string, details string) {
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// StatusFor maps an error kind onto an HTTP status code.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindValidation, KindInvalidRequest, KindSignatureInvalid, KindMalformedEvent:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as JSON. Validation and not-found errors carry their
// message; upstream, signature and internal failures get a generic one.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	kind := KindOf(err)
	status := StatusFor(kind)

	resp := ErrorResponse{}
	var appErr *AppError
	switch kind {
	case KindValidation, KindInvalidRequest, KindNotFound, KindConflict:
		if errors.As(err, &appErr) {
			resp.Message = appErr.Message
			resp.Field = appErr.Field
		}
		logger.Info("request rejected", zap.String("kind", string(kind)), zap.Error(err))
	case KindUpstream:
		resp.Message = "payment processor unavailable"
		logger.Error("upstream failure", zap.Error(err))
	case KindSignatureInvalid, KindMalformedEvent:
		resp.Message = "invalid webhook payload"
		logger.Warn("webhook rejected", zap.String("kind", string(kind)), zap.Error(err))
	default:
		resp.Message = "Internal Server Error"
		logger.Error("request failed", zap.Error(err))
	}
	c.AbortWithStatusJSON(status, resp)
}
