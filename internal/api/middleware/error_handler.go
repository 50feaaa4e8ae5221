package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"voice2text/internal/api/errors"
)

// ErrorHandler turns panics into a JSON 500 response and logs them with a stack trace.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		apiErr, ok := recovered.(*errors.APIError)
		if !ok {
			logger.Error("panic while handling request",
				zap.String("recovered", fmt.Sprint(recovered)),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Stack("stack"),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}
		apiErr.RequestID = requestID

		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err to the client as an APIError and aborts the chain.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromError(err)
	apiErr.RequestID = GetRequestID(c)
	c.Error(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
