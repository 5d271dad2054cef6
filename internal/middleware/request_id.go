package middleware

import (
	"context"
	"time"

	"github.com/brevetti-digital/backend/internal/constants"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id (incoming
// X-Request-ID or a fresh UUID), the client IP and a start time, and
// echoes the id back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, ctxutil.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, ctxutil.ClientIPKey, c.ClientIP())
		ctx = context.WithValue(ctx, ctxutil.StartTimeKey, time.Now())
		c.Request = c.Request.WithContext(ctx)

		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
