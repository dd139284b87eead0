package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestIDKey = "requestId"
)

// RequestID honours an inbound X-Request-ID and generates one otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, rid)
		c.Set(ctxRequestIDKey, rid)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string { return c.GetString(ctxRequestIDKey) }
