package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

// Timeout caps how long a handler may hold a request. Handlers observe the
// deadline through the request context; gorm queries carry it down to the
// driver. A handler that already wrote a response is left alone.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			resp.AbortFail(c, http.StatusGatewayTimeout, "Request timed out")
		}
	}
}
