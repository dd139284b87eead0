package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests to protect the database pool.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			resp.AbortFail(c, http.StatusServiceUnavailable, "Server busy")
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
