package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// query params that must never reach the log
var sensitiveParams = map[string]struct{}{
	"password": {}, "pwd": {}, "token": {}, "authorization": {},
	"secret": {}, "access_token": {},
}

func maskQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		if _, hide := sensitiveParams[strings.ToLower(k)]; hide {
			out[k] = []string{"****"}
			continue
		}
		out[k] = v
	}
	return out
}

type respWriter struct {
	gin.ResponseWriter
	status int
	size   int
}

func (w *respWriter) WriteHeader(code int) { w.status = code; w.ResponseWriter.WriteHeader(code) }
func (w *respWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = 200
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// AccessLog emits one summary line per request. Route params stay in the
// template form (/api/events/:id) so log aggregation groups by endpoint.
func AccessLog(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		w := &respWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path // unmatched, likely a 404
		}
		l.Info("HTTP",
			zap.String("rid", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", w.status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("ua", c.Request.UserAgent()),
			zap.Any("query", maskQuery(c.Request.URL.Query())),
			zap.Int("size", w.size),
		)
	}
}
