package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
	eventRegistrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "event_registrations_total", Help: "Event registration attempts"},
		[]string{"outcome"},
	)
)

func init() { prometheus.MustRegister(httpReqTotal, httpLatency, eventRegistrations) }

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		httpReqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// CountRegistration records the outcome of an event registration attempt
// ("ok", "full", "duplicate", "closed", "error").
func CountRegistration(outcome string) {
	eventRegistrations.WithLabelValues(outcome).Inc()
}
