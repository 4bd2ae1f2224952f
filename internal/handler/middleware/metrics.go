package middleware

import (
	"time"

	"booking-scheduler/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics labels requests by route template so path ids do not explode cardinality.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if collector == nil {
			c.Next()
			return
		}
		started := time.Now()
		collector.InFlightGauge.Inc()
		defer collector.InFlightGauge.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(started))
	}
}
