package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/observability"
)

// Metrics records request count and latency per route template. Register it
// before Logger so recovered panics are counted with their 500 status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			observability.ObserveHTTP(routeOf(c), c.Request.Method, c.Writer.Status(), time.Since(start))
		}()
		c.Next()
	}
}
