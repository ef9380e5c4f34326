package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hotelbooking/internal/pkg/response"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one structured line per request and recovers from panics.
func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				l.Error().
					Err(fmt.Errorf("%v", recovered)).
					Str("request_id", requestID(c)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
			}

			status := c.Writer.Status()
			event := l.Info()
			if status >= http.StatusInternalServerError {
				event = l.Error()
			}
			for _, err := range c.Errors {
				event = event.AnErr("handler_error", err.Err)
			}
			event.
				Str("route", routeOf(c)).
				Str("method", c.Request.Method).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("client_ip", c.ClientIP()).
				Str("user_id", UserID(c)).
				Str("request_id", requestID(c)).
				Msg("http_request")
		}()

		c.Next()
	}
}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

func requestID(c *gin.Context) string {
	return c.GetHeader(requestIDHeader)
}
