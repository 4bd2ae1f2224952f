package middleware

import (
	"log/slog"
	"time"

	"booking-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader   = "X-Request-ID"
	ctxRequestIDKey   = "request_id"
	maxRequestIDLen   = 64
	idempotencyHeader = "Idempotency-Key"
)

// LoggingMiddleware logs one line per request. Actor attributes are read after
// the handler chain ran, since authentication happens on the /api group.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		)
		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}
		if id := c.Param("id"); id != "" {
			attrs = append(attrs, slog.String("path_id", id))
		}
		if key := c.GetHeader(idempotencyHeader); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		if actorID, ok := GetActorID(c); ok {
			attrs = append(attrs, slog.String("actor_id", actorID.String()))
		}
		if role, ok := GetActorRole(c); ok {
			attrs = append(attrs, slog.String("actor_role", string(role)))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
			if code := errorCode(c); code != "" {
				attrs = append(attrs, slog.String("error_code", code))
			}
		}

		l.logger.LogAttrs(c.Request.Context(), levelForStatus(status), "request completed", attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// errorCode returns the code of the last structured error attached by httperr.
func errorCode(c *gin.Context) string {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && resp.Error.Code != "" {
			return string(resp.Error.Code)
		}
	}
	return ""
}
