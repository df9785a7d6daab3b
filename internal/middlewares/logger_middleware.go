package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/showcase/internal/services"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a request scoped logger carrying the request id to
// the request context, then logs one line per request at info level, or
// warn/error for 4xx/5xx responses.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" || len(reqID) > 64 {
			reqID = services.RandomToken()[:16]
		}
		c.Header(requestIDHeader, reqID)
		reqLogger := logger.With("request_id", reqID)
		c.Request = c.Request.WithContext(services.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}
		reqLogger.LogAttrs(c.Request.Context(), level, "http request", attrs...)
	}
}
