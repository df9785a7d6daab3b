package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/api/",
	"/healthz",
	"/favicon",
	"/privacy",
	"/contact",
}

// TrackFunc records one visit.
type TrackFunc func(ctx context.Context, ip, userAgent, path string) error

// VisitorTracking records page views off the request goroutine. Requests
// with "DNT: 1", HTMX fragment requests and non-GET requests are skipped.
func VisitorTracking(track TrackFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldTrack(c) {
			c.Next()
			return
		}

		ip, ua, path := c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path
		ctx := context.WithoutCancel(c.Request.Context())
		go func() {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := track(ctx, ip, ua, path); err != nil {
				slog.Warn("record visit", "path", path, "err", err)
			}
		}()
		c.Next()
	}
}

func shouldTrack(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	if c.GetHeader("DNT") == "1" || c.GetHeader("HX-Request") == "true" {
		return false
	}
	path := c.Request.URL.Path
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
