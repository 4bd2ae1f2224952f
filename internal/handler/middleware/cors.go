package middleware

import (
	"net/http"
	"slices"

	"booking-scheduler/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browser clients need these whatever the configuration says: create replays
// are only visible through Idempotent-Replayed, and 503s carry Retry-After.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", idempotencyHeader, requestIDHeader}
	requiredExposeHeaders = []string{"Location", idempotentReplayedHeader, "Retry-After", requestIDHeader}
)

const idempotentReplayedHeader = "Idempotent-Replayed"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withRequired(cfg.AllowMethods, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete),
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders...),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withRequired(configured []string, required ...string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(h) }) {
			out = append(out, h)
		}
	}
	return out
}
