package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"booking-scheduler/internal/handler/httperr"
	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore holds one token bucket per client IP; buckets idle for
// limiterIdleTTL are dropped on the next sweep.
type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

func newLimiterStore(cfg config.RateLimitConfig) *limiterStore {
	return &limiterStore{
		limiters:  make(map[string]*limiterEntry),
		rps:       rate.Limit(cfg.RPS),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

func (s *limiterStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > limiterIdleTTL {
		for k, e := range s.limiters {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(s.limiters, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	store := newLimiterStore(cfg)

	return func(c *gin.Context) {
		now := time.Now()
		l := store.get(c.ClientIP(), now)
		if l.AllowN(now, 1) {
			c.Next()
			return
		}

		retry := 1
		if cfg.RPS > 0 {
			retry = int(math.Ceil(1 / cfg.RPS))
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
	}
}
