package middleware

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/requestdata"
)

// RateLimit is one token-bucket shape: burst capacity and refill rate in
// tokens per second.
type RateLimit struct {
	Capacity   float64
	RefillRate float64
}

type prefixLimit struct {
	prefix string
	limit  RateLimit
}

type bucket struct {
	tokens       float64
	lastRefillAt time.Time
}

// RateLimiter keeps one token bucket per (user, endpoint) pair. State is
// process-local: horizontally scaled instances each enforce their own
// budget, which keeps the limiter lock-free across replicas at the cost of
// global exactness.
type RateLimiter struct {
	log          *logger.Logger
	defaultLimit RateLimit
	overrides    []prefixLimit
	now          func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewRateLimiter builds a limiter with a global default and per-endpoint
// overrides matched by longest prefix.
func NewRateLimiter(log *logger.Logger, defaultLimit RateLimit, overrides map[string]RateLimit) *RateLimiter {
	sorted := make([]prefixLimit, 0, len(overrides))
	for prefix, limit := range overrides {
		sorted = append(sorted, prefixLimit{prefix: prefix, limit: limit})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].prefix) > len(sorted[j].prefix)
	})
	return &RateLimiter{
		log:          log.With("middleware", "RateLimiter"),
		defaultLimit: defaultLimit,
		overrides:    sorted,
		now:          time.Now,
		buckets:      map[string]*bucket{},
	}
}

func (rl *RateLimiter) limitFor(path string) RateLimit {
	for _, o := range rl.overrides {
		if len(path) >= len(o.prefix) && path[:len(o.prefix)] == o.prefix {
			return o.limit
		}
	}
	return rl.defaultLimit
}

// Allow refills the pair's bucket for the elapsed time and consumes one
// token if available. The returned duration is a retry hint when denied.
func (rl *RateLimiter) Allow(userID, path string) (bool, time.Duration) {
	limit := rl.limitFor(path)
	key := userID + "|" + path
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: limit.Capacity, lastRefillAt: now}
		rl.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefillAt).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * limit.RefillRate
		if b.tokens > limit.Capacity {
			b.tokens = limit.Capacity
		}
		b.lastRefillAt = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	if limit.RefillRate <= 0 {
		return false, time.Minute
	}
	wait := time.Duration((1 - b.tokens) / limit.RefillRate * float64(time.Second))
	return false, wait
}

// Middleware gates authenticated requests. Requests with no identity pass
// through: authentication rejects them before any work happens.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		allowed, retryAfter := rl.Allow(rd.UserID.String(), path)
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": seconds,
			})
			return
		}
		c.Next()
	}
}
