package middleware

import (
	"net/http"
	"sync"
	"time"

	"servicescale/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)

const (
	limiterIdleTTL       = 30 * time.Minute
	limiterSweepInterval = 10 * time.Minute
)

type ownerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// OwnerRateLimiter keeps one token bucket per owner. It runs after
// AuthMiddleware; requests without an owner fall back to the client IP.
// Buckets idle for limiterIdleTTL are dropped.
type OwnerRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*ownerLimiter
	r         rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewOwnerRateLimiter builds the limiter. A burst below one is raised to one,
// otherwise no request would ever pass.
func NewOwnerRateLimiter(r rate.Limit, burst int) *OwnerRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &OwnerRateLimiter{
		limiters: make(map[string]*ownerLimiter),
		r:        r,
		burst:    burst,
		now:      time.Now,
	}
}

func (l *OwnerRateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweepLocked(now)
	}
	ol, ok := l.limiters[key]
	if !ok {
		ol = &ownerLimiter{limiter: rate.NewLimiter(l.r, l.burst)}
		l.limiters[key] = ol
	}
	ol.lastSeen = now
	return ol.limiter
}

func (l *OwnerRateLimiter) sweepLocked(now time.Time) {
	for key, ol := range l.limiters {
		if now.Sub(ol.lastSeen) > limiterIdleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

func (l *OwnerRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *OwnerRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(ContextKeyOwnerID)
		if key == "" {
			key = c.ClientIP()
		}
		if !l.limiter(key).Allow() {
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
