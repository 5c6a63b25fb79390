package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client IP keeps its limiter without sending
// a request. It is far longer than a bucket takes to refill, so evicting an
// idle limiter never hands a client extra tokens.
const limiterIdleTTL = 10 * time.Minute

// ipLimiters holds one token bucket per client IP. Every request pushes the
// IP's expiry forward; go-cache's janitor drops the idle ones.
type ipLimiters struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients *gocache.Cache
}

func newIPLimiters(rps float64, idle time.Duration) *ipLimiters {
	return &ipLimiters{
		limit:   rate.Limit(rps),
		burst:   max(int(rps), 1),
		clients: gocache.New(idle, idle),
	}
}

func (l *ipLimiters) allow(ip string) bool {
	l.mu.Lock()
	var limiter *rate.Limiter
	if v, ok := l.clients.Get(ip); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	l.clients.SetDefault(ip, limiter)
	l.mu.Unlock()

	return limiter.Allow()
}

// RateLimitMiddleware throttles each client IP to rps requests per second.
// A non-positive rps disables throttling.
func RateLimitMiddleware(rps float64) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiters := newIPLimiters(rps, limiterIdleTTL)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Kind:    string(apperror.KindBadRequest),
				Message: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
