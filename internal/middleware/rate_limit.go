package middleware

import (
	"math"
	"net/http"
	"sync"
	"time"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// minLimiterIdle is the shortest time an unused limiter is kept.
const minLimiterIdle = 10 * time.Minute

// IPRateLimiter holds one token bucket per key. Buckets unused for the idle
// period are evicted; by then they would have refilled anyway.
type IPRateLimiter struct {
	limiters *gocache.Cache
	mu       sync.Mutex
	r        rate.Limit // requests per second
	b        int        // burst
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return NewIPRateLimiterWithIdle(r, b, limiterIdle(r, b))
}

// NewIPRateLimiterWithIdle evicts a key's limiter after idle without requests.
func NewIPRateLimiterWithIdle(r rate.Limit, b int, idle time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: gocache.New(idle, idle),
		r:        r,
		b:        b,
	}
}

// limiterIdle is the time a drained bucket needs to refill, floored at
// minLimiterIdle.
func limiterIdle(r rate.Limit, b int) time.Duration {
	if r <= 0 || r == rate.Inf {
		return minLimiterIdle
	}
	refill := float64(b) / float64(r) * float64(time.Second)
	if refill >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return max(time.Duration(refill), minLimiterIdle)
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.limiters.Get(key); ok {
		limiter := v.(*rate.Limiter)
		// refresh the expiry on every hit
		i.limiters.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.limiters.SetDefault(key, limiter)
	return limiter
}

// Len reports how many keys currently hold a limiter.
func (i *IPRateLimiter) Len() int {
	return i.limiters.ItemCount()
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			tooMany(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser: r = requests per second, b = burst. Anonymous requests pass.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			tooMany(c)
			return
		}
		c.Next()
	}
}

func tooMany(c *gin.Context) {
	response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, "Demasiadas solicitudes, intente de nuevo en unos segundos", nil)
	c.Abort()
}
