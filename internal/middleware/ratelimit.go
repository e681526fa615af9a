package middleware

import (
	"sync"
	"time"

	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter - отдельный token bucket на каждый IP клиента
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewIPRateLimiter: perMinute запросов в минуту с запасом burst
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:    burst,
	}
}

func (l *IPRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

func (l *IPRateLimiter) Allow(ip string) bool {
	return l.get(ip).Allow()
}

// RateLimitMiddleware отвечает 429, когда IP исчерпал лимит
func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.CtxWarn(c.Request.Context(), "Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewTooManyRequestsError("Too many requests, try again later"))
			return
		}
		c.Next()
	}
}

// Sweep удаляет лимитеры с полным ведром: такой IP давно не заходил,
// и новый лимитер для него будет ровно таким же
func (l *IPRateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, lim := range l.limiters {
		if lim.Tokens() >= float64(l.burst) {
			delete(l.limiters, ip)
			removed++
		}
	}
	return removed
}

// Size - число отслеживаемых IP
func (l *IPRateLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
