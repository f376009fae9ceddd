package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"household-budget/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerSecond float64
	burstSize         int
	now               func() time.Time
}

// NewRateLimiter creates a per-IP limiter allowing rps requests per second with the given burst
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerSecond: rps,
		burstSize:         burst,
		now:               time.Now,
	}
}

// Middleware rejects requests over the limit with SYSTEM_006
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.limiterFor(getIP(c)).Allow() {
				traceID := GetTraceID(c)
				response := errors.NewErrorResponse(errors.SystemRateLimitExceeded, traceID)
				RecordAPIError(c, response.Error.Code, http.StatusTooManyRequests)
				return c.JSON(http.StatusTooManyRequests, response)
			}

			return next(c)
		}
	}
}

// RunCleanup drops idle visitors until stop is closed
func (rl *RateLimiter) RunCleanup(stop <-chan struct{}) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(rl.requestsPerSecond), rl.burstSize)
		rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: rl.now()}
		return limiter
	}

	v.lastSeen = rl.now()
	return v.limiter
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
