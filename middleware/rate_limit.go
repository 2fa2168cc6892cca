package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc returns the key requests are counted under (defaults to the
	// workspace id, then the client IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window limiter for one group of endpoints
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
	stop   chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			if id := GetWorkspaceID(c); id != "" {
				return id
			}
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Demasiadas solicitudes. Intente nuevamente en unos segundos."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		stop:   make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.KeyFunc(c)
			now := time.Now()

			rl.mu.Lock()
			entry, exists := rl.store[key]
			if !exists || now.After(entry.expiresAt) {
				rl.store[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(rl.config.Window)}
				rl.mu.Unlock()
				return next(c)
			}
			if entry.count >= rl.config.Requests {
				rl.mu.Unlock()
				if IsHTMX(c) {
					return c.HTML(http.StatusTooManyRequests, `<div class="notice notice-error">`+rl.config.Message+`</div>`)
				}
				return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
			}
			entry.count++
			rl.mu.Unlock()

			return next(c)
		}
	}
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for key, entry := range rl.store {
				if now.After(entry.expiresAt) {
					delete(rl.store, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// IsHTMX reports whether the request was issued by htmx
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
