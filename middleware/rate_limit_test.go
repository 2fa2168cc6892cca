package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer rl.Stop()

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.NotEmpty(t, rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Second})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		assert.NoError(t, handler(c))

		c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		err := handler(c)
		he, isHTTPError := err.(*echo.HTTPError)
		assert.True(t, isHTTPError)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("ExceededLimitHTMX", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute, Message: "slow down"})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		assert.NoError(t, handler(c))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		c = e.NewContext(req, rec)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "slow down")
	})

	t.Run("KeyedByWorkspace", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		for _, id := range []string{"ws-a", "ws-b"} {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			c.Set(WorkspaceIDKey, id)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("WindowExpires", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: 10 * time.Millisecond})
		defer rl.Stop()
		handler := rl.Middleware()(ok)

		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		assert.NoError(t, handler(c))
		time.Sleep(20 * time.Millisecond)

		rec := httptest.NewRecorder()
		c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
