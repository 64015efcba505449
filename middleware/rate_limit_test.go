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
	defer rl.Close()

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.NotNil(t, rl.config.Skipper)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	serve := func(h echo.HandlerFunc, method string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(method, "/", nil)
		rec := httptest.NewRecorder()
		return rec, h(e.NewContext(req, rec))
	}

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Second})
		defer rl.Close()
		handler := rl.Middleware()(ok)

		for i := 0; i < 2; i++ {
			rec, err := serve(handler, http.MethodPost)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Second})
		defer rl.Close()
		handler := rl.Middleware()(ok)

		_, err := serve(handler, http.MethodPost)
		assert.NoError(t, err)

		_, err = serve(handler, http.MethodPost)
		assert.Error(t, err)
		he, isHTTP := err.(*echo.HTTPError)
		assert.True(t, isHTTP)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("ReadsSkipped", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Second, Skipper: SkipReads})
		defer rl.Close()
		handler := rl.Middleware()(ok)

		for i := 0; i < 3; i++ {
			_, err := serve(handler, http.MethodGet)
			assert.NoError(t, err)
		}
		_, err := serve(handler, http.MethodDelete)
		assert.NoError(t, err)
		_, err = serve(handler, http.MethodDelete)
		assert.Error(t, err)
	})
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
	defer rl.Close()

	now := time.Now()
	assert.True(t, rl.allow("ip", now))
	assert.False(t, rl.allow("ip", now.Add(time.Second)))
	assert.True(t, rl.allow("ip", now.Add(2*time.Minute)))
}

func TestRateLimiterPurge(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
	defer rl.Close()

	now := time.Now()
	rl.allow("a", now)
	rl.purge(now.Add(2 * time.Minute))

	assert.Empty(t, rl.store)
}
