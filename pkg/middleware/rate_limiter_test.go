package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 60 requests per minute with a burst of 2.
	rl := NewRateLimiter(60, time.Minute, 2)

	limiter := rl.GetLimiter("192.168.1.1")
	assert.True(t, limiter.Allow(), "first request should be allowed")
	assert.True(t, limiter.Allow(), "second request should fit in the burst")
	assert.False(t, limiter.Allow(), "third request should be blocked")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 1)

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow(), "IP 1 first request should be allowed")
	assert.True(t, limiter2.Allow(), "IP 2 first request should be allowed")

	assert.False(t, limiter1.Allow(), "IP 1 second request should be blocked")
	assert.False(t, limiter2.Allow(), "IP 2 second request should be blocked")
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, time.Minute, 1)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	wrapped := rl.RateLimitMiddleware()(handler)

	doRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/estate-intake", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, wrapped(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, doRequest().Code)

	rec := doRequest()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}
