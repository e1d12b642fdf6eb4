package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitBlocksAfterBurstOnCredentialEndpoint(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter()
	e.Use(limiter.RateLimit())
	e.POST("/api/auth/forgot-password", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	var lastCode int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", nil)
		req.Header.Set("X-Real-IP", "203.0.113.7")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		lastCode = rec.Code
		if i < 5 {
			require.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// Once blocked, further requests from the same IP stay blocked.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitIsPerIP(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter()
	e.Use(limiter.RateLimit())
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.Header.Set("X-Real-IP", "198.51.100.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
	}

	// A different IP has its own budget.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("X-Real-IP", "198.51.100.2")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
