package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 5)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("expected request %d within burst to be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksOverBurst(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 2)
	defer rl.Stop()

	rl.Allow("10.0.0.2")
	rl.Allow("10.0.0.2")
	if rl.Allow("10.0.0.2") {
		t.Error("expected request over burst to be blocked")
	}
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	if !rl.Allow("10.0.0.3") {
		t.Fatal("expected first client's request to be allowed")
	}
	if !rl.Allow("10.0.0.4") {
		t.Error("expected second client to have its own limiter")
	}
}

func TestRateLimitMiddleware_TooManyRequests(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	handler := RateLimitMiddleware(rl)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	request := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return rec.Code
	}

	if code := request(); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := request(); code != http.StatusTooManyRequests {
		t.Errorf("expected second request to be limited, got %d", code)
	}
}
