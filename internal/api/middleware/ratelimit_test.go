package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter_Limit(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(60, 3)
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Limit(next)

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	// The burst is consumed first; the next request is rejected.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0.1:50000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:50001"))

	// A different client has its own budget.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:50000"))
}

func TestLoginRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(60, 1)
	defer rl.Stop()

	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")

	rl.mu.Lock()
	assert.Len(t, rl.limiters, 2)
	// Age one entry past the idle TTL.
	cl := rl.limiters["10.0.0.1"]
	cl.lastAccess = cl.lastAccess.Add(-3 * cleanupInterval)
	rl.mu.Unlock()

	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"host and port", "192.168.1.9:43210", "192.168.1.9"},
		{"ipv6 host and port", "[::1]:43210", "::1"},
		{"bare host", "192.168.1.9", "192.168.1.9"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = tc.remoteAddr
			assert.Equal(t, tc.want, clientIP(req))
		})
	}
}
