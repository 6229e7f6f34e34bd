package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitByIPBlocksAfterBurst(t *testing.T) {
	t.Parallel()

	limited := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		RateLimitByIP(RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}),
	)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	t.Parallel()

	limited := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		RateLimitByIP(RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}),
	)

	first := httptest.NewRequest(http.MethodPost, "/", nil)
	first.RemoteAddr = "198.51.100.1:1111"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/", nil)
	second.RemoteAddr = "198.51.100.2:2222"
	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, second)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.77, 10.0.0.1")

	require.Equal(t, "203.0.113.77", clientIP(req))
}
