package httpx_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"forwarded for wins", map[string]string{
			"X-Forwarded-For": "203.0.113.1, 192.168.1.1",
			"X-Real-IP":       "203.0.113.9",
		}, "203.0.113.1"},
		{"real ip fallback", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestCompositeKeyExtractor(t *testing.T) {
	extractor := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)

	t.Run("anonymous falls back to ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		require.Equal(t, "192.168.1.1", extractor(req))
	})

	t.Run("user and ip joined", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		ctx := httpx.ContextWithClaims(req.Context(), jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "01HZZZZZZZZZZZZZZZZZZZZZZZ"},
		})
		require.Equal(t, "01HZZZZZZZZZZZZZZZZZZZZZZZ:192.168.1.1", extractor(req.WithContext(ctx)))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows the burst then blocks", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler())

		for i := range 3 {
			require.Equal(t, http.StatusOK, hit(h, "192.168.1.1:1").Code, "request %d", i+1)
		}

		rec := hit(h, "192.168.1.1:1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "rate_limit_exceeded", body["error"])
		require.NotEmpty(t, body["error_description"])
	})

	t.Run("keys are independent", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler())

		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1").Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1").Code)
	})

	t.Run("empty key is not limited", func(t *testing.T) {
		cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitMiddleware(cfg, func(*http.Request) string { return "" })(okHandler())

		for range 3 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
		}
	})

	t.Run("per user buckets", func(t *testing.T) {
		h := httpx.RateLimitByUser(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler())

		as := func(sub string) int {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1"
			ctx := httpx.ContextWithClaims(context.Background(), jwtx.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: sub},
			})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req.WithContext(ctx))
			return rec.Code
		}

		require.Equal(t, http.StatusOK, as("alice"))
		require.Equal(t, http.StatusTooManyRequests, as("alice"))
		require.Equal(t, http.StatusOK, as("bob"))
	})
}

func TestRateLimitProfiles(t *testing.T) {
	ordered := []httpx.RateLimitConfig{httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.PublicLimit}

	for i, cfg := range ordered {
		require.Positive(t, cfg.RequestsPerWindow)
		require.Positive(t, cfg.Window)
		require.Positive(t, cfg.Burst)
		if i > 0 {
			require.Less(t, ordered[i-1].RequestsPerWindow, cfg.RequestsPerWindow)
		}
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	tests := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{"defaults", nil, def},
		{"all overridden", map[string]string{
			"RATELIMIT_TEST_REQUESTS":   "200",
			"RATELIMIT_TEST_WINDOW_SEC": "30",
			"RATELIMIT_TEST_BURST":      "250",
		}, httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250}},
		{"burst only", map[string]string{"RATELIMIT_TEST_BURST": "100"},
			httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 100}},
		{"garbage ignored", map[string]string{
			"RATELIMIT_TEST_REQUESTS":   "invalid",
			"RATELIMIT_TEST_WINDOW_SEC": "-10",
			"RATELIMIT_TEST_BURST":      "0",
		}, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.want, httpx.ParseRateLimitFromEnv("TEST", def))
		})
	}
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1_000_000, Window: time.Minute, Burst: 1000}
	h := httpx.RateLimitByIP(cfg)(okHandler())

	for i := 0; b.Loop(); i++ {
		hit(h, fmt.Sprintf("192.168.%d.%d:1", i%255, (i/255)%255))
	}
}
