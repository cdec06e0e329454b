package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/projecthub/pkg/idx"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// PathRedactor rewrites a request path before it is logged.
type PathRedactor func(path string) string

// HTTPMiddleware attaches a request scoped logger to the context and emits
// one access line per request once the handler returns. Paths that carry
// secrets are passed through redact when it is non-nil.
func HTTPMiddleware(base *slog.Logger, redact PathRedactor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = idx.New().String()
			}
			rw.Header().Set(RequestIDHeader, reqID)

			path := r.URL.Path
			if redact != nil {
				path = redact(path)
			}

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", path,
				"remote_addr", r.RemoteAddr,
			)

			next.ServeHTTP(rw, r.WithContext(WithContext(r.Context(), logger)))

			logger.Info("http_request",
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
