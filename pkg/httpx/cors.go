package httpx

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORS allows browser clients from the given origins. "*" or an empty list
// allows any origin.
func CORS(allowedOrigins []string) Middleware {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Retry-After", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Window"},
		AllowCredentials: false,
		MaxAge:           600,
	}

	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = allowedOrigins
	}

	c := cors.New(opts)
	return c.Handler
}
