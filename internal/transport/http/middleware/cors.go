package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets browser search pages on the listed origins call the read-only API.
// An empty list disables CORS headers entirely.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderXRequestID},
		ExposedHeaders: []string{HeaderXRequestID},
		MaxAge:         300,
	})
}
