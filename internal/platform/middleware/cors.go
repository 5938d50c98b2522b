package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware with permissive defaults. The public submission
// form is served from a separate origin, so cross-origin POSTs must work.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
		},
		MaxAge: 300,
	})
}
