package middleware

import "net/http"

// Vary returns middleware that adds Accept to the Vary header on all responses.
// Content negotiation selects between JSON and CBOR, so caches must key on the
// Accept header. The CORS middleware separately adds "Origin" to Vary.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
