// Package respond renders the API's uniform result shape for responses that
// never reach a huma handler: unknown routes, wrong methods and panics.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"

	applog "github.com/janisto/contact-inbox/internal/platform/logging"
)

const (
	msgNotFound         = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternalError    = "Internal server error"
)

// Result is the uniform failure payload, matching the shape returned by the
// contact operations.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Write serializes a failure Result to the ResponseWriter.
func Write(w http.ResponseWriter, status int, message string) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(Result{Success: false, Message: message})
}

// NotFoundHandler emits a uniform 404 response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := Write(w, http.StatusNotFound, msgNotFound); err != nil {
			applog.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits a uniform 405 response including the Allow header.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		if err := Write(w, http.StatusMethodNotAllowed, msgMethodNotAllowed); err != nil {
			applog.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into uniform 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					applog.LogError(r.Context(), "panic recovered",
						fmt.Errorf("%w\n%s", err, debug.Stack()))
					if writeErr := Write(w, http.StatusInternalServerError, msgInternalError); writeErr != nil {
						applog.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
