package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/contact-inbox/internal/http/health"
	"github.com/janisto/contact-inbox/internal/http/respond"
	"github.com/janisto/contact-inbox/internal/http/v1/routes"
	"github.com/janisto/contact-inbox/internal/platform/config"
	"github.com/janisto/contact-inbox/internal/platform/firebase"
	applog "github.com/janisto/contact-inbox/internal/platform/logging"
	appmiddleware "github.com/janisto/contact-inbox/internal/platform/middleware"
	contactsvc "github.com/janisto/contact-inbox/internal/service/contact"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "configuration error", err)
	}

	fb := firebase.NewClient(firebase.Config{
		ProjectID:                    cfg.FirestoreProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	})
	fsClient, err := fb.Connect(ctx)
	if err != nil {
		applog.LogFatal(ctx, "firestore connection error", err)
	}
	defer func() {
		if err := fb.Close(); err != nil {
			applog.LogError(context.Background(), "firestore close error", err)
		}
	}()
	applog.LogInfo(ctx, "firestore connected", zap.String("project_id", cfg.FirestoreProjectID))

	var svc contactsvc.Service = contactsvc.NewFirestoreStore(fsClient, cfg.ContactsCollection)
	if cfg.ListCacheTTL > 0 {
		cached := contactsvc.NewCached(svc, cfg.ListCacheTTL)
		defer cached.Close()
		svc = cached
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	apiCfg := huma.DefaultConfig("Contact Inbox API", Version)
	apiCfg.DocsPath = "/api-docs"
	api := humachi.New(router, apiCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
