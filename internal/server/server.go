package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/handler"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/metrics"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/snapshot"
	"github.com/binderapp/binder/internal/sse"
	"github.com/binderapp/binder/internal/storage"
)

// Services bundles everything the router needs. Handlers receive only the
// services they use, so the bundle exists purely for wiring.
type Services struct {
	Collection collection.Service
	Catalog    catalog.Service
	Prefs      prefs.Service
	Snapshots  snapshot.Service
}

type Server struct {
	httpServer *http.Server
	store      storage.KV
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, store storage.KV, svcs Services, snapshotJob *snapshot.Job, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Card views: catalog joined with ownership, filtered and sorted
		r.Get("/cards", handler.HandleGetCards(svcs.Catalog, svcs.Collection, svcs.Prefs))

		// Statistics
		r.Route("/stats", func(r chi.Router) {
			r.Get("/", handler.HandleGetStats(svcs.Catalog, svcs.Collection, svcs.Prefs))
			r.Get("/filtered", handler.HandleGetFilteredStats(svcs.Catalog, svcs.Collection, svcs.Prefs))
		})

		// Collection ledger
		r.Route("/collection", func(r chi.Router) {
			r.Get("/", handler.HandleGetCollection(svcs.Collection))
			r.Get("/export", handler.HandleExportCollection(svcs.Collection))
			r.Post("/import", handler.HandleImportCollection(svcs.Collection))

			r.Route("/{cardID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetCollectionCard(svcs.Collection))
				r.Put("/", handler.HandleSetQuantities(svcs.Collection))
				r.Post("/wishlist", handler.HandleToggleWanted(svcs.Collection))
			})
		})

		// Preferences
		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", handler.HandleGetPreferences(svcs.Prefs))
			r.Put("/", handler.HandleUpdatePreferences(svcs.Prefs))
		})

		// Value snapshot history
		r.Get("/snapshots", handler.HandleGetSnapshots(svcs.Snapshots))

		// Live change events
		r.Get("/events/stream", sse.Handler(hub))

		// Admin routes
		adminHandler := handler.NewAdminHandler(snapshotJob, svcs.Catalog, svcs.Prefs)
		adminCacheHandler := handler.NewAdminCacheHandler(svcs.Catalog)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/snapshot", adminHandler.HandleTriggerSnapshot)
			r.Post("/catalog/refresh", adminHandler.HandleRefreshCatalog)

			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", adminCacheHandler.HandleGetCacheStats)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store: store,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush forwards to the underlying writer so SSE streaming works behind the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
