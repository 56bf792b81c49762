// Package server provides the HTTP API and live preview for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
)

// DefaultExportTimeout bounds a PDF export when none is configured
const DefaultExportTimeout = 90 * time.Second

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	handler       http.Handler
	store         *session.Store
	assist        *assist.Service
	exporter      *export.Exporter
	rateLimiter   *ratelimit.Limiter
	validator     *validator.Validate
	exportTimeout time.Duration
	verbose       bool
}

// Config holds server configuration
type Config struct {
	Port          int
	Store         *session.Store
	Assist        *assist.Service
	Exporter      *export.Exporter
	RateLimit     *ratelimit.Config
	ExportTimeout time.Duration
	Verbose       bool
}

// New creates a new server instance. A nil Store starts from the defaults.
func New(cfg Config) (*Server, error) {
	if cfg.Assist == nil {
		return nil, fmt.Errorf("assist service is required")
	}
	if cfg.Exporter == nil {
		return nil, fmt.Errorf("exporter is required")
	}
	if cfg.Store == nil {
		cfg.Store = session.NewStore()
	}
	if cfg.ExportTimeout <= 0 {
		cfg.ExportTimeout = DefaultExportTimeout
	}

	s := &Server{
		store:         cfg.Store,
		assist:        cfg.Assist,
		exporter:      cfg.Exporter,
		rateLimiter:   ratelimit.NewLimiter(cfg.RateLimit),
		validator:     validator.New(),
		exportTimeout: cfg.ExportTimeout,
		verbose:       cfg.Verbose,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Preview and catalog
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /options", s.handleOptions)

	// Resume model
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume", s.handleReplaceResume)
	mux.HandleFunc("POST /resume/reset", s.handleReset)
	mux.HandleFunc("PATCH /resume/personal-details", s.handleUpdatePersonalDetails)
	mux.HandleFunc("PUT /resume/fields/{field}", s.handleReplaceField)
	mux.HandleFunc("POST /resume/lists/{list}", s.handleAddItem)
	mux.HandleFunc("PUT /resume/lists/{list}/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /resume/lists/{list}/{id}", s.handleRemoveItem)

	// Customization
	mux.HandleFunc("GET /customization", s.handleGetCustomization)
	mux.HandleFunc("PATCH /customization", s.handleUpdateCustomization)

	// Generator
	mux.HandleFunc("POST /assist/generate", s.handleGenerate)
	mux.HandleFunc("POST /assist/keywords", s.handleKeywords)
	mux.HandleFunc("POST /assist/ats", s.handleATS)
	mux.HandleFunc("POST /assist/job-match", s.handleJobMatch)

	// Export
	mux.HandleFunc("GET /export/html", s.handleExportHTML)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)

	s.handler = middleware.RequestID(s.withRateLimit(s.withLogging(s.withCORS(mux))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.ExportTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := middleware.GetRequestID(r.Context())
		log.Printf("[%s] %s %s (%s)", r.Method, r.URL.Path, r.RemoteAddr, id)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v (%s)", r.Method, r.URL.Path, time.Since(start), id)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// extractClientID uses the remote IP as the client identifier.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 notification with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Round(time.Second).Seconds())
	if info.RetryAfter > 0 {
		if retryAfter < 1 {
			retryAfter = 1
		}
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, RateLimitNotification{
		Notification: Notification{
			Error:   "rate_limit_exceeded",
			Title:   "Too Many Requests",
			Message: "Rate limit exceeded. Please try again later.",
		},
		Limit:      info.Limit,
		Remaining:  info.Remaining,
		RetryAfter: retryAfter,
	})
}
