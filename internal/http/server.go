// Package http exposes the JSON API the finance dashboard is built on.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"fintrack/internal/backend"
	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/insight"
	"fintrack/internal/log"
)

// Options tune the derived views the API serves. Zero values fall back to
// the documented defaults.
type Options struct {
	// ExpenseTopCategories caps the expense breakdown donut.
	ExpenseTopCategories int
	// ExpenseWindowDays bounds the daily bar chart and the expense views.
	ExpenseWindowDays int
	// IncomeWindowDays bounds the income breakdown pie.
	IncomeWindowDays int
	// InsightTimeout bounds a single gateway call.
	InsightTimeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.ExpenseTopCategories == 0 {
		o.ExpenseTopCategories = 6
	}
	if o.ExpenseWindowDays <= 0 {
		o.ExpenseWindowDays = 30
	}
	if o.IncomeWindowDays <= 0 {
		o.IncomeWindowDays = 60
	}
	if o.InsightTimeout <= 0 {
		o.InsightTimeout = 30 * time.Second
	}
}

type Server struct {
	http.Server
	store       backend.Backend
	gateway     insight.Gateway
	opts        Options
	rateLimiter *rateLimiter
	metrics     *securityMetrics

	// txCache holds the full ordered transaction list; every derived view
	// starts from it. Mutations purge it.
	txCache      *cache.LRUCache[[]core.Transaction]
	cacheManager *cache.Manager

	// analyzeGroup collapses concurrent analyze calls into one gateway
	// request.
	analyzeGroup singleflight.Group

	shutdownOnce sync.Once
}

const txCacheKey = "transactions"

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, store backend.Backend, gateway insight.Gateway, opts Options) *Server {
	opts.applyDefaults()
	if gateway == nil {
		gateway = insight.Disabled{}
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:        store,
		gateway:      gateway,
		opts:         opts,
		rateLimiter:  newRateLimiter(),
		metrics:      &securityMetrics{},
		txCache:      cache.NewLRUCache[[]core.Transaction](4, 30*time.Second),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.txCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("POST /api/auth/login", s.secured(s.handleLogin))
	mux.HandleFunc("POST /api/auth/register", s.secured(s.handleRegister))
	mux.HandleFunc("POST /api/auth/logout", s.secured(s.handleLogout))
	mux.HandleFunc("GET /api/auth/me", s.secured(s.handleMe))

	mux.HandleFunc("GET /api/transactions", s.secured(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.secured(s.handleCreateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.secured(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/stats", s.secured(s.handleStats))

	mux.HandleFunc("GET /api/charts/expense-breakdown", s.secured(s.handleExpenseBreakdown))
	mux.HandleFunc("GET /api/charts/income-breakdown", s.secured(s.handleIncomeBreakdown))
	mux.HandleFunc("GET /api/charts/daily", s.secured(s.handleDailyChart))
	mux.HandleFunc("GET /api/charts/overview", s.secured(s.handleOverviewChart))

	mux.HandleFunc("POST /api/insights/analyze", s.secured(s.handleAnalyze))
	mux.HandleFunc("POST /api/insights/suggest", s.secured(s.handleSuggest))

	mux.HandleFunc("GET /api/export", s.secured(s.handleExport))

	// Requests carry a component-tagged logger in their context.
	appLogger := log.New(log.DefaultConfig()).WithComponent(log.ComponentHTTP)
	s.Server.Handler = log.Middleware(appLogger)(mux)

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// secured adds security headers, rate limiting, and request logging.
func (s *Server) secured(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		if detectSuspiciousRequest(r, s.metrics) {
			slog.WarnContext(ctx, "Suspicious request pattern",
				"request_id", requestID,
				"client_ip", clientIP,
				"url", r.URL.Path)
		}

		// Mutations and gateway calls are the expensive paths.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP, s.metrics) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := s.store.List(ctx); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("storage unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// transactions returns the full ordered list, serving from cache when fresh.
func (s *Server) transactions(ctx context.Context) ([]core.Transaction, error) {
	if ts, found := s.txCache.Get(txCacheKey); found {
		result := make([]core.Transaction, len(ts))
		copy(result, ts)
		return result, nil
	}

	ts, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.txCache.Set(txCacheKey, ts)
	return ts, nil
}

func (s *Server) invalidateTransactions() {
	s.txCache.Purge()
}
