// Package httpapi serves the scoring service over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/godilite/intro-scorer/internal/observe"
	"github.com/godilite/intro-scorer/internal/report"
	"github.com/godilite/intro-scorer/internal/rubric"
	"github.com/godilite/intro-scorer/internal/service"
	"github.com/godilite/intro-scorer/pkg/cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultCacheTTL       = 10 * time.Minute
)

// Scorer is the part of the scoring service the HTTP API needs.
type Scorer interface {
	Score(ctx context.Context, req service.ScoreRequest) (report.ScoreReport, error)
	ScoreBatch(ctx context.Context, reqs []service.ScoreRequest) ([]report.ScoreReport, error)
	ScoreCombined(ctx context.Context, reqs []service.ScoreRequest) (report.ScoreReport, error)
	QuickStats(text string) service.TextStats
	Rubric() *rubric.Rubric
}

type Option func(*Server)

// WithCache caches single-transcript reports in store.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = store
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithMetrics records request latency in m and serves metricsHandler at
// /metrics.
func WithMetrics(m *observe.Metrics, metricsHandler http.Handler) Option {
	return func(s *Server) {
		s.metrics = m
		s.metricsHandler = metricsHandler
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.allowedOrigins = origins }
}

func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Server is the HTTP front end of the scoring service.
type Server struct {
	scorer         Scorer
	cache          cache.Store
	cacheTTL       time.Duration
	sfGroup        singleflight.Group
	metrics        *observe.Metrics
	metricsHandler http.Handler
	allowedOrigins []string
	timeout        time.Duration
	logger         *zap.Logger

	router http.Handler
	srv    *http.Server
}

// New builds the server and its routes.
func New(scorer Scorer, opts ...Option) *Server {
	if scorer == nil {
		panic("nil Scorer provided to httpapi.New")
	}
	s := &Server{
		scorer:   scorer,
		cacheTTL: defaultCacheTTL,
		timeout:  defaultRequestTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("http")
	s.router = s.routes()
	s.srv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, middleware.RealIP, s.accessLog, middleware.Recoverer)
	if s.metrics != nil {
		r.Use(observe.Middleware(s.metrics))
	}
	if len(s.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.handleHealth)
	if s.metricsHandler != nil {
		r.Handle("/metrics", s.metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(s.timeout))
		r.Get("/rubric", s.handleRubric)
		r.Post("/stats", s.handleStats)
		r.Post("/score", s.handleScore)
		r.Post("/score/batch", s.handleBatch)
		r.Post("/score/combined", s.handleCombined)
	})
	return r
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Serve accepts connections on lis until Shutdown.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("HTTP server starting", zap.String("addr", lis.Addr().String()))
	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.srv.Shutdown(ctx)
}
