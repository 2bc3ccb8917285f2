package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"campaign-engine/internal/core/port"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the decision use case, a validator for request bodies and a
// logger for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.DecisionUseCase
	stats    port.DecisionStats
	metrics  http.Handler
	checks   map[string]HealthCheck
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// Option configures optional routes of a Handler.
type Option func(*Handler)

// WithStats exposes decision statistics under /api/v1/stats/overview.
func WithStats(stats port.DecisionStats) Option {
	return func(h *Handler) {
		h.stats = stats
	}
}

// WithMetrics serves h under /metrics.
func WithMetrics(metrics http.Handler) Option {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

// WithHealthCheck adds a named dependency check to /health.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) {
		h.checks[name] = check
	}
}

// NewHandler creates a handler with all routes configured. Optional routes
// are only registered when their dependency is supplied.
func NewHandler(svc port.DecisionUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:      svc,
		checks:   make(map[string]HealthCheck),
		validate: newValidator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/budget/optimize", h.handleBudgetOptimize)
		r.Post("/content/generate", h.handleContentGenerate)
		r.Post("/ab-test/analyze", h.handleABTestAnalyze)
		r.Post("/predict/performance", h.handlePredictPerformance)
		r.Post("/audience/insights", h.handleAudienceInsights)
		if h.stats != nil {
			r.Get("/stats/overview", h.handleStatsOverview)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
