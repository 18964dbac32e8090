package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Amplify/internal/config"
	"github.com/MikeSquared-Agency/Amplify/internal/metrics"
	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

func NewRouter(e *scoring.Engine, m *metrics.Metrics, limit config.RateLimitConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	if limit.Enabled() {
		r.Use(RateLimitMiddleware(limit.RPS, limit.Burst))
	}

	evaluate := NewEvaluateHandler(e, m, logger)
	explain := NewExplainHandler(e)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/evaluate", evaluate.Evaluate)

		r.Get("/scoring/weights", explain.Weights)
		r.Get("/scoring/lexicon", explain.Lexicon)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
