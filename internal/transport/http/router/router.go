package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/handlers"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/middleware"
)

func New(
	cfg *config.Config,
	log zerolog.Logger,
	s *handlers.SuggestionsHandler,
	z *handlers.HealthHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics)
	}
	if cfg.TracingEnabled {
		r.Use(middleware.Tracing(cfg.ServiceName))
	}

	r.Get("/healthz", z.Healthz)
	r.Get("/readyz", z.Readyz)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/suggestions", s.Suggest)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cities", s.Suggest)
		r.Get("/cities/random", s.Random)
		r.Get("/countries", s.Countries)
		r.Get("/flags/{code}", s.Flag)
	})

	return r
}
