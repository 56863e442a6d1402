package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lifelink/internal/platform/metrics"
	"lifelink/internal/platform/middleware"
	"lifelink/internal/transport/http/shared"
	dErrors "lifelink/pkg/domain-errors"
)

// Registrar attaches a handler's routes to a router. Every API vertical
// exposes one.
type Registrar interface {
	Register(r chi.Router)
}

// Pinger reports record-store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries everything the router wires together.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Store        Pinger
	JWTValidator middleware.JWTValidator

	Donors       Registrar
	Appointments Registrar
	Centers      Registrar
}

// NewRouter assembles the HTTP surface: the /api verticals behind the full
// middleware chain, plus /healthz and /metrics for operators.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(d.Metrics))

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		if d.JWTValidator != nil {
			api.Use(middleware.Identity(d.JWTValidator, d.Logger))
		}
		d.Donors.Register(api)
		d.Appointments.Register(api)
		d.Centers.Register(api)
	})

	r.Get("/healthz", handleHealth(d.Store))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	return r
}

func handleHealth(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				shared.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "record store unreachable", err))
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, "status", "ok")
	}
}
