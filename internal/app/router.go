package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/unchin/unchin/internal/customers"
	"github.com/unchin/unchin/internal/dispatch"
	"github.com/unchin/unchin/internal/invoices"
	"github.com/unchin/unchin/internal/observability"
	"github.com/unchin/unchin/internal/platform/httpx"
	"github.com/unchin/unchin/internal/reports"
	"github.com/unchin/unchin/internal/shipments"
	"github.com/unchin/unchin/jobs"
)

// Pinger checks store connectivity; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	DB               Pinger
	CustomersHandler *customers.Handler
	ShipmentsHandler *shipments.Handler
	InvoicesHandler  *invoices.Handler
	ReportsHandler   *reports.Handler
	DispatchHandler  *dispatch.Handler
	JobHandler       *jobs.Handler
	Metrics          *observability.Metrics
}

type healthBody struct {
	Status string `json:"status"`
}

// NewRouter constructs the chi.Router with the API defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if params.DB != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := params.DB.Ping(ctx); err != nil {
				params.Logger.Warn("health check: database unreachable", slog.Any("error", err))
				httpx.JSON(w, http.StatusServiceUnavailable, healthBody{Status: "unavailable"})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, healthBody{Status: "ok"})
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	if params.CustomersHandler != nil {
		params.CustomersHandler.MountRoutes(r)
	}
	if params.ShipmentsHandler != nil {
		params.ShipmentsHandler.MountRoutes(r)
	}
	if params.InvoicesHandler != nil {
		params.InvoicesHandler.MountRoutes(r)
	}
	if params.ReportsHandler != nil {
		params.ReportsHandler.MountRoutes(r)
	}
	if params.DispatchHandler != nil {
		params.DispatchHandler.MountRoutes(r)
	}
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusNotFound, httpx.ErrorBody{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusMethodNotAllowed, httpx.ErrorBody{Error: "method not allowed"})
	})

	return r
}
