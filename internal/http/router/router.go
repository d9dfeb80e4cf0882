package router

import (
	"log/slog"
	"net/http"

	"dapka/internal/http/handlers"
	"dapka/internal/http/handlers/figures"
	"dapka/internal/http/handlers/records"
	"dapka/internal/http/handlers/stats"
	mw "dapka/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Stats   *stats.StatsHandler
	Records *records.RecordsHandler
	Figures *figures.FiguresHandler
}

// New wires the read-only analytics API over a loaded record table.
func New(log *slog.Logger, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", handlers.Healthcheck())
	router.Get("/statistics", h.Stats.GetStatistics)

	router.Route("/records", func(r chi.Router) {
		r.Get("/", h.Records.List)
		r.Get("/{reviewID}", h.Records.Get)
	})

	// URLFormat strips the extension, so /histogram.png lands here
	router.Get("/histogram", h.Figures.Histogram)
	router.Get("/scatterplot", h.Figures.Scatter)

	return router
}
