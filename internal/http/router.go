package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"nba-stats-service/internal/metrics"
)

// NewRouter registers all routes with logging, metrics, and CORS applied.
// The API is read-only; only GET crosses the CORS boundary.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(Logging(logger, recorder))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{nethttp.MethodGet},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}).Handler)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/scores", handler.Scores)
		r.Get("/standings", handler.Standings)
		r.Get("/teams/{team}/stats", handler.TeamStats)
		r.Get("/teams/{team}/roster", handler.TeamRoster)
		r.Get("/players/search", handler.PlayerSearch)
		r.Get("/players/{id}/stats", handler.PlayerStats)
		r.Get("/leaders", handler.Leaders)
		r.Get("/leaders/status", handler.LeadersStatus)
	})

	r.NotFound(func(w nethttp.ResponseWriter, req *nethttp.Request) {
		writeError(w, req, nethttp.StatusNotFound, "not found", logger)
	})

	return r
}
