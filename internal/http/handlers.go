// Package http exposes the aggregated NBA data over a JSON API.
package http

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"nba-stats-service/internal/domain/games"
	domstandings "nba-stats-service/internal/domain/standings"
	"nba-stats-service/internal/domain/stats"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/providers/espn"
	"nba-stats-service/internal/scoreboard"
	"nba-stats-service/internal/search"
	"nba-stats-service/internal/standings"
)

// ScoreboardService resolves per-date scoreboards.
type ScoreboardService interface {
	ByDate(ctx context.Context, date string) (*games.Scoreboard, error)
}

// StandingsService resolves current or as-of standings.
type StandingsService interface {
	Current(ctx context.Context) (*domstandings.Standings, error)
	AsOf(ctx context.Context, date string) (*domstandings.Standings, error)
}

// StatsService resolves player and team stat lines.
type StatsService interface {
	PlayerLine(ctx context.Context, playerID string) (*stats.PlayerLine, error)
	TeamLine(ctx context.Context, team string) (*stats.TeamLine, error)
	RosterLines(ctx context.Context, team string) ([]stats.PlayerLine, error)
}

// LeadersService resolves the league's top scorers.
type LeadersService interface {
	TopScorers(ctx context.Context, limit int) ([]stats.PlayerLine, error)
	LastStatus() stats.FetchStatus
}

// SearchService finds players by name.
type SearchService interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// Handler wires HTTP routes to the aggregation services.
type Handler struct {
	scores    ScoreboardService
	standings StandingsService
	stats     StatsService
	leaders   LeadersService
	search    SearchService
	logger    *slog.Logger
	now       func() time.Time
}

func NewHandler(scores ScoreboardService, standings StandingsService, statsSvc StatsService, leaders LeadersService, searchSvc SearchService, logger *slog.Logger) *Handler {
	return &Handler{
		scores:    scores,
		standings: standings,
		stats:     statsSvc,
		leaders:   leaders,
		search:    searchSvc,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service holds no warm-up state, so
// readiness follows health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.Health(w, r)
}

// Scores returns all games for the date in the query string. The date is
// required: the viewer's "today" is a client-side decision, never the
// server's.
func (h *Handler) Scores(w nethttp.ResponseWriter, r *nethttp.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, r, nethttp.StatusBadRequest, "date query parameter is required (YYYY-MM-DD)", h.logger)
		return
	}

	board, err := h.scores.ByDate(r.Context(), date)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served scores", logging.FieldDate, board.GameDate, logging.FieldCount, len(board.Games))
	writeJSON(w, nethttp.StatusOK, board, h.logger)
}

// Standings returns league standings, optionally as of a past date.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	asOf := r.URL.Query().Get("asOf")

	var (
		table *domstandings.Standings
		err   error
	)
	if asOf == "" {
		table, err = h.standings.Current(r.Context())
	} else {
		table, err = h.standings.AsOf(r.Context(), asOf)
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, table, h.logger)
}

// TeamStats returns a team's season stat line. The team segment accepts a
// tricode, city, nickname, or full name.
func (h *Handler) TeamStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := chi.URLParam(r, "team")

	line, err := h.stats.TeamLine(r.Context(), team)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, line, h.logger)
}

// TeamRoster returns a team's roster with per-player stat lines, best scorer
// first.
func (h *Handler) TeamRoster(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := chi.URLParam(r, "team")

	lines, err := h.stats.RosterLines(r.Context(), team)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	payload := struct {
		Team    string             `json:"team"`
		Players []stats.PlayerLine `json:"players"`
		Count   int                `json:"count"`
	}{Team: team, Players: lines, Count: len(lines)}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// PlayerStats returns one player's merged season stat line.
func (h *Handler) PlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	line, err := h.stats.PlayerLine(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, line, h.logger)
}

// PlayerSearch finds players by name across every roster.
func (h *Handler) PlayerSearch(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.search.Search(r.Context(), query)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	payload := struct {
		Query   string          `json:"query"`
		Results []search.Result `json:"results"`
		Count   int             `json:"count"`
	}{Query: query, Results: results, Count: len(results)}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// Leaders returns the league's top scorers, capped at the limit parameter.
func (h *Handler) Leaders(w nethttp.ResponseWriter, r *nethttp.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be a positive integer", h.logger)
			return
		}
		limit = parsed
	}

	lines, err := h.leaders.TopScorers(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	status := h.leaders.LastStatus()
	payload := struct {
		Leaders []stats.PlayerLine `json:"leaders"`
		Source  stats.SourceTier   `json:"source"`
		Count   int                `json:"count"`
	}{Leaders: lines, Source: status.Source, Count: len(lines)}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// LeadersStatus reports which tier served the latest top-scorers fetch and
// what went wrong along the way.
func (h *Handler) LeadersStatus(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.leaders.LastStatus(), h.logger)
}

func (h *Handler) respondError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, scoreboard.ErrInvalidDate), errors.Is(err, standings.ErrInvalidDate):
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
	case errors.Is(err, search.ErrQueryTooShort):
		writeError(w, r, nethttp.StatusBadRequest, "query too short", h.logger)
	case errors.Is(err, espn.ErrUnknownTeam):
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
	case errors.Is(err, espn.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
	default:
		logging.Error(logger, "request failed upstream", err)
		writeError(w, r, nethttp.StatusServiceUnavailable, "data temporarily unavailable", h.logger)
	}
}
