// Package playerstats merges per-player and per-team season averages from
// multiple sources into normalized stat lines.
package playerstats

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/domain/stats"
	"nba-stats-service/internal/logging"
)

// Provider is the primary stats source (ESPN).
type Provider interface {
	AthleteSummary(ctx context.Context, playerID string) (players.Player, []stats.Entry, error)
	WebAverages(ctx context.Context, playerID string) ([]stats.Entry, error)
	Roster(ctx context.Context, team string) ([]players.Player, error)
	TeamStatistics(ctx context.Context, team string) (*stats.TeamLine, error)
}

// LeagueProvider supplies league-wide per-game averages keyed by player ID,
// used as a last fill for stats the primary source omits.
type LeagueProvider interface {
	LeagueAverages(ctx context.Context) (map[string][]stats.Entry, error)
}

// Service merges stat entries source by source: the summary endpoint is
// authoritative, later sources only fill missing names. A stat no source
// reports stays unknown rather than becoming zero.
type Service struct {
	espn       Provider
	league     LeagueProvider
	batchSize  int
	batchDelay time.Duration
	logger     *slog.Logger
}

func New(espn Provider, league LeagueProvider, batchSize int, batchDelay time.Duration, logger *slog.Logger) *Service {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Service{
		espn:       espn,
		league:     league,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		logger:     logger,
	}
}

// PlayerLine returns a player's merged season stat line.
func (s *Service) PlayerLine(ctx context.Context, playerID string) (*stats.PlayerLine, error) {
	player, summary, err := s.espn.AthleteSummary(ctx, playerID)
	if err != nil {
		return nil, err
	}

	supplements := make([][]stats.Entry, 0, 2)
	if web, err := s.espn.WebAverages(ctx, playerID); err == nil {
		supplements = append(supplements, web)
	} else {
		logging.Warn(s.logger, "web averages unavailable", err, logging.FieldPlayer, playerID)
	}
	if s.league != nil {
		if averages, err := s.league.LeagueAverages(ctx); err == nil {
			supplements = append(supplements, averages[playerID])
		} else {
			logging.Warn(s.logger, "league averages unavailable", err, logging.FieldPlayer, playerID)
		}
	}

	line := lineFor(player)
	line.ApplyEntries(stats.MergeEntries(summary, supplements...))
	return line, nil
}

// TeamLine returns a team's season stat line.
func (s *Service) TeamLine(ctx context.Context, team string) (*stats.TeamLine, error) {
	return s.espn.TeamStatistics(ctx, team)
}

// Roster returns a team's roster without stats.
func (s *Service) Roster(ctx context.Context, team string) ([]players.Player, error) {
	return s.espn.Roster(ctx, team)
}

// RosterLines returns a team's roster with each player's stat line, sorted
// by scoring average. Players whose stat fetch fails keep unknown stats.
func (s *Service) RosterLines(ctx context.Context, team string) ([]stats.PlayerLine, error) {
	roster, err := s.espn.Roster(ctx, team)
	if err != nil {
		return nil, err
	}

	lines := s.batchLines(ctx, roster)
	sortByPoints(lines)
	return lines, nil
}

// Lines fetches stat lines for specific player IDs, preserving input order
// for players whose fetch succeeds and dropping the rest.
func (s *Service) Lines(ctx context.Context, playerIDs []string) []stats.PlayerLine {
	placeholders := make([]players.Player, len(playerIDs))
	for i, id := range playerIDs {
		placeholders[i] = players.Player{ID: id}
	}
	all := s.batchLines(ctx, placeholders)

	kept := make([]stats.PlayerLine, 0, len(all))
	for _, line := range all {
		if line.Name != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

func lineFor(p players.Player) *stats.PlayerLine {
	return &stats.PlayerLine{
		PlayerID: p.ID,
		Name:     p.DisplayName,
		Tricode:  p.Tricode,
		Position: p.Position,
		Jersey:   p.Jersey,
	}
}

// sortByPoints orders lines by known PPG descending; players without a known
// scoring average sink to the bottom in their incoming order.
func sortByPoints(lines []stats.PlayerLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Points.Known != lines[j].Points.Known {
			return lines[i].Points.Known
		}
		return lines[i].Points.Value > lines[j].Points.Value
	})
}
