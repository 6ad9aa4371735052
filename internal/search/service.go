// Package search finds players by name across every team roster.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"nba-stats-service/internal/config"
	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/teams"
)

const rosterFanoutConcurrency = 8

// ErrQueryTooShort rejects queries below the configured minimum length.
var ErrQueryTooShort = errors.New("search: query too short")

// RosterProvider supplies team rosters (ESPN).
type RosterProvider interface {
	Roster(ctx context.Context, team string) ([]players.Player, error)
}

// Result is one matched player with the relevance score that ranked it.
type Result struct {
	players.Player
	Score int `json:"score"`
}

// Service ranks rostered players against a name query. Rosters are fetched
// per search; the provider's cache keeps repeat fan-outs cheap.
type Service struct {
	rosters RosterProvider
	cfg     config.SearchConfig
	logger  *slog.Logger
}

func New(rosters RosterProvider, cfg config.SearchConfig, logger *slog.Logger) *Service {
	return &Service{rosters: rosters, cfg: cfg, logger: logger}
}

// Search returns players matching query, best match first, capped at the
// configured maximum. A team whose roster fetch fails is skipped rather than
// failing the whole search.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < s.cfg.MinQueryLen {
		return nil, ErrQueryTooShort
	}

	var mu sync.Mutex
	var results []Result

	fanout := pool.New().WithMaxGoroutines(rosterFanoutConcurrency).WithContext(ctx)
	for _, identity := range teams.All() {
		tricode := identity.Tricode
		fanout.Go(func(ctx context.Context) error {
			roster, err := s.rosters.Roster(ctx, tricode)
			if err != nil {
				logging.Warn(s.logger, "search roster fetch failed", err, logging.FieldTeam, tricode)
				return nil
			}
			matched := matchRoster(roster, tricode, query)
			if len(matched) == 0 {
				return nil
			}
			mu.Lock()
			results = append(results, matched...)
			mu.Unlock()
			return nil
		})
	}
	if err := fanout.Wait(); err != nil {
		return nil, err
	}

	// Tie-break on name so equal scores come back in a stable order
	// regardless of which roster fetch finished first.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DisplayName < results[j].DisplayName
	})
	if len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}
	return results, nil
}

func matchRoster(roster []players.Player, tricode, query string) []Result {
	var matched []Result
	for _, p := range roster {
		score := scorePlayer(p, query)
		if score == 0 {
			continue
		}
		if p.Tricode == "" {
			p.Tricode = tricode
		}
		matched = append(matched, Result{Player: p, Score: score})
	}
	return matched
}

// scorePlayer takes the best score across the player's display, first, and
// last names.
func scorePlayer(p players.Player, query string) int {
	best := scoreName(strings.ToLower(p.DisplayName), query)
	if s := scoreName(strings.ToLower(p.FirstName), query); s > best {
		best = s
	}
	if s := scoreName(strings.ToLower(p.LastName), query); s > best {
		best = s
	}
	return best
}
