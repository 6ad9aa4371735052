// Package leaders produces the league's top scorers through a tiered
// pipeline: the leaders API first, a full roster crawl second, and a curated
// fallback list last.
package leaders

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"nba-stats-service/internal/config"
	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/domain/stats"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/metrics"
	"nba-stats-service/internal/teams"
)

const rosterCrawlConcurrency = 8

// SourceProvider supplies leader candidate IDs and rosters (ESPN).
type SourceProvider interface {
	LeaderIDs(ctx context.Context, limit int) ([]string, error)
	Roster(ctx context.Context, team string) ([]players.Player, error)
}

// StatsFetcher resolves candidate IDs to merged stat lines.
type StatsFetcher interface {
	Lines(ctx context.Context, playerIDs []string) []stats.PlayerLine
}

// Pipeline resolves top scorers and tracks the outcome of the latest run.
// Status is diagnostic state, recomputed per fetch and never persisted.
type Pipeline struct {
	source   SourceProvider
	stats    StatsFetcher
	cfg      config.LeadersConfig
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu   sync.Mutex
	last stats.FetchStatus
}

func New(source SourceProvider, fetcher StatsFetcher, cfg config.LeadersConfig, logger *slog.Logger, recorder *metrics.Recorder) *Pipeline {
	return &Pipeline{
		source:   source,
		stats:    fetcher,
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
		last:     stats.FetchStatus{Source: stats.TierNone},
	}
}

// TopScorers returns up to limit players sorted by scoring average. A
// non-positive limit uses the configured default.
func (p *Pipeline) TopScorers(ctx context.Context, limit int) ([]stats.PlayerLine, error) {
	if limit <= 0 {
		limit = p.cfg.Limit
	}

	status := stats.FetchStatus{Source: stats.TierNone, FetchedAt: p.now()}

	for _, tier := range []struct {
		name       stats.SourceTier
		candidates func(context.Context) ([]string, error)
	}{
		{stats.TierLeadersAPI, func(ctx context.Context) ([]string, error) {
			// Fetch extra candidates so the minimum-PPG filter still leaves
			// a full list.
			return p.source.LeaderIDs(ctx, limit*2)
		}},
		{stats.TierRosterCrawl, p.crawlRosters},
		{stats.TierStaticFallback, func(context.Context) ([]string, error) {
			return fallbackPlayerIDs, nil
		}},
	} {
		status.Attempts++
		ids, err := tier.candidates(ctx)
		if err != nil {
			status.Errors = append(status.Errors, string(tier.name)+": "+err.Error())
			logging.Warn(p.logger, "leaders tier failed", err, logging.FieldTier, string(tier.name))
			continue
		}
		if len(ids) == 0 {
			status.Errors = append(status.Errors, string(tier.name)+": no candidates")
			continue
		}

		lines := p.stats.Lines(ctx, ids)
		if len(lines) == 0 {
			status.Errors = append(status.Errors, string(tier.name)+": no stat lines resolved")
			continue
		}

		result, filtered := p.finalize(lines, limit)
		status.Source = tier.name
		status.PlayerCount = len(result)
		status.Filtered = filtered
		p.store(status)
		p.recorder.RecordLeadersTier(string(tier.name), len(result))
		logging.Info(p.logger, "top scorers resolved",
			logging.FieldTier, string(tier.name), logging.FieldCount, len(result))
		return result, nil
	}

	p.store(status)
	p.recorder.RecordLeadersTier(string(stats.TierNone), 0)
	return nil, errors.New("leaders: every tier failed")
}

// LastStatus returns a copy of the most recent fetch outcome.
func (p *Pipeline) LastStatus() stats.FetchStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *Pipeline) store(status stats.FetchStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = status
}

// finalize drops players below the scoring threshold or with no known
// scoring average, sorts by PPG descending, and truncates to limit. Returns
// the kept lines and how many were filtered out.
func (p *Pipeline) finalize(lines []stats.PlayerLine, limit int) ([]stats.PlayerLine, int) {
	kept := make([]stats.PlayerLine, 0, len(lines))
	for _, line := range lines {
		if !line.Points.Known || line.Points.Value < p.cfg.MinPPG {
			continue
		}
		kept = append(kept, line)
	}
	filtered := len(lines) - len(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Points.Value > kept[j].Points.Value
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, filtered
}

// crawlRosters collects every rostered player ID across the league.
func (p *Pipeline) crawlRosters(ctx context.Context) ([]string, error) {
	var mu sync.Mutex
	var ids []string

	crawl := pool.New().WithMaxGoroutines(rosterCrawlConcurrency).WithContext(ctx)
	for _, identity := range teams.All() {
		tricode := identity.Tricode
		crawl.Go(func(ctx context.Context) error {
			roster, err := p.source.Roster(ctx, tricode)
			if err != nil {
				// A single missing roster should not sink the crawl.
				logging.Warn(p.logger, "roster crawl team failed", err, logging.FieldTeam, tricode)
				return nil
			}
			mu.Lock()
			for _, player := range roster {
				ids = append(ids, player.ID)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := crawl.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}
