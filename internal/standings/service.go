// Package standings aggregates league standings from the NBA.com CDN with
// ESPN fallbacks, recomputing conference ranks and games behind.
package standings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domain "nba-stats-service/internal/domain/standings"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/timeutil"
)

// ErrInvalidDate is returned for as-of dates that do not parse.
var ErrInvalidDate = errors.New("standings: invalid date")

const fullLeague = 30

// SnapshotProvider serves dated standings snapshots (NBA.com CDN).
type SnapshotProvider interface {
	Standings(ctx context.Context, date string) (*domain.Standings, error)
}

// TableProvider serves the current full-detail standings table (ESPN).
type TableProvider interface {
	Standings(ctx context.Context) ([]domain.Entry, error)
}

// ScanProvider serves per-team record snapshots extracted from a date's
// scoreboard, for reconstructing standings when no table source works.
type ScanProvider interface {
	RecordSnapshots(ctx context.Context, date string) ([]domain.Entry, error)
}

// Service resolves standings through three strategies in order: dated CDN
// snapshot, full standings table, then a scoreboard date scan.
type Service struct {
	snapshot SnapshotProvider
	table    TableProvider
	scan     ScanProvider
	scanDays int
	logger   *slog.Logger
	now      func() time.Time
}

func New(snapshot SnapshotProvider, table TableProvider, scan ScanProvider, scanDays int, logger *slog.Logger) *Service {
	return &Service{
		snapshot: snapshot,
		table:    table,
		scan:     scan,
		scanDays: scanDays,
		logger:   logger,
		now:      time.Now,
	}
}

// Current returns today's standings.
func (s *Service) Current(ctx context.Context) (*domain.Standings, error) {
	return s.resolve(ctx, s.now())
}

// AsOf returns standings as of a YYYY-MM-DD date, used to view past seasons.
func (s *Service) AsOf(ctx context.Context, date string) (*domain.Standings, error) {
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return s.resolve(ctx, parsed)
}

func (s *Service) resolve(ctx context.Context, asOf time.Time) (*domain.Standings, error) {
	date := timeutil.FormatDate(asOf)

	if s.snapshot != nil {
		table, err := s.snapshot.Standings(ctx, date)
		if err == nil {
			table.Entries = Rank(table.Entries)
			return table, nil
		}
		logging.Warn(s.logger, "standings snapshot source failed", err, logging.FieldDate, date)
	}

	if s.table != nil {
		entries, err := s.table.Standings(ctx)
		if err == nil {
			return s.assemble(asOf, entries), nil
		}
		logging.Warn(s.logger, "standings table source failed", err)
	}

	entries, err := s.scanRecords(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return s.assemble(asOf, entries), nil
}

// scanRecords walks back one day at a time, harvesting each team's record
// from scoreboard data. The first record seen for a team wins, since newer
// dates are visited first. Stops as soon as all 30 teams are covered.
func (s *Service) scanRecords(ctx context.Context, base time.Time) ([]domain.Entry, error) {
	seen := make(map[string]struct{}, fullLeague)
	var entries []domain.Entry
	var lastErr error

	for daysAgo := 0; daysAgo <= s.scanDays && len(entries) < fullLeague; daysAgo++ {
		date := timeutil.FormatDate(base.AddDate(0, 0, -daysAgo))
		snapshots, err := s.scan.RecordSnapshots(ctx, date)
		if err != nil {
			lastErr = err
			logging.Warn(s.logger, "standings scan date failed", err, logging.FieldDate, date)
			continue
		}
		for _, snap := range snapshots {
			if _, ok := seen[snap.Tricode]; ok {
				continue
			}
			seen[snap.Tricode] = struct{}{}
			entries = append(entries, snap)
		}
	}

	if len(entries) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("standings: all sources failed: %w", lastErr)
		}
		return nil, errors.New("standings: no records found in scan window")
	}
	logging.Info(s.logger, "standings reconstructed from scoreboard scan",
		logging.FieldCount, len(entries))
	return entries, nil
}

func (s *Service) assemble(asOf time.Time, entries []domain.Entry) *domain.Standings {
	return &domain.Standings{
		Season:     timeutil.SeasonLabel(asOf),
		SeasonType: "Regular Season",
		Entries:    Rank(entries),
	}
}
