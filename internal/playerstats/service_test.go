package playerstats

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/domain/stats"
)

type stubProvider struct {
	summaries map[string][]stats.Entry
	identity  map[string]players.Player
	web       map[string][]stats.Entry
	webErr    error
	roster    []players.Player
	rosterErr error
	team      *stats.TeamLine
	calls     atomic.Int32
}

func (s *stubProvider) AthleteSummary(ctx context.Context, id string) (players.Player, []stats.Entry, error) {
	s.calls.Add(1)
	entries, ok := s.summaries[id]
	if !ok {
		return players.Player{}, nil, errors.New("athlete not found")
	}
	return s.identity[id], entries, nil
}

func (s *stubProvider) WebAverages(ctx context.Context, id string) ([]stats.Entry, error) {
	if s.webErr != nil {
		return nil, s.webErr
	}
	return s.web[id], nil
}

func (s *stubProvider) Roster(ctx context.Context, team string) ([]players.Player, error) {
	if s.rosterErr != nil {
		return nil, s.rosterErr
	}
	return s.roster, nil
}

func (s *stubProvider) TeamStatistics(ctx context.Context, team string) (*stats.TeamLine, error) {
	return s.team, nil
}

type stubLeague struct {
	averages map[string][]stats.Entry
	err      error
}

func (s *stubLeague) LeagueAverages(ctx context.Context) (map[string][]stats.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.averages, nil
}

func TestPlayerLineMergesFillOnly(t *testing.T) {
	provider := &stubProvider{
		identity: map[string]players.Player{
			"1": {ID: "1", DisplayName: "Test Guard", Tricode: "BOS", Position: "PG", Jersey: "4"},
		},
		summaries: map[string][]stats.Entry{
			"1": {{Name: stats.NamePoints, Value: 28.5}},
		},
		web: map[string][]stats.Entry{
			"1": {
				{Name: stats.NamePoints, Value: 11.1}, // must not overwrite summary
				{Name: stats.NameRebounds, Value: 7.2},
			},
		},
	}
	league := &stubLeague{averages: map[string][]stats.Entry{
		"1": {
			{Name: stats.NameRebounds, Value: 2.2}, // must not overwrite web fill
			{Name: stats.NameAssists, Value: 6.8},
		},
	}}
	svc := New(provider, league, 5, 0, nil)

	line, err := svc.PlayerLine(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Points.Value != 28.5 {
		t.Fatalf("summary must win, got %v", line.Points.Value)
	}
	if line.Rebounds.Value != 7.2 {
		t.Fatalf("web fill must win over league fill, got %v", line.Rebounds.Value)
	}
	if line.Assists.Value != 6.8 {
		t.Fatalf("league fill expected, got %v", line.Assists.Value)
	}
	if line.Name != "Test Guard" || line.Tricode != "BOS" {
		t.Fatalf("unexpected identity %+v", line)
	}
}

func TestPlayerLineMissingStatStaysUnknown(t *testing.T) {
	provider := &stubProvider{
		identity:  map[string]players.Player{"1": {ID: "1", DisplayName: "Bench Player"}},
		summaries: map[string][]stats.Entry{"1": {{Name: stats.NamePoints, Value: 0}}},
		webErr:    errors.New("web down"),
	}
	svc := New(provider, &stubLeague{err: errors.New("league down")}, 5, 0, nil)

	line, err := svc.PlayerLine(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Reported zero is a known zero.
	if !line.Points.Known || line.Points.Value != 0 {
		t.Fatalf("expected known zero points, got %+v", line.Points)
	}
	// Never-reported stat stays unknown instead of collapsing to zero.
	if line.Rebounds.Known {
		t.Fatalf("expected unknown rebounds, got %+v", line.Rebounds)
	}
}

func TestRosterLinesKeepsFailedPlayers(t *testing.T) {
	provider := &stubProvider{
		roster: []players.Player{
			{ID: "1", DisplayName: "Star", Tricode: "BOS"},
			{ID: "2", DisplayName: "No Page", Tricode: "BOS", Position: "C"},
		},
		identity:  map[string]players.Player{"1": {ID: "1", DisplayName: "Star", Tricode: "BOS"}},
		summaries: map[string][]stats.Entry{"1": {{Name: stats.NamePoints, Value: 25}}},
	}
	svc := New(provider, nil, 2, 0, nil)

	lines, err := svc.RosterLines(context.Background(), "BOS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected both players, got %d", len(lines))
	}
	if lines[0].PlayerID != "1" || !lines[0].Points.Known {
		t.Fatalf("expected scorer first, got %+v", lines[0])
	}
	// Failed fetch keeps roster identity with unknown stats.
	if lines[1].PlayerID != "2" || lines[1].Name != "No Page" || lines[1].Points.Known {
		t.Fatalf("unexpected fallback line %+v", lines[1])
	}
}

func TestRosterLinesSortsByPoints(t *testing.T) {
	provider := &stubProvider{
		roster: []players.Player{
			{ID: "low"}, {ID: "high"}, {ID: "mid"},
		},
		identity: map[string]players.Player{
			"low":  {ID: "low", DisplayName: "Low"},
			"high": {ID: "high", DisplayName: "High"},
			"mid":  {ID: "mid", DisplayName: "Mid"},
		},
		summaries: map[string][]stats.Entry{
			"low":  {{Name: stats.NamePoints, Value: 5}},
			"high": {{Name: stats.NamePoints, Value: 30}},
			"mid":  {{Name: stats.NamePoints, Value: 15}},
		},
	}
	svc := New(provider, nil, 3, 0, nil)

	lines, err := svc.RosterLines(context.Background(), "BOS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{lines[0].PlayerID, lines[1].PlayerID, lines[2].PlayerID}
	if got[0] != "high" || got[1] != "mid" || got[2] != "low" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestLinesDropsFailedFetches(t *testing.T) {
	provider := &stubProvider{
		identity:  map[string]players.Player{"1": {ID: "1", DisplayName: "Only"}},
		summaries: map[string][]stats.Entry{"1": {{Name: stats.NamePoints, Value: 20}}},
	}
	svc := New(provider, nil, 2, 0, nil)

	lines := svc.Lines(context.Background(), []string{"1", "missing"})
	if len(lines) != 1 || lines[0].PlayerID != "1" {
		t.Fatalf("expected only successful fetches, got %+v", lines)
	}
}

func TestPlayerLineErrorPropagates(t *testing.T) {
	svc := New(&stubProvider{}, nil, 2, 0, nil)

	if _, err := svc.PlayerLine(context.Background(), "absent"); err == nil {
		t.Fatalf("expected error for unknown player")
	}
}
