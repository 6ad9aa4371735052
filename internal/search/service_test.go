package search

import (
	"context"
	"errors"
	"testing"

	"nba-stats-service/internal/config"
	"nba-stats-service/internal/domain/players"
)

type stubRosters struct {
	rosters map[string][]players.Player
	failing map[string]bool
}

func (s *stubRosters) Roster(ctx context.Context, team string) ([]players.Player, error) {
	if s.failing[team] {
		return nil, errors.New("upstream unavailable")
	}
	return s.rosters[team], nil
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{MaxResults: 50, MinQueryLen: 2}
}

func TestSearchRanksExactAbovePartial(t *testing.T) {
	rosters := &stubRosters{rosters: map[string][]players.Player{
		"MEM": {{ID: "1", DisplayName: "Ja Morant", FirstName: "Ja", LastName: "Morant"}},
		"NYK": {{ID: "2", DisplayName: "Jalen Brunson", FirstName: "Jalen", LastName: "Brunson"}},
		"UTA": {{ID: "3", DisplayName: "Bojan Bogdanovic", FirstName: "Bojan", LastName: "Bogdanovic"}},
	}}
	svc := New(rosters, testSearchConfig(), nil)

	results, err := svc.Search(context.Background(), "ja")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Exact first name, then name prefix, then mid-word match.
	got := []string{results[0].ID, results[1].ID, results[2].ID}
	if got[0] != "1" || got[1] != "2" || got[2] != "3" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestSearchRejectsShortQuery(t *testing.T) {
	svc := New(&stubRosters{}, testSearchConfig(), nil)

	if _, err := svc.Search(context.Background(), "j"); !errors.Is(err, ErrQueryTooShort) {
		t.Fatalf("expected ErrQueryTooShort, got %v", err)
	}
	if _, err := svc.Search(context.Background(), "  a  "); !errors.Is(err, ErrQueryTooShort) {
		t.Fatalf("whitespace must not count toward length, got %v", err)
	}
}

func TestSearchSkipsFailedRosters(t *testing.T) {
	rosters := &stubRosters{
		rosters: map[string][]players.Player{
			"BOS": {{ID: "1", DisplayName: "Jayson Tatum", FirstName: "Jayson", LastName: "Tatum"}},
		},
		failing: map[string]bool{"LAL": true, "GSW": true},
	}
	svc := New(rosters, testSearchConfig(), nil)

	results, err := svc.Search(context.Background(), "tatum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "1" {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestSearchCapsResults(t *testing.T) {
	roster := make([]players.Player, 10)
	for i := range roster {
		roster[i] = players.Player{ID: string(rune('a' + i)), DisplayName: "Smith Player", LastName: "Smith"}
	}
	rosters := &stubRosters{rosters: map[string][]players.Player{"BOS": roster}}
	cfg := config.SearchConfig{MaxResults: 3, MinQueryLen: 2}
	svc := New(rosters, cfg, nil)

	results, err := svc.Search(context.Background(), "smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(results))
	}
}

func TestSearchFillsTeamTricode(t *testing.T) {
	rosters := &stubRosters{rosters: map[string][]players.Player{
		"DEN": {{ID: "1", DisplayName: "Nikola Jokic", LastName: "Jokic"}},
	}}
	svc := New(rosters, testSearchConfig(), nil)

	results, err := svc.Search(context.Background(), "jokic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Tricode != "DEN" {
		t.Fatalf("expected roster team tricode, got %+v", results)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	rosters := &stubRosters{rosters: map[string][]players.Player{
		"MIL": {{ID: "1", DisplayName: "Giannis Antetokounmpo", LastName: "Antetokounmpo"}},
	}}
	svc := New(rosters, testSearchConfig(), nil)

	results, err := svc.Search(context.Background(), "GIANNIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", results)
	}
}
