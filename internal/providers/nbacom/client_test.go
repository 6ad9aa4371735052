package nbacom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nba-stats-service/internal/config"
	"nba-stats-service/internal/domain/games"
	domteams "nba-stats-service/internal/domain/teams"
	"nba-stats-service/internal/fetch"
	"nba-stats-service/internal/metrics"
)

func newTestNBACom(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NBAComConfig{
		StaticBaseURL: srv.URL,
		StatsBaseURL:  srv.URL,
		Timeout:       2 * time.Second,
	}
	fetcher := fetch.New(fetch.Config{
		Source:   SourceName,
		Doer:     srv.Client(),
		Recorder: metrics.NewRecorder(),
	})
	client := NewClient(cfg, config.CacheConfig{}, fetcher)
	client.now = func() time.Time {
		return time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)
	}
	return client
}

func TestStandingsMapsSnapshot(t *testing.T) {
	client := newTestNBACom(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/staticData/standings/2024-11-20/standings.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"season": "2024-25",
			"seasonType": "Regular Season",
			"standings": [
				{"teamId": 1610612738, "teamCity": "Boston", "teamName": "Celtics", "teamTricode": "BOS", "conference": "East", "confRank": 1, "wins": 12, "losses": 3, "winPct": 0.8, "gamesBehind": 0, "homeWins": 7, "homeLosses": 1, "streak": "W4"},
				{"teamId": 1610612744, "teamCity": "Golden State", "teamName": "Warriors", "teamTricode": "GSW", "wins": 10, "losses": 5}
			]
		}`))
	}))

	table, err := client.Standings(context.Background(), "2024-11-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Season != "2024-25" {
		t.Fatalf("unexpected season %q", table.Season)
	}
	if len(table.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table.Entries))
	}
	if table.Entries[0].Home.Wins != 7 || table.Entries[0].Streak != "W4" {
		t.Fatalf("unexpected first entry %+v", table.Entries[0])
	}
	// Conference omitted upstream falls back to the static table.
	if table.Entries[1].Conference != domteams.West {
		t.Fatalf("expected GSW conference fallback to West, got %s", table.Entries[1].Conference)
	}
	if table.Entries[1].WinPct == 0 {
		t.Fatalf("expected win pct derived from record")
	}
}

func TestStandingsEmptySnapshotErrors(t *testing.T) {
	client := newTestNBACom(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"standings": []}`))
	}))

	if _, err := client.Standings(context.Background(), "2024-07-01"); err == nil {
		t.Fatalf("expected error for empty snapshot")
	}
}

func TestScoreboardMapsLiveGames(t *testing.T) {
	client := newTestNBACom(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/liveData/scoreboard/todaysScoreboard_00.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"scoreboard": {
			"gameDate": "2024-11-20",
			"games": [{
				"gameId": "0022400231",
				"gameStatus": 2,
				"gameStatusText": "Q3 4:12",
				"period": 3,
				"gameClock": "PT04M12.00S",
				"gameTimeUTC": "2024-11-21T00:30:00Z",
				"homeTeam": {"teamId": 1610612738, "teamCity": "Boston", "teamName": "Celtics", "teamTricode": "BOS", "score": 78, "wins": 12, "losses": 3},
				"awayTeam": {"teamId": 1610612751, "teamCity": "Brooklyn", "teamName": "Nets", "teamTricode": "BKN", "score": 70, "wins": 6, "losses": 9}
			}]
		}}`))
	}))

	board, err := client.Scoreboard(context.Background(), "2024-11-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.GameDate != "2024-11-20" || len(board.Games) != 1 {
		t.Fatalf("unexpected board %+v", board)
	}
	game := board.Games[0]
	if game.Status != games.StatusLive || game.Period != 3 {
		t.Fatalf("unexpected status %+v", game)
	}
	if game.Home.Tricode != "BOS" || game.Home.Score != 78 || game.Away.Wins != 6 {
		t.Fatalf("unexpected teams %+v", game)
	}
}

func TestScoreboardRejectsOtherDates(t *testing.T) {
	client := newTestNBACom(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"scoreboard": {"gameDate": "2024-11-20", "games": []}}`))
	}))

	if _, err := client.Scoreboard(context.Background(), "2024-11-19"); err == nil {
		t.Fatalf("expected error for non-current date")
	}
}

func TestLeagueAveragesParsesTable(t *testing.T) {
	client := newTestNBACom(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leaguedashplayerstats" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("Season"); got != "2024-25" {
			t.Fatalf("expected current season param, got %q", got)
		}
		if got := r.Header.Get("Origin"); got != "https://www.nba.com" {
			t.Fatalf("expected browser origin header, got %q", got)
		}
		w.Write([]byte(`{"resultSets": [{
			"name": "LeagueDashPlayerStats",
			"headers": ["PLAYER_ID", "PLAYER_NAME", "GP", "PTS", "REB", "AST", "FG_PCT"],
			"rowSet": [
				[201939, "Stephen Curry", 50, 26.4, 4.5, 6.1, 0.453],
				[1629029, "Luka Doncic", 48, 33.9, 9.2, 8.0, 0.487]
			]
		}]}`))
	}))

	averages, err := client.LeagueAverages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(averages) != 2 {
		t.Fatalf("expected 2 players, got %d", len(averages))
	}

	curry := averages["201939"]
	if curry == nil {
		t.Fatalf("expected curry entry")
	}
	byName := map[string]float64{}
	for _, e := range curry {
		byName[e.Name] = e.Value
	}
	if byName["avgPoints"] != 26.4 {
		t.Fatalf("unexpected points %v", byName)
	}
	// Fractional percentages scale to match the 0-100 convention.
	if byName["fieldGoalPct"] < 45.2 || byName["fieldGoalPct"] > 45.4 {
		t.Fatalf("expected scaled FG pct, got %v", byName["fieldGoalPct"])
	}
}

func TestLeagueAveragesMissingPlayerColumn(t *testing.T) {
	client := newTestNBACom(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets": [{"headers": ["PTS"], "rowSet": [[30.0]]}]}`))
	}))

	if _, err := client.LeagueAverages(context.Background()); err == nil {
		t.Fatalf("expected error for missing PLAYER_ID column")
	}
}
