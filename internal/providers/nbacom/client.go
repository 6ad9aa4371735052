// Package nbacom fetches standings snapshots from the NBA.com CDN and league
// player averages from stats.nba.com.
package nbacom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"nba-stats-service/internal/config"
	"nba-stats-service/internal/domain/games"
	"nba-stats-service/internal/domain/standings"
	"nba-stats-service/internal/domain/stats"
	domteams "nba-stats-service/internal/domain/teams"
	"nba-stats-service/internal/fetch"
	"nba-stats-service/internal/teams"
	"nba-stats-service/internal/timeutil"
)

// leagueDashColumns maps stats.nba.com column headers onto canonical stat
// names. Percentages arrive as fractions and are scaled to match ESPN.
var leagueDashColumns = map[string]struct {
	name  string
	scale float64
}{
	"GP":      {"gamesPlayed", 1},
	"MIN":     {"avgMinutes", 1},
	"PTS":     {"avgPoints", 1},
	"REB":     {"avgRebounds", 1},
	"AST":     {"avgAssists", 1},
	"STL":     {"avgSteals", 1},
	"BLK":     {"avgBlocks", 1},
	"TOV":     {"avgTurnovers", 1},
	"FG_PCT":  {"fieldGoalPct", 100},
	"FG3_PCT": {"threePointFieldGoalPct", 100},
	"FT_PCT":  {"freeThrowPct", 100},
	"FGM":     {"avgFieldGoalsMade", 1},
	"FGA":     {"avgFieldGoalsAttempted", 1},
	"FG3M":    {"avgThreePointFieldGoalsMade", 1},
	"FG3A":    {"avgThreePointFieldGoalsAttempted", 1},
	"FTM":     {"avgFreeThrowsMade", 1},
	"FTA":     {"avgFreeThrowsAttempted", 1},
}

// Client fetches NBA.com data and maps it to domain models.
type Client struct {
	cfg     config.NBAComConfig
	ttl     config.CacheConfig
	fetcher *fetch.Client
	now     func() time.Time
}

func NewClient(cfg config.NBAComConfig, ttl config.CacheConfig, fetcher *fetch.Client) *Client {
	return &Client{
		cfg:     cfg,
		ttl:     ttl,
		fetcher: fetcher,
		now:     time.Now,
	}
}

func (c *Client) options(cacheTTL time.Duration) fetch.Options {
	return fetch.Options{
		Timeout:    c.cfg.Timeout,
		MaxRetries: c.cfg.MaxRetries,
		Headers:    browserHeaders,
		CacheTTL:   cacheTTL,
	}
}

// Standings returns the dated standings snapshot from the CDN. Entries keep
// the CDN's rows; ranks are recomputed downstream.
func (c *Client) Standings(ctx context.Context, date string) (*standings.Standings, error) {
	docURL := fmt.Sprintf("%s/staticData/standings/%s/standings.json", c.cfg.StaticBaseURL, date)

	var doc standingsDocument
	if err := c.fetcher.GetJSON(ctx, docURL, c.options(c.ttl.StandingsTTL), &doc); err != nil {
		return nil, err
	}
	if len(doc.Standings) == 0 {
		return nil, fmt.Errorf("nbacom: standings snapshot for %s is empty", date)
	}

	out := &standings.Standings{
		Season:     doc.Season,
		SeasonType: doc.SeasonType,
		Entries:    make([]standings.Entry, 0, len(doc.Standings)),
	}
	if out.Season == "" {
		out.Season = timeutil.SeasonLabel(c.now())
	}
	if out.SeasonType == "" {
		out.SeasonType = "Regular Season"
	}
	for _, row := range doc.Standings {
		if entry, ok := mapStandingRow(row); ok {
			out.Entries = append(out.Entries, entry)
		}
	}
	return out, nil
}

func mapStandingRow(row standingRow) (standings.Entry, bool) {
	tricode := teams.NormalizeTricode(row.TeamTricode)
	if tricode == "" {
		return standings.Entry{}, false
	}
	conference := domteams.Conference(row.Conference)
	if conference != domteams.East && conference != domteams.West {
		conference, _ = teams.ConferenceOf(tricode)
	}
	winPct := row.WinPct
	if winPct == 0 && row.Wins+row.Losses > 0 {
		winPct = float64(row.Wins) / float64(row.Wins+row.Losses)
	}
	streak := row.Streak
	if streak == "" {
		streak = "-"
	}
	return standings.Entry{
		TeamID:      row.TeamID,
		Tricode:     tricode,
		City:        row.TeamCity,
		Name:        row.TeamName,
		Conference:  conference,
		ConfRank:    row.ConfRank,
		Wins:        row.Wins,
		Losses:      row.Losses,
		WinPct:      winPct,
		GamesBehind: row.GamesBehind,
		Home:        standings.Record{Wins: row.HomeWins, Losses: row.HomeLosses},
		Away:        standings.Record{Wins: row.AwayWins, Losses: row.AwayLosses},
		Conf:        standings.Record{Wins: row.ConfWins, Losses: row.ConfLosses},
		LastTen:     standings.Record{Wins: row.LastTenWins, Losses: row.LastTenLosses},
		Streak:      streak,
	}, true
}

// Scoreboard returns games from the CDN's live scoreboard. The CDN only
// carries the current date, so any other requested date is an error and the
// caller's primary-source result stands.
func (c *Client) Scoreboard(ctx context.Context, date string) (*games.Scoreboard, error) {
	docURL := fmt.Sprintf("%s/liveData/scoreboard/todaysScoreboard_00.json", c.cfg.StaticBaseURL)

	var doc scoreboardDocument
	if err := c.fetcher.GetJSON(ctx, docURL, c.options(c.ttl.ScoreboardTTL), &doc); err != nil {
		return nil, err
	}
	if doc.Scoreboard.GameDate != date {
		return nil, fmt.Errorf("nbacom: live scoreboard covers %s, not %s", doc.Scoreboard.GameDate, date)
	}

	board := &games.Scoreboard{
		GameDate: doc.Scoreboard.GameDate,
		Games:    make([]games.Game, 0, len(doc.Scoreboard.Games)),
	}
	for _, g := range doc.Scoreboard.Games {
		board.Games = append(board.Games, mapLiveGame(g))
	}
	return board, nil
}

func mapLiveGame(g liveGame) games.Game {
	return games.Game{
		GameID:     g.GameID,
		StartTime:  g.GameTimeUTC,
		Status:     mapLiveStatus(g.GameStatus),
		StatusText: g.GameStatusText,
		Period:     g.Period,
		Clock:      g.GameClock,
		Home:       mapLiveTeam(g.HomeTeam),
		Away:       mapLiveTeam(g.AwayTeam),
	}
}

func mapLiveStatus(status int) games.Status {
	switch status {
	case 3:
		return games.StatusFinal
	case 2:
		return games.StatusLive
	default:
		return games.StatusScheduled
	}
}

func mapLiveTeam(t liveTeam) games.TeamScore {
	return games.TeamScore{
		TeamID:  t.TeamID,
		Tricode: teams.NormalizeTricode(t.TeamTricode),
		Name:    t.TeamName,
		City:    t.TeamCity,
		Score:   t.Score,
		Wins:    t.Wins,
		Losses:  t.Losses,
	}
}

// LeagueAverages returns per-game averages for every player in the league,
// keyed by NBA.com player ID.
func (c *Client) LeagueAverages(ctx context.Context) (map[string][]stats.Entry, error) {
	params := url.Values{}
	for k, v := range leagueDashParams {
		params.Set(k, v)
	}
	params.Set("Season", timeutil.SeasonLabel(c.now()))
	reqURL := fmt.Sprintf("%s/leaguedashplayerstats?%s", c.cfg.StatsBaseURL, params.Encode())

	var table statsTable
	if err := c.fetcher.GetJSON(ctx, reqURL, c.options(c.ttl.StatsTTL), &table); err != nil {
		return nil, err
	}
	if len(table.ResultSets) == 0 {
		return nil, fmt.Errorf("nbacom: league averages response has no result sets")
	}

	set := table.ResultSets[0]
	idColumn := -1
	for i, header := range set.Headers {
		if header == "PLAYER_ID" {
			idColumn = i
			break
		}
	}
	if idColumn < 0 {
		return nil, fmt.Errorf("nbacom: league averages missing PLAYER_ID column")
	}

	// Column order is stable per response; resolve once.
	type column struct {
		index int
		name  string
		label string
		scale float64
	}
	var columns []column
	for i, header := range set.Headers {
		if mapping, ok := leagueDashColumns[header]; ok {
			columns = append(columns, column{index: i, name: mapping.name, label: header, scale: mapping.scale})
		}
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].index < columns[j].index })

	out := make(map[string][]stats.Entry, len(set.RowSet))
	for _, row := range set.RowSet {
		if idColumn >= len(row) {
			continue
		}
		playerID := rawInt(row[idColumn])
		if playerID == 0 {
			continue
		}
		entries := make([]stats.Entry, 0, len(columns))
		for _, col := range columns {
			if col.index >= len(row) {
				continue
			}
			value, ok := rawFloat(row[col.index])
			if !ok {
				continue
			}
			entries = append(entries, stats.Entry{
				Name:        col.name,
				DisplayName: col.label,
				Value:       value * col.scale,
			})
		}
		out[strconv.Itoa(playerID)] = entries
	}
	return out, nil
}

func rawFloat(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

func rawInt(raw json.RawMessage) int {
	if f, ok := rawFloat(raw); ok {
		return int(f)
	}
	return 0
}
