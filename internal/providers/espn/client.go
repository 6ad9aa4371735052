// Package espn fetches scoreboards, standings, rosters, and player statistics
// from ESPN's unauthenticated JSON endpoints and maps them to domain models.
package espn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nba-stats-service/internal/config"
	"nba-stats-service/internal/domain/games"
	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/domain/standings"
	"nba-stats-service/internal/domain/stats"
	domteams "nba-stats-service/internal/domain/teams"
	"nba-stats-service/internal/fetch"
	"nba-stats-service/internal/teams"
	"nba-stats-service/internal/timeutil"
)

var (
	// ErrUnknownTeam is returned when a team reference resolves to no franchise.
	ErrUnknownTeam = errors.New("espn: unknown team")
	// ErrNotFound is returned when an athlete has no detail page.
	ErrNotFound = errors.New("espn: athlete not found")
)

// Client fetches NBA data from ESPN and maps it to domain models.
type Client struct {
	cfg     config.ESPNConfig
	ttl     config.CacheConfig
	fetcher *fetch.Client
	now     func() time.Time
}

// NewClient constructs an ESPN client. The fetcher carries the retry, rate
// limit, and cache behavior; the client only knows URLs and shapes.
func NewClient(cfg config.ESPNConfig, ttl config.CacheConfig, fetcher *fetch.Client) *Client {
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
		CacheTTL:   cacheTTL,
	}
}

// Scoreboard returns all games for a YYYY-MM-DD date.
func (c *Client) Scoreboard(ctx context.Context, date string) (*games.Scoreboard, error) {
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.cfg.SiteBaseURL, timeutil.CompactDate(date))

	var resp scoreboardResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.ScoreboardTTL), &resp); err != nil {
		return nil, err
	}
	return mapScoreboard(resp, date), nil
}

// Standings returns unranked standings entries from the dedicated standings
// endpoint, grouped rows flattened across both conferences.
func (c *Client) Standings(ctx context.Context) ([]standings.Entry, error) {
	url := c.cfg.SiteBaseURL + "/standings"

	var resp standingsResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.StandingsTTL), &resp); err != nil {
		return nil, err
	}
	if len(resp.Children) == 0 {
		return nil, fmt.Errorf("espn: standings response has no conference groups")
	}

	var entries []standings.Entry
	for _, group := range resp.Children {
		conference := domteams.West
		if group.Name == easternConference {
			conference = domteams.East
		}
		for _, row := range group.Standings.Entries {
			if entry, ok := mapStandingEntry(row, conference); ok {
				entries = append(entries, entry)
			}
		}
	}
	return entries, nil
}

// RecordSnapshots extracts unranked per-team records from the scoreboard for
// a date. Used by the standings date-scan fallback.
func (c *Client) RecordSnapshots(ctx context.Context, date string) ([]standings.Entry, error) {
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.cfg.SiteBaseURL, timeutil.CompactDate(date))

	var resp scoreboardResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.StandingsTTL), &resp); err != nil {
		return nil, err
	}

	var snapshots []standings.Entry
	for _, event := range resp.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		for _, competitor := range event.Competitions[0].Competitors {
			if snap, ok := mapRecordSnapshot(competitor); ok {
				snapshots = append(snapshots, snap)
			}
		}
	}
	return snapshots, nil
}

// Roster returns the current roster for a team reference.
func (c *Client) Roster(ctx context.Context, team string) ([]players.Player, error) {
	espnID, ok := teams.ESPNTeamID(team)
	if !ok {
		return nil, ErrUnknownTeam
	}
	identity, _ := teams.Resolve(team)
	url := fmt.Sprintf("%s/teams/%d/roster", c.cfg.SiteBaseURL, espnID)

	var resp rosterResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.RosterTTL), &resp); err != nil {
		return nil, err
	}

	roster := make([]players.Player, 0, len(resp.Athletes))
	for _, athlete := range resp.Athletes {
		player := mapAthlete(athlete, identity.Tricode)
		if player.ID == "" {
			continue
		}
		roster = append(roster, player)
	}
	return roster, nil
}

// AthleteSummary returns an athlete's identity and summary stat entries from
// the detail endpoint.
func (c *Client) AthleteSummary(ctx context.Context, playerID string) (players.Player, []stats.Entry, error) {
	url := fmt.Sprintf("%s/athletes/%s", c.cfg.CommonBaseURL, playerID)

	var resp athleteDetailResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.StatsTTL), &resp); err != nil {
		if fetch.IsNotFound(err) {
			return players.Player{}, nil, ErrNotFound
		}
		return players.Player{}, nil, err
	}
	if resp.Athlete == nil {
		return players.Player{}, nil, ErrNotFound
	}

	player := mapAthlete(*resp.Athlete, "")
	return player, summaryEntries(resp.Athlete.StatsSummary.Statistics), nil
}

// WebAverages returns per-game averages from the web stats endpoint, used to
// fill stats the summary endpoint omits.
func (c *Client) WebAverages(ctx context.Context, playerID string) ([]stats.Entry, error) {
	url := fmt.Sprintf("%s/athletes/%s/stats", c.cfg.WebBaseURL, playerID)

	var resp webStatsResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.StatsTTL), &resp); err != nil {
		return nil, err
	}
	return webAverageEntries(resp), nil
}

// TeamStatistics returns a team's season stat line.
func (c *Client) TeamStatistics(ctx context.Context, team string) (*stats.TeamLine, error) {
	espnID, ok := teams.ESPNTeamID(team)
	if !ok {
		return nil, ErrUnknownTeam
	}
	identity, _ := teams.Resolve(team)
	url := fmt.Sprintf("%s/teams/%d/statistics", c.cfg.SiteBaseURL, espnID)

	var resp teamStatsResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.StatsTTL), &resp); err != nil {
		return nil, err
	}

	line := &stats.TeamLine{
		TeamID:  espnID,
		Tricode: identity.Tricode,
		Name:    identity.FullName,
	}
	line.ApplyEntries(teamStatEntries(resp))
	return line, nil
}

// LeaderIDs returns athlete IDs for the season's points-per-game leaders, in
// leader order, capped at limit.
func (c *Client) LeaderIDs(ctx context.Context, limit int) ([]string, error) {
	seasonYear := timeutil.SeasonEndYear(c.now())
	url := fmt.Sprintf("%s/seasons/%d/types/2/leaders?lang=en&region=us", c.cfg.CoreBaseURL, seasonYear)

	var resp leadersResponse
	if err := c.fetcher.GetJSON(ctx, url, c.options(c.ttl.StatsTTL), &resp); err != nil {
		return nil, err
	}

	var category *leaderCategory
	for i := range resp.Categories {
		if resp.Categories[i].Abbreviation == leadersCategoryAbbrev || resp.Categories[i].Name == leadersCategoryName {
			category = &resp.Categories[i]
			break
		}
	}
	if category == nil || len(category.Leaders) == 0 {
		return nil, fmt.Errorf("espn: scoring leaders missing from response")
	}

	ids := make([]string, 0, limit)
	for _, leader := range category.Leaders {
		if len(ids) >= limit {
			break
		}
		if id := extractAthleteID(leader.Athlete.Ref); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
