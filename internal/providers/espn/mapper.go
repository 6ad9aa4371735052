package espn

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"nba-stats-service/internal/domain/games"
	"nba-stats-service/internal/domain/players"
	"nba-stats-service/internal/domain/standings"
	"nba-stats-service/internal/domain/stats"
	domteams "nba-stats-service/internal/domain/teams"
	"nba-stats-service/internal/teams"
)

var athleteRefPattern = regexp.MustCompile(`athletes/(\d+)`)

func mapScoreboard(resp scoreboardResponse, date string) *games.Scoreboard {
	board := &games.Scoreboard{
		GameDate: date,
		Games:    make([]games.Game, 0, len(resp.Events)),
	}
	if resp.Day.Date != "" {
		board.GameDate = resp.Day.Date
	}
	for _, event := range resp.Events {
		if game, ok := mapGame(event); ok {
			board.Games = append(board.Games, game)
		}
	}
	return board
}

func mapGame(event eventResponse) (games.Game, bool) {
	if len(event.Competitions) == 0 {
		return games.Game{}, false
	}
	comp := event.Competitions[0]

	var home, away *competitorResponse
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return games.Game{}, false
	}

	return games.Game{
		GameID:     event.ID,
		StartTime:  event.Date,
		Status:     mapStatus(comp.Status),
		StatusText: comp.Status.Type.Detail,
		Period:     comp.Status.Period,
		Clock:      comp.Status.DisplayClock,
		Home:       mapTeamScore(*home),
		Away:       mapTeamScore(*away),
	}, true
}

func mapStatus(status statusResponse) games.Status {
	if status.Type.Completed {
		return games.StatusFinal
	}
	if status.Type.State == "in" {
		return games.StatusLive
	}
	return games.StatusScheduled
}

func mapTeamScore(c competitorResponse) games.TeamScore {
	wins, losses := overallRecord(c.Records)
	score, _ := strconv.Atoi(c.Score)
	teamID, _ := strconv.Atoi(c.Team.ID)
	return games.TeamScore{
		TeamID:  teamID,
		Tricode: teams.NormalizeTricode(c.Team.Abbreviation),
		Name:    c.Team.Name,
		City:    c.Team.Location,
		Score:   score,
		Wins:    wins,
		Losses:  losses,
	}
}

// overallRecord reads the first record summary, which ESPN uses for the
// overall "W-L" line.
func overallRecord(records []recordResponse) (int, int) {
	if len(records) == 0 {
		return 0, 0
	}
	return parseRecordSummary(records[0].Summary)
}

func parseRecordSummary(summary string) (int, int) {
	parts := strings.SplitN(summary, "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	wins, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	losses, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	return wins, losses
}

func recordByType(records []recordResponse, wanted ...string) standings.Record {
	for _, r := range records {
		for _, w := range wanted {
			if r.Type == w || r.Name == w {
				wins, losses := parseRecordSummary(r.Summary)
				return standings.Record{Wins: wins, Losses: losses}
			}
		}
	}
	return standings.Record{}
}

// mapRecordSnapshot extracts an unranked standings entry from a scoreboard
// competitor. Ranks and games behind are recomputed by the aggregator.
func mapRecordSnapshot(c competitorResponse) (standings.Entry, bool) {
	tricode := teams.NormalizeTricode(c.Team.Abbreviation)
	if tricode == "" {
		return standings.Entry{}, false
	}
	conference, _ := teams.ConferenceOf(tricode)
	wins, losses := overallRecord(c.Records)
	teamID, _ := strconv.Atoi(c.Team.ID)

	entry := standings.Entry{
		TeamID:     teamID,
		Tricode:    tricode,
		City:       c.Team.Location,
		Name:       c.Team.Name,
		Conference: conference,
		Wins:       wins,
		Losses:     losses,
		WinPct:     winPct(wins, losses),
		Home:       recordByType(c.Records, "home"),
		Away:       recordByType(c.Records, "road", "away"),
		Conf:       recordByType(c.Records, "vsconf"),
		LastTen:    recordByType(c.Records, "last10", "lastTenGames"),
		Streak:     streakFromRecords(c.Records),
	}
	return entry, true
}

func streakFromRecords(records []recordResponse) string {
	for _, r := range records {
		if r.Name == "streak" || r.Type == "streak" {
			return r.Summary
		}
	}
	return "-"
}

func winPct(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses)
}

// mapStandingEntry converts one row of the dedicated standings endpoint.
func mapStandingEntry(entry standingEntry, conference domteams.Conference) (standings.Entry, bool) {
	tricode := teams.NormalizeTricode(entry.Team.Abbreviation)
	if tricode == "" {
		return standings.Entry{}, false
	}

	byName := make(map[string]standingStat, len(entry.Stats))
	for _, s := range entry.Stats {
		byName[s.Name] = s
	}
	statValue := func(name string) float64 {
		return byName[name].Value
	}
	recordStat := func(name string) standings.Record {
		wins, losses := parseRecordSummary(byName[name].DisplayValue)
		return standings.Record{Wins: wins, Losses: losses}
	}

	wins := int(statValue("wins"))
	losses := int(statValue("losses"))
	teamID, _ := strconv.Atoi(entry.Team.ID)

	out := standings.Entry{
		TeamID:      teamID,
		Tricode:     tricode,
		City:        entry.Team.Location,
		Name:        entry.Team.Name,
		Conference:  conference,
		Wins:        wins,
		Losses:      losses,
		WinPct:      statValue("winPercent"),
		GamesBehind: statValue("gamesBehind"),
		Home:        recordStat("homeRecord"),
		Away:        recordStat("awayRecord"),
		Conf:        recordStat("vsConf"),
		LastTen:     recordStat("lastTenGames"),
		Streak:      byName["streak"].DisplayValue,
	}
	if out.WinPct == 0 {
		out.WinPct = winPct(wins, losses)
	}
	if out.Streak == "" {
		out.Streak = "-"
	}
	return out, true
}

func mapAthlete(a athleteResponse, tricode string) players.Player {
	name := a.DisplayName
	if name == "" {
		name = a.FullName
	}
	if tricode == "" {
		tricode = teams.NormalizeTricode(a.Team.Abbreviation)
	}
	height := a.DisplayHeight
	if height == "" {
		height = flexString(a.Height)
	}
	weight := a.DisplayWeight
	if weight == "" {
		weight = flexString(a.Weight)
	}
	return players.Player{
		ID:          flexString(a.ID),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DisplayName: name,
		Position:    a.Position.Abbreviation,
		Jersey:      flexString(a.Jersey),
		Tricode:     tricode,
		Height:      height,
		Weight:      strings.TrimSpace(strings.TrimSuffix(weight, "lbs")),
	}
}

// summaryEntries converts statsSummary statistics to domain entries, keeping
// only values that coerce to a number.
func summaryEntries(raw []summaryStat) []stats.Entry {
	entries := make([]stats.Entry, 0, len(raw))
	for _, s := range raw {
		value, ok := coerceValue(s.Value, s.DisplayValue)
		if !ok {
			continue
		}
		entries = append(entries, stats.Entry{
			Name:         s.Name,
			DisplayName:  s.DisplayName,
			Value:        value,
			DisplayValue: s.DisplayValue,
		})
	}
	return entries
}

// webAverageEntries flattens the web stats API's averages category into
// domain entries keyed by canonical names. Compound display values like
// "6.9-14.1" are skipped.
func webAverageEntries(resp webStatsResponse) []stats.Entry {
	var averages *webCategory
	for i := range resp.Categories {
		if resp.Categories[i].Name == categoryAverages {
			averages = &resp.Categories[i]
			break
		}
	}
	if averages == nil {
		return nil
	}

	entries := make([]stats.Entry, 0, len(averages.Labels))
	for i, label := range averages.Labels {
		name, ok := webAverageNames[label]
		if !ok || i >= len(averages.Totals) {
			continue
		}
		display := flexString(averages.Totals[i])
		if strings.Contains(display, "-") && !strings.HasPrefix(display, "-") {
			continue
		}
		value, err := strconv.ParseFloat(display, 64)
		if err != nil {
			continue
		}
		displayName := label
		if i < len(averages.DisplayNames) && averages.DisplayNames[i] != "" {
			displayName = averages.DisplayNames[i]
		}
		entries = append(entries, stats.Entry{
			Name:         name,
			DisplayName:  displayName,
			Value:        value,
			DisplayValue: display,
		})
	}
	return entries
}

func teamStatEntries(resp teamStatsResponse) []stats.Entry {
	var entries []stats.Entry
	for _, category := range resp.Results.Stats.Categories {
		entries = append(entries, summaryEntries(category.Stats)...)
	}
	return entries
}

func extractAthleteID(ref string) string {
	match := athleteRefPattern.FindStringSubmatch(ref)
	if match == nil {
		return ""
	}
	return match[1]
}

// coerceValue interprets a stat value that may be a JSON number, a numeric
// string, or absent with only a displayValue.
func coerceValue(raw json.RawMessage, display string) (float64, bool) {
	if candidate := flexString(raw); candidate != "" {
		if v, err := strconv.ParseFloat(candidate, 64); err == nil {
			return v, true
		}
	}
	if display != "" {
		if v, err := strconv.ParseFloat(display, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// flexString renders a scalar JSON value as a string. Objects fall back to
// their value/displayValue members, matching ESPN's jersey and height quirks.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	var obj struct {
		Value        json.RawMessage `json:"value"`
		DisplayValue string          `json:"displayValue"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.DisplayValue != "" {
			return obj.DisplayValue
		}
		if len(obj.Value) > 0 {
			return flexString(obj.Value)
		}
	}
	return ""
}
