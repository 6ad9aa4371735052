package nbacom

import "encoding/json"

// standingsDocument is the CDN's dated standings snapshot.
type standingsDocument struct {
	Season     string        `json:"season"`
	SeasonType string        `json:"seasonType"`
	Standings  []standingRow `json:"standings"`
}

type standingRow struct {
	TeamID        int     `json:"teamId"`
	TeamCity      string  `json:"teamCity"`
	TeamName      string  `json:"teamName"`
	TeamTricode   string  `json:"teamTricode"`
	Conference    string  `json:"conference"`
	ConfRank      int     `json:"confRank"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPct        float64 `json:"winPct"`
	GamesBehind   float64 `json:"gamesBehind"`
	HomeWins      int     `json:"homeWins"`
	HomeLosses    int     `json:"homeLosses"`
	AwayWins      int     `json:"awayWins"`
	AwayLosses    int     `json:"awayLosses"`
	ConfWins      int     `json:"confWins"`
	ConfLosses    int     `json:"confLosses"`
	LastTenWins   int     `json:"lastTenWins"`
	LastTenLosses int     `json:"lastTenLosses"`
	Streak        string  `json:"streak"`
}

// scoreboardDocument is the CDN's live scoreboard for the current date.
type scoreboardDocument struct {
	Scoreboard struct {
		GameDate string     `json:"gameDate"`
		Games    []liveGame `json:"games"`
	} `json:"scoreboard"`
}

type liveGame struct {
	GameID         string   `json:"gameId"`
	GameStatus     int      `json:"gameStatus"` // 1 scheduled, 2 live, 3 final
	GameStatusText string   `json:"gameStatusText"`
	Period         int      `json:"period"`
	GameClock      string   `json:"gameClock"`
	GameTimeUTC    string   `json:"gameTimeUTC"`
	HomeTeam       liveTeam `json:"homeTeam"`
	AwayTeam       liveTeam `json:"awayTeam"`
}

type liveTeam struct {
	TeamID      int    `json:"teamId"`
	TeamCity    string `json:"teamCity"`
	TeamName    string `json:"teamName"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
}

// statsTable is the headers/rowSet tabular format stats.nba.com uses.
type statsTable struct {
	ResultSets []struct {
		Name    string              `json:"name"`
		Headers []string            `json:"headers"`
		RowSet  [][]json.RawMessage `json:"rowSet"`
	} `json:"resultSets"`
}
