package standings

import "nba-stats-service/internal/domain/teams"

// Record is a wins/losses pair used for the split sub-records.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Entry is one team's standings row. ConfRank and GamesBehind are recomputed
// on every fetch; they are never trusted blindly from a scan-derived source.
type Entry struct {
	TeamID      int              `json:"teamId"`
	Tricode     string           `json:"tricode"`
	City        string           `json:"city"`
	Name        string           `json:"name"`
	Conference  teams.Conference `json:"conference"`
	ConfRank    int              `json:"confRank"`
	Wins        int              `json:"wins"`
	Losses      int              `json:"losses"`
	WinPct      float64          `json:"winPct"`
	GamesBehind float64          `json:"gamesBehind"`
	Home        Record           `json:"home"`
	Away        Record           `json:"away"`
	Conf        Record           `json:"conf"`
	LastTen     Record           `json:"lastTen"`
	Streak      string           `json:"streak"`
}

// Standings is the full league table for a season.
type Standings struct {
	Season     string  `json:"season"`
	SeasonType string  `json:"seasonType"`
	Entries    []Entry `json:"standings"`
}
