package nbacom

// SourceName labels this provider in logs and metrics.
const SourceName = "nbacom"

// browserHeaders mimic a browser session. stats.nba.com rejects requests
// without an nba.com origin.
var browserHeaders = map[string]string{
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.9",
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Origin":          "https://www.nba.com",
	"Referer":         "https://www.nba.com/",
}

// leagueDashParams is the full query stats.nba.com requires; every key must
// be present even when blank or the endpoint returns 400.
var leagueDashParams = map[string]string{
	"College":          "",
	"Conference":       "",
	"Country":          "",
	"DateFrom":         "",
	"DateTo":           "",
	"Division":         "",
	"DraftPick":        "",
	"DraftYear":        "",
	"GameScope":        "",
	"GameSegment":      "",
	"Height":           "",
	"LastNGames":       "0",
	"LeagueID":         "00",
	"Location":         "",
	"MeasureType":      "Base",
	"Month":            "0",
	"OpponentTeamID":   "0",
	"Outcome":          "",
	"PORound":          "0",
	"PaceAdjust":       "N",
	"PerMode":          "PerGame",
	"Period":           "0",
	"PlayerExperience": "",
	"PlayerPosition":   "",
	"PlusMinus":        "N",
	"Rank":             "N",
	"SeasonSegment":    "",
	"SeasonType":       "Regular Season",
	"ShotClockRange":   "",
	"StarterBench":     "",
	"TeamID":           "0",
	"TwoWay":           "0",
	"VsConference":     "",
	"VsDivision":       "",
	"Weight":           "",
}
