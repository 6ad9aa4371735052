package espn

// SourceName labels this provider in logs and metrics.
const SourceName = "espn"

const (
	easternConference = "Eastern Conference"

	categoryAverages = "averages"

	leadersCategoryAbbrev = "PTS"
	leadersCategoryName   = "pointsPerGame"
)

// webAverageNames maps the web stats API's column labels onto the canonical
// stat names the summary endpoint uses.
var webAverageNames = map[string]string{
	"GP":   "gamesPlayed",
	"GS":   "gamesStarted",
	"MIN":  "avgMinutes",
	"FG%":  "fieldGoalPct",
	"3P%":  "threePointFieldGoalPct",
	"FT%":  "freeThrowPct",
	"OR":   "avgOffensiveRebounds",
	"DR":   "avgDefensiveRebounds",
	"REB":  "avgRebounds",
	"AST":  "avgAssists",
	"STL":  "avgSteals",
	"BLK":  "avgBlocks",
	"TO":   "avgTurnovers",
	"PF":   "avgFouls",
	"PTS":  "avgPoints",
}
