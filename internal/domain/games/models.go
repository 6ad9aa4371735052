package games

// Status mirrors the shared contract for game lifecycle states. Transitions
// are driven by upstream data and only ever move forward.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusFinal     Status = "FINAL"
)

// TeamScore is one side of a game: the team, its score, and its win/loss
// record as reported at game time.
type TeamScore struct {
	TeamID  int    `json:"teamId"`
	Tricode string `json:"tricode"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Score   int    `json:"score"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
}

// Game is the normalized per-game shape exposed to consumers.
type Game struct {
	GameID     string    `json:"gameId"`
	StartTime  string    `json:"startTime"` // RFC3339, UTC
	Status     Status    `json:"status"`
	StatusText string    `json:"statusText"`
	Period     int       `json:"period"`
	Clock      string    `json:"clock"`
	Home       TeamScore `json:"home"`
	Away       TeamScore `json:"away"`
}

// Scoreboard is all games for a calendar date.
type Scoreboard struct {
	GameDate string `json:"gameDate"`
	Games    []Game `json:"games"`
}
