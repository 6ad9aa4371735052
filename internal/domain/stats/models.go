package stats

import "time"

// Stat is a single numeric statistic that distinguishes "zero" from "not
// reported by any source". Consumers must check Known before treating the
// value as meaningful; a missing stat is never collapsed into 0.
type Stat struct {
	Value float64 `json:"value"`
	Known bool    `json:"known"`
}

// Known wraps a value reported by a source.
func Known(v float64) Stat {
	return Stat{Value: v, Known: true}
}

// Unknown is the explicit missing-value sentinel.
func Unknown() Stat {
	return Stat{}
}

// Entry is one named statistic as merged from upstream sources.
type Entry struct {
	Name         string  `json:"name"`
	DisplayName  string  `json:"displayName,omitempty"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue,omitempty"`
}

// Split holds a made/attempted/percentage shooting triple.
type Split struct {
	Made      Stat `json:"made"`
	Attempted Stat `json:"attempted"`
	Pct       Stat `json:"pct"`
}

// PlayerLine is the normalized per-player season stat line.
type PlayerLine struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Tricode  string `json:"tricode"`
	Position string `json:"position"`
	Jersey   string `json:"jersey"`

	Points    Stat `json:"points"`
	Rebounds  Stat `json:"rebounds"`
	Assists   Stat `json:"assists"`
	Steals    Stat `json:"steals"`
	Blocks    Stat `json:"blocks"`
	Turnovers Stat `json:"turnovers"`
	Minutes   Stat `json:"minutes"`

	FieldGoals    Split `json:"fieldGoals"`
	ThreePointers Split `json:"threePointers"`
	FreeThrows    Split `json:"freeThrows"`

	// All carries every merged stat entry for consumers that need more than
	// the named fields above.
	All []Entry `json:"all,omitempty"`
}

// PPG returns the points-per-game value, or 0 when unknown. Callers that
// must distinguish "0 PPG" from "no data" read Points directly.
func (p PlayerLine) PPG() float64 {
	return p.Points.Value
}

// TeamLine is the normalized per-team season stat line.
type TeamLine struct {
	TeamID  int    `json:"teamId"`
	Tricode string `json:"tricode"`
	Name    string `json:"name"`

	Games    Stat `json:"games"`
	Points   Stat `json:"points"`
	Rebounds Stat `json:"rebounds"`
	Assists  Stat `json:"assists"`

	FieldGoals    Split `json:"fieldGoals"`
	ThreePointers Split `json:"threePointers"`
	FreeThrows    Split `json:"freeThrows"`

	All []Entry `json:"all,omitempty"`
}

// SourceTier identifies which fallback tier of the top-scorers pipeline
// supplied data.
type SourceTier string

const (
	TierLeadersAPI     SourceTier = "leaders-api"
	TierRosterCrawl    SourceTier = "roster-crawl"
	TierStaticFallback SourceTier = "static-fallback"
	TierNone           SourceTier = "none"
)

// FetchStatus records the outcome of the most recent top-scorers fetch. It
// is diagnostic state: recomputed per fetch, never persisted.
type FetchStatus struct {
	Source      SourceTier `json:"source"`
	PlayerCount int        `json:"playerCount"`
	Filtered    int        `json:"filtered"`
	Errors      []string   `json:"errors"`
	Attempts    int        `json:"attempts"`
	FetchedAt   time.Time  `json:"fetchedAt"`
}
