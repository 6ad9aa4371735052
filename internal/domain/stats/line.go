package stats

// Canonical stat names shared across sources. The ESPN summary endpoint uses
// these exact names; other sources are mapped onto them before merging.
const (
	NamePoints    = "avgPoints"
	NameRebounds  = "avgRebounds"
	NameAssists   = "avgAssists"
	NameSteals    = "avgSteals"
	NameBlocks    = "avgBlocks"
	NameTurnovers = "avgTurnovers"
	NameMinutes   = "avgMinutes"

	NameFieldGoalPct  = "fieldGoalPct"
	NameFieldGoalsM   = "avgFieldGoalsMade"
	NameFieldGoalsA   = "avgFieldGoalsAttempted"
	NameThreePointPct = "threePointFieldGoalPct"
	NameThreePointM   = "avgThreePointFieldGoalsMade"
	NameThreePointA   = "avgThreePointFieldGoalsAttempted"
	NameFreeThrowPct  = "freeThrowPct"
	NameFreeThrowsM   = "avgFreeThrowsMade"
	NameFreeThrowsA   = "avgFreeThrowsAttempted"
)

// MergeEntries combines stat entries by name: the primary source is never
// overwritten, supplements only fill names the earlier sources lacked.
func MergeEntries(primary []Entry, supplements ...[]Entry) []Entry {
	merged := make([]Entry, 0, len(primary))
	seen := make(map[string]struct{}, len(primary))
	for _, e := range primary {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		merged = append(merged, e)
	}
	for _, supplement := range supplements {
		for _, e := range supplement {
			if _, ok := seen[e.Name]; ok {
				continue
			}
			seen[e.Name] = struct{}{}
			merged = append(merged, e)
		}
	}
	return merged
}

// FindEntry returns the named stat, distinguishing "present" from "missing".
func FindEntry(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// ApplyEntries fills a PlayerLine's named fields from merged entries. Names
// absent from the entries leave the corresponding Stat unknown.
func (p *PlayerLine) ApplyEntries(entries []Entry) {
	p.All = entries
	p.Points = statFrom(entries, NamePoints)
	p.Rebounds = statFrom(entries, NameRebounds)
	p.Assists = statFrom(entries, NameAssists)
	p.Steals = statFrom(entries, NameSteals)
	p.Blocks = statFrom(entries, NameBlocks)
	p.Turnovers = statFrom(entries, NameTurnovers)
	p.Minutes = statFrom(entries, NameMinutes)

	p.FieldGoals = Split{
		Made:      statFrom(entries, NameFieldGoalsM),
		Attempted: statFrom(entries, NameFieldGoalsA),
		Pct:       statFrom(entries, NameFieldGoalPct),
	}
	p.ThreePointers = Split{
		Made:      statFrom(entries, NameThreePointM),
		Attempted: statFrom(entries, NameThreePointA),
		Pct:       statFrom(entries, NameThreePointPct),
	}
	p.FreeThrows = Split{
		Made:      statFrom(entries, NameFreeThrowsM),
		Attempted: statFrom(entries, NameFreeThrowsA),
		Pct:       statFrom(entries, NameFreeThrowPct),
	}
}

// ApplyEntries fills a TeamLine's named fields from merged entries.
func (t *TeamLine) ApplyEntries(entries []Entry) {
	t.All = entries
	t.Games = statFrom(entries, "gamesPlayed")
	t.Points = statFrom(entries, NamePoints)
	t.Rebounds = statFrom(entries, NameRebounds)
	t.Assists = statFrom(entries, NameAssists)

	t.FieldGoals = Split{
		Made:      statFrom(entries, NameFieldGoalsM),
		Attempted: statFrom(entries, NameFieldGoalsA),
		Pct:       statFrom(entries, NameFieldGoalPct),
	}
	t.ThreePointers = Split{
		Made:      statFrom(entries, NameThreePointM),
		Attempted: statFrom(entries, NameThreePointA),
		Pct:       statFrom(entries, NameThreePointPct),
	}
	t.FreeThrows = Split{
		Made:      statFrom(entries, NameFreeThrowsM),
		Attempted: statFrom(entries, NameFreeThrowsA),
		Pct:       statFrom(entries, NameFreeThrowPct),
	}
}

func statFrom(entries []Entry, name string) Stat {
	if e, ok := FindEntry(entries, name); ok {
		return Known(e.Value)
	}
	return Unknown()
}
