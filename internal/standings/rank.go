package standings

import (
	"sort"

	domain "nba-stats-service/internal/domain/standings"
	"nba-stats-service/internal/domain/teams"
)

// Rank orders entries within each conference by win percentage and rewrites
// ConfRank and GamesBehind. Ranks are dense (1..N) and ties keep their
// incoming order. The result lists East then West.
func Rank(entries []domain.Entry) []domain.Entry {
	east := rankConference(filterConference(entries, teams.East))
	west := rankConference(filterConference(entries, teams.West))
	return append(east, west...)
}

func filterConference(entries []domain.Entry, conference teams.Conference) []domain.Entry {
	var out []domain.Entry
	for _, e := range entries {
		if e.Conference == conference {
			out = append(out, e)
		}
	}
	return out
}

func rankConference(entries []domain.Entry) []domain.Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WinPct > entries[j].WinPct
	})
	for i := range entries {
		entries[i].ConfRank = i + 1
		entries[i].GamesBehind = gamesBehind(entries[0], entries[i])
	}
	return entries
}

// gamesBehind is the standard ((leaderW - W) + (L - leaderL)) / 2. The leader
// is always 0 behind itself.
func gamesBehind(leader, team domain.Entry) float64 {
	return (float64(leader.Wins-team.Wins) + float64(team.Losses-leader.Losses)) / 2
}
