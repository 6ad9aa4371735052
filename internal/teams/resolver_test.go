package teams

import (
	"testing"

	domain "nba-stats-service/internal/domain/teams"
)

func TestResolveTricodesAndVariants(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"BOS", "BOS"},
		{"bos", "BOS"},
		{"GS", "GSW"},
		{"UTAH", "UTA"},
		{"NO", "NOP"},
		{"SA", "SAS"},
		{"NY", "NYK"},
		{"WSH", "WAS"},
		{"PHO", "PHX"},
	}

	for _, tc := range cases {
		id, ok := Resolve(tc.input)
		if !ok {
			t.Fatalf("expected %q to resolve", tc.input)
		}
		if id.Tricode != tc.expected {
			t.Fatalf("expected %q to resolve to %s, got %s", tc.input, tc.expected, id.Tricode)
		}
	}
}

func TestResolveNamesAndAliases(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Boston Celtics", "BOS"},
		{"celtics", "BOS"},
		{"warriors", "GSW"},
		{"golden state", "GSW"},
		{"sixers", "PHI"},
		{"76ers", "PHI"},
		{"philly", "PHI"},
		{"trail blazers", "POR"},
		{"trailblazers", "POR"},
		{"cavs", "CLE"},
		{"wolves", "MIN"},
		{"new jersey", "BKN"},
		{"Oklahoma City", "OKC"},
	}

	for _, tc := range cases {
		id, ok := Resolve(tc.input)
		if !ok {
			t.Fatalf("expected %q to resolve", tc.input)
		}
		if id.Tricode != tc.expected {
			t.Fatalf("expected %q to resolve to %s, got %s", tc.input, tc.expected, id.Tricode)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", "xyz", "london"} {
		if _, ok := Resolve(input); ok {
			t.Fatalf("expected %q not to resolve", input)
		}
	}
}

func TestNormalizeTricode(t *testing.T) {
	if got := NormalizeTricode("gs"); got != "GSW" {
		t.Fatalf("expected GSW, got %q", got)
	}
	if got := NormalizeTricode("BOS"); got != "BOS" {
		t.Fatalf("expected BOS, got %q", got)
	}
	if got := NormalizeTricode("ZZZ"); got != "" {
		t.Fatalf("expected empty for unknown tricode, got %q", got)
	}
}

func TestAllCoversLeague(t *testing.T) {
	all := All()
	if len(all) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(all))
	}

	east, west := 0, 0
	for _, id := range all {
		switch id.Conference {
		case domain.East:
			east++
		case domain.West:
			west++
		default:
			t.Fatalf("team %s has no conference", id.Tricode)
		}
		if _, ok := ESPNTeamID(id.Tricode); !ok {
			t.Fatalf("team %s has no ESPN ID", id.Tricode)
		}
	}
	if east != 15 || west != 15 {
		t.Fatalf("expected 15/15 conference split, got %d/%d", east, west)
	}
}

func TestESPNTeamID(t *testing.T) {
	id, ok := ESPNTeamID("celtics")
	if !ok || id != 2 {
		t.Fatalf("expected celtics to map to ESPN ID 2, got %d (%v)", id, ok)
	}
	if _, ok := ESPNTeamID("nowhere"); ok {
		t.Fatalf("expected unknown team to have no ESPN ID")
	}
}

func TestAliasesRoundTrip(t *testing.T) {
	aliases := Aliases("PHI")
	if len(aliases) == 0 {
		t.Fatalf("expected aliases for PHI")
	}
	for _, alias := range aliases {
		id, ok := Resolve(alias)
		if !ok || id.Tricode != "PHI" {
			t.Fatalf("alias %q does not resolve back to PHI", alias)
		}
	}
	if got := Aliases("ZZZ"); got != nil {
		t.Fatalf("expected nil for unknown tricode, got %v", got)
	}
}

func TestConferenceOf(t *testing.T) {
	conf, ok := ConferenceOf("LAL")
	if !ok || conf != domain.West {
		t.Fatalf("expected LAL in West, got %v (%v)", conf, ok)
	}
	conf, ok = ConferenceOf("knicks")
	if !ok || conf != domain.East {
		t.Fatalf("expected knicks in East, got %v (%v)", conf, ok)
	}
}
