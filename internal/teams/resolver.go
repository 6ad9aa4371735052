// Package teams resolves free-form team references (tricodes, cities,
// nicknames, fan shorthand) to canonical franchise identities.
package teams

import (
	"sort"
	"strings"
	"unicode"

	"nba-stats-service/internal/domain/teams"
)

var (
	byTricode = make(map[string]teams.Identity, len(identities))
	byKey     = make(map[string]string)
)

func init() {
	for _, id := range identities {
		byTricode[id.Tricode] = id
		addKey(id.Tricode, id.Tricode)
		addKey(id.City, id.Tricode)
		addKey(id.Nickname, id.Tricode)
		addKey(id.FullName, id.Tricode)
	}
	for variant, tricode := range tricodeVariants {
		addKey(variant, tricode)
	}
	for alias, tricode := range nicknameAliases {
		addKey(alias, tricode)
	}
}

func addKey(raw, tricode string) {
	key := normalize(raw)
	if key == "" {
		return
	}
	// First registration wins so canonical names cannot be shadowed.
	if _, exists := byKey[key]; !exists {
		byKey[key] = tricode
	}
}

// normalize lowercases and strips everything but letters and digits, so
// "Trail Blazers", "trail-blazers", and "TRAILBLAZERS" collapse to one key.
func normalize(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve maps any team reference to its identity. The second return is
// false when the input matches no franchise.
func Resolve(input string) (teams.Identity, bool) {
	key := normalize(input)
	if key == "" {
		return teams.Identity{}, false
	}
	tricode, ok := byKey[key]
	if !ok {
		return teams.Identity{}, false
	}
	return byTricode[tricode], true
}

// NormalizeTricode maps upstream tricode variants to the canonical form.
// Unknown codes return empty.
func NormalizeTricode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if canonical, ok := tricodeVariants[code]; ok {
		code = canonical
	}
	if _, ok := byTricode[code]; !ok {
		return ""
	}
	return code
}

// Lookup returns the identity for a canonical tricode.
func Lookup(tricode string) (teams.Identity, bool) {
	id, ok := byTricode[strings.ToUpper(tricode)]
	return id, ok
}

// All returns every franchise identity in tricode order.
func All() []teams.Identity {
	out := make([]teams.Identity, len(identities))
	copy(out, identities)
	return out
}

// ESPNTeamID returns ESPN's numeric franchise ID for a team reference.
func ESPNTeamID(input string) (int, bool) {
	id, ok := Resolve(input)
	if !ok {
		return 0, false
	}
	espnID, ok := espnTeamIDs[id.Tricode]
	return espnID, ok
}

// Aliases returns every normalized reference that resolves to the team, in
// sorted order. Useful for diagnostics and autocomplete seeds.
func Aliases(tricode string) []string {
	canonical := NormalizeTricode(tricode)
	if canonical == "" {
		return nil
	}
	var out []string
	for key, code := range byKey {
		if code == canonical {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// ConferenceOf returns the conference for a team reference.
func ConferenceOf(input string) (teams.Conference, bool) {
	id, ok := Resolve(input)
	if !ok {
		return "", false
	}
	return id.Conference, true
}
