package search

import "strings"

// Match scores, highest to lowest. An exact name match always outranks any
// partial match; prefix matches outrank mid-string ones.
const (
	scoreExact      = 1000
	scoreStartsWith = 500
	scoreWordPrefix = 300
	scoreWordSubstr = 100
	scoreSubstring  = 50
)

// scoreName rates how well a candidate name matches the query. Both inputs
// must already be lower-cased. Returns 0 for no match.
func scoreName(name, query string) int {
	if name == "" || query == "" {
		return 0
	}
	if name == query {
		return scoreExact
	}
	if strings.HasPrefix(name, query) {
		return scoreStartsWith
	}

	score := 0
	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, query) {
			score += scoreWordPrefix
		} else if strings.Contains(word, query) {
			score += scoreWordSubstr
		}
	}
	if score > 0 {
		return score
	}
	if strings.Contains(name, query) {
		return scoreSubstring
	}
	return 0
}
