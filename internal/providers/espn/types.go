package espn

import "encoding/json"

// Wire shapes for the ESPN endpoints we consume. Fields not listed here are
// ignored by the decoder.

type scoreboardResponse struct {
	Day struct {
		Date string `json:"date"`
	} `json:"day"`
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
}

type competitorResponse struct {
	HomeAway string           `json:"homeAway"`
	Score    string           `json:"score"`
	Team     teamResponse     `json:"team"`
	Records  []recordResponse `json:"records"`
}

type teamResponse struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Location     string `json:"location"`
}

type recordResponse struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

type statusResponse struct {
	Period       int    `json:"period"`
	DisplayClock string `json:"displayClock"`
	Type         struct {
		State     string `json:"state"`
		Completed bool   `json:"completed"`
		Detail    string `json:"detail"`
	} `json:"type"`
}

type standingsResponse struct {
	Children []conferenceGroup `json:"children"`
}

type conferenceGroup struct {
	Name      string `json:"name"`
	Standings struct {
		Entries []standingEntry `json:"entries"`
	} `json:"standings"`
}

type standingEntry struct {
	Team  teamResponse   `json:"team"`
	Stats []standingStat `json:"stats"`
}

type standingStat struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

type rosterResponse struct {
	Athletes []athleteResponse `json:"athletes"`
}

// athleteResponse tolerates ESPN's habit of switching scalar fields between
// strings, numbers, and objects.
type athleteResponse struct {
	ID          json.RawMessage `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	DisplayName string          `json:"displayName"`
	FullName    string          `json:"fullName"`
	Jersey      json.RawMessage `json:"jersey"`
	Position    struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Team struct {
		ID           string `json:"id"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	DisplayHeight string          `json:"displayHeight"`
	DisplayWeight string          `json:"displayWeight"`
	Height        json.RawMessage `json:"height"`
	Weight        json.RawMessage `json:"weight"`
	StatsSummary  struct {
		Statistics []summaryStat `json:"statistics"`
	} `json:"statsSummary"`
}

type athleteDetailResponse struct {
	Athlete *athleteResponse `json:"athlete"`
}

// summaryStat carries a stat whose value may arrive as a number, a numeric
// string, or be missing with only a displayValue present.
type summaryStat struct {
	Name         string          `json:"name"`
	DisplayName  string          `json:"displayName"`
	Value        json.RawMessage `json:"value"`
	DisplayValue string          `json:"displayValue"`
}

type webStatsResponse struct {
	Categories []webCategory `json:"categories"`
}

type webCategory struct {
	Name         string            `json:"name"`
	Labels       []string          `json:"labels"`
	DisplayNames []string          `json:"displayNames"`
	Totals       []json.RawMessage `json:"totals"`
}

type teamStatsResponse struct {
	Team    teamResponse `json:"team"`
	Results struct {
		Stats struct {
			Categories []struct {
				Name  string        `json:"name"`
				Stats []summaryStat `json:"stats"`
			} `json:"categories"`
		} `json:"stats"`
	} `json:"results"`
}

type leadersResponse struct {
	Categories []leaderCategory `json:"categories"`
}

type leaderCategory struct {
	Name         string       `json:"name"`
	Abbreviation string       `json:"abbreviation"`
	Leaders      []leaderItem `json:"leaders"`
}

type leaderItem struct {
	Athlete struct {
		Ref string `json:"$ref"`
	} `json:"athlete"`
}
