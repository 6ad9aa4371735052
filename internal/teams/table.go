package teams

import "nba-stats-service/internal/domain/teams"

// identities is the static table of the 30 franchises. Order is alphabetical
// by tricode; All preserves it.
var identities = []teams.Identity{
	{Tricode: "ATL", City: "Atlanta", Nickname: "Hawks", FullName: "Atlanta Hawks", Conference: teams.East},
	{Tricode: "BKN", City: "Brooklyn", Nickname: "Nets", FullName: "Brooklyn Nets", Conference: teams.East},
	{Tricode: "BOS", City: "Boston", Nickname: "Celtics", FullName: "Boston Celtics", Conference: teams.East},
	{Tricode: "CHA", City: "Charlotte", Nickname: "Hornets", FullName: "Charlotte Hornets", Conference: teams.East},
	{Tricode: "CHI", City: "Chicago", Nickname: "Bulls", FullName: "Chicago Bulls", Conference: teams.East},
	{Tricode: "CLE", City: "Cleveland", Nickname: "Cavaliers", FullName: "Cleveland Cavaliers", Conference: teams.East},
	{Tricode: "DAL", City: "Dallas", Nickname: "Mavericks", FullName: "Dallas Mavericks", Conference: teams.West},
	{Tricode: "DEN", City: "Denver", Nickname: "Nuggets", FullName: "Denver Nuggets", Conference: teams.West},
	{Tricode: "DET", City: "Detroit", Nickname: "Pistons", FullName: "Detroit Pistons", Conference: teams.East},
	{Tricode: "GSW", City: "Golden State", Nickname: "Warriors", FullName: "Golden State Warriors", Conference: teams.West},
	{Tricode: "HOU", City: "Houston", Nickname: "Rockets", FullName: "Houston Rockets", Conference: teams.West},
	{Tricode: "IND", City: "Indiana", Nickname: "Pacers", FullName: "Indiana Pacers", Conference: teams.East},
	{Tricode: "LAC", City: "LA", Nickname: "Clippers", FullName: "LA Clippers", Conference: teams.West},
	{Tricode: "LAL", City: "Los Angeles", Nickname: "Lakers", FullName: "Los Angeles Lakers", Conference: teams.West},
	{Tricode: "MEM", City: "Memphis", Nickname: "Grizzlies", FullName: "Memphis Grizzlies", Conference: teams.West},
	{Tricode: "MIA", City: "Miami", Nickname: "Heat", FullName: "Miami Heat", Conference: teams.East},
	{Tricode: "MIL", City: "Milwaukee", Nickname: "Bucks", FullName: "Milwaukee Bucks", Conference: teams.East},
	{Tricode: "MIN", City: "Minnesota", Nickname: "Timberwolves", FullName: "Minnesota Timberwolves", Conference: teams.West},
	{Tricode: "NOP", City: "New Orleans", Nickname: "Pelicans", FullName: "New Orleans Pelicans", Conference: teams.West},
	{Tricode: "NYK", City: "New York", Nickname: "Knicks", FullName: "New York Knicks", Conference: teams.East},
	{Tricode: "OKC", City: "Oklahoma City", Nickname: "Thunder", FullName: "Oklahoma City Thunder", Conference: teams.West},
	{Tricode: "ORL", City: "Orlando", Nickname: "Magic", FullName: "Orlando Magic", Conference: teams.East},
	{Tricode: "PHI", City: "Philadelphia", Nickname: "76ers", FullName: "Philadelphia 76ers", Conference: teams.East},
	{Tricode: "PHX", City: "Phoenix", Nickname: "Suns", FullName: "Phoenix Suns", Conference: teams.West},
	{Tricode: "POR", City: "Portland", Nickname: "Trail Blazers", FullName: "Portland Trail Blazers", Conference: teams.West},
	{Tricode: "SAC", City: "Sacramento", Nickname: "Kings", FullName: "Sacramento Kings", Conference: teams.West},
	{Tricode: "SAS", City: "San Antonio", Nickname: "Spurs", FullName: "San Antonio Spurs", Conference: teams.West},
	{Tricode: "TOR", City: "Toronto", Nickname: "Raptors", FullName: "Toronto Raptors", Conference: teams.East},
	{Tricode: "UTA", City: "Utah", Nickname: "Jazz", FullName: "Utah Jazz", Conference: teams.West},
	{Tricode: "WAS", City: "Washington", Nickname: "Wizards", FullName: "Washington Wizards", Conference: teams.East},
}

// espnTeamIDs maps canonical tricodes to ESPN's numeric franchise IDs, which
// its roster and team endpoints key on.
var espnTeamIDs = map[string]int{
	"ATL": 1, "BOS": 2, "BKN": 17, "CHA": 30, "CHI": 4,
	"CLE": 5, "DAL": 6, "DEN": 7, "DET": 8, "GSW": 9,
	"HOU": 10, "IND": 11, "LAC": 12, "LAL": 13, "MEM": 29,
	"MIA": 14, "MIL": 15, "MIN": 16, "NOP": 3, "NYK": 18,
	"OKC": 25, "ORL": 19, "PHI": 20, "PHX": 21, "POR": 22,
	"SAC": 23, "SAS": 24, "TOR": 28, "UTA": 26, "WAS": 27,
}

// tricodeVariants maps the alternate tricodes upstream feeds use to the
// canonical form. ESPN in particular abbreviates several franchises
// differently than NBA.com.
var tricodeVariants = map[string]string{
	"GS":   "GSW",
	"NO":   "NOP",
	"SA":   "SAS",
	"NY":   "NYK",
	"UTAH": "UTA",
	"WSH":  "WAS",
	"PHO":  "PHX",
}

// nicknameAliases maps common fan shorthand to tricodes. Keys are lowercase
// with spaces stripped, matching the resolver's normalization.
var nicknameAliases = map[string]string{
	"cavs":         "CLE",
	"mavs":         "DAL",
	"sixers":       "PHI",
	"philly":       "PHI",
	"wolves":       "MIN",
	"twolves":      "MIN",
	"pels":         "NOP",
	"grizz":        "MEM",
	"blazers":      "POR",
	"trailblazers": "POR",
	"nj":           "BKN",
	"newjersey":    "BKN",
	"losangeles":   "LAL",
	"goldenstate":  "GSW",
	"oklahomacity": "OKC",
	"newyork":      "NYK",
	"neworleans":   "NOP",
	"sanantonio":   "SAS",
	"washingtondc": "WAS",
	"saltlakecity": "UTA",
}
