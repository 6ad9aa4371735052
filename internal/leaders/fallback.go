package leaders

// fallbackPlayerIDs is a curated list of established high-volume scorers,
// used when both the leaders API and the roster crawl fail. Stats are still
// fetched live; only the candidate set is static.
var fallbackPlayerIDs = []string{
	"3945274", // Luka Doncic
	"4278073", // Shai Gilgeous-Alexander
	"4431678", // Tyrese Maxey
	"3112335", // Nikola Jokic
	"3908809", // Giannis Antetokounmpo
	"3917376", // Jayson Tatum
	"3934672", // Anthony Edwards
	"4594268", // Alperen Sengun
	"3975",    // Kevin Durant
	"3032977", // Damian Lillard
	"6450",    // Kawhi Leonard
	"4066336", // Donovan Mitchell
	"4066457", // LaMelo Ball
	"4432166", // Cam Thomas
	"3992",    // LeBron James
	"4278104", // Michael Porter Jr.
	"4683021", // Paolo Banchero
	"3202",    // Kevin Love
	"3136193", // Devin Booker
	"3936299", // Jalen Brunson
	"4433627", // Franz Wagner
	"5104157", // Victor Wembanyama
	"2595516", // Trae Young
	"4701230", // Gradey Dick
	"3149673", // Karl-Anthony Towns
	"4066261", // De'Aaron Fox
	"4397020", // Luguentz Dort
	"3059318", // Joel Embiid
	"4395628", // Zion Williamson
	"6583",    // Anthony Davis
}
