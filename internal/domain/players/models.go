package players

// Player is the canonical roster entry shared by the search and stats
// aggregators. IDs are the upstream athlete IDs, kept as strings.
type Player struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	Position    string `json:"position"`
	Jersey      string `json:"jersey"`
	Tricode     string `json:"tricode"`
	Height      string `json:"height,omitempty"`
	Weight      string `json:"weight,omitempty"`
}
