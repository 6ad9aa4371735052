package teams

// Conference identifies one of the two NBA conferences.
type Conference string

const (
	East Conference = "East"
	West Conference = "West"
)

// Identity is the canonical description of a franchise. Instances are
// statically enumerated; the resolver package owns the table.
type Identity struct {
	Tricode    string     `json:"tricode"`
	City       string     `json:"city"`
	Nickname   string     `json:"nickname"`
	FullName   string     `json:"fullName"`
	Conference Conference `json:"conference"`
}
