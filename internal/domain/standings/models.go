package standings

// Row is one flattened standings-table entry. Position is the 1-based rank,
// unique within a competition table.
type Row struct {
	Position  int    `json:"Position"`
	TeamName  string `json:"TeamName"`
	ShortName string `json:"ShortName"`
	Played    int    `json:"Played"`
	Points    int    `json:"Points"`
	Won       int    `json:"Won"`
	Draw      int    `json:"Draw"`
	Lost      int    `json:"Lost"`
	Crest     string `json:"Crest,omitempty"`
}
