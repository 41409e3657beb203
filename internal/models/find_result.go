package models

// FindResult is the public search endpoint's response: the page of mechanics
// plus the facet values derived server-side from the full match set.
type FindResult struct {
	Mechanics []Mechanic `json:"mechanics"`
	Cities    []string   `json:"cities"`
	Services  []string   `json:"services"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	Pages     int        `json:"pages"`
}
