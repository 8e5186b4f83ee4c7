package domain

import "time"

// Highlight is a titled link attached to a report.
type Highlight struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Report carries the narrative and survey answers for one project. A project
// has at most one report.
type Report struct {
	ID              string      `json:"id"`
	ProjectID       string      `json:"project_id"`
	Narrative       string      `json:"narrative,omitempty"`
	Outcomes        string      `json:"outcomes,omitempty"`
	AudienceReached int         `json:"audience_reached,omitempty"`
	CommunityImpact string      `json:"community_impact,omitempty"`
	Highlights      []Highlight `json:"highlights,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Clone returns a deep copy.
func (r Report) Clone() Report {
	out := r
	out.Highlights = append([]Highlight(nil), r.Highlights...)
	return out
}
