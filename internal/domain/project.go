package domain

import "time"

// Collaborator links a member to a project with a role description.
type Collaborator struct {
	MemberID string `json:"member_id"`
	Role     string `json:"role,omitempty"`
}

// Project is the root aggregate: it owns its budget and its collaborator
// edges. Tasks, expenses and reports reference it by id.
type Project struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	StartDate     *time.Time     `json:"start_date,omitempty"`
	EndDate       *time.Time     `json:"end_date,omitempty"`
	Status        ProjectStatus  `json:"status"`
	Budget        Budget         `json:"budget"`
	Collaborators []Collaborator `json:"collaborator_details"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Clone returns a deep copy. The store hands out clones so that callers can
// never mutate published state in place.
func (p Project) Clone() Project {
	out := p
	out.Budget = p.Budget.Clone()
	out.Collaborators = append([]Collaborator(nil), p.Collaborators...)
	if p.StartDate != nil {
		d := *p.StartDate
		out.StartDate = &d
	}
	if p.EndDate != nil {
		d := *p.EndDate
		out.EndDate = &d
	}
	return out
}

// HasCollaborator reports whether the given member appears in the project's
// collaborator list.
func (p *Project) HasCollaborator(memberID string) bool {
	for _, c := range p.Collaborators {
		if c.MemberID == memberID {
			return true
		}
	}
	return false
}
