package domain

import "time"

// Task belongs to exactly one project. Assignment to a member and the link
// to a budget item are both optional; the budget item must live inside the
// task's own project.
type Task struct {
	ID               string     `json:"id"`
	ProjectID        string     `json:"project_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	AssignedMemberID string     `json:"assigned_member_id,omitempty"`
	BudgetItemID     string     `json:"budget_item_id,omitempty"`
	TaskType         TaskType   `json:"task_type"`
	WorkType         WorkType   `json:"work_type"`
	HourlyRate       float64    `json:"hourly_rate,omitempty"`
	Status           TaskStatus `json:"status"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Clone returns a deep copy.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	return out
}
