package domain

import "time"

// Activity records hours a member worked on a task over a date range.
// Activities only count toward budget actuals once approved.
type Activity struct {
	ID          string         `json:"id"`
	TaskID      string         `json:"task_id"`
	MemberID    string         `json:"member_id"`
	Description string         `json:"description,omitempty"`
	Hours       float64        `json:"hours"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	Status      ActivityStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Clone returns a deep copy.
func (a Activity) Clone() Activity {
	out := a
	if a.StartDate != nil {
		d := *a.StartDate
		out.StartDate = &d
	}
	if a.EndDate != nil {
		d := *a.EndDate
		out.EndDate = &d
	}
	return out
}
