package domain

import "time"

// DirectExpense is a flat project cost not mediated by hours: an invoice, a
// receipt, a venue deposit. The budget item link is optional.
type DirectExpense struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	BudgetItemID string     `json:"budget_item_id,omitempty"`
	Description  string     `json:"description,omitempty"`
	Amount       float64    `json:"amount"`
	Date         *time.Time `json:"date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Clone returns a deep copy.
func (e DirectExpense) Clone() DirectExpense {
	out := e
	if e.Date != nil {
		d := *e.Date
		out.Date = &d
	}
	return out
}
