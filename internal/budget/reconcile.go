// Package budget compares a project's budgeted line items against actual
// spend derived from approved time activities and direct expenses. Reconcile
// is a pure function; it is safe to call on every render.
package budget

import (
	"github.com/nadiaferrer/tessera/internal/domain"
)

// ItemLine is the reconciled view of one budget item.
type ItemLine struct {
	ItemID      string
	Category    string
	Source      string
	Description string
	Budgeted    float64
	Actual      float64
	// Contributed is the value of approved in-kind and volunteer hours
	// attributed to this item. It is tracked but never counted as actual
	// spend: no cash left the organization.
	Contributed float64
	Variance    float64
}

// CategoryLine rolls up one itemized category.
type CategoryLine struct {
	Name        string
	Budgeted    float64
	Actual      float64
	Contributed float64
	Items       []ItemLine
}

// TicketLine is the ticket aggregate's contribution to projected revenue.
// Actual ticket sales are not tracked per item; Tracked stays false so a
// report never implies zero sales.
type TicketLine struct {
	Projected float64
	Tracked   bool
}

// Summary is the full reconciliation of one project.
type Summary struct {
	ProjectID string

	Revenue          []CategoryLine
	Tickets          TicketLine
	ProjectedRevenue float64

	Expenses          []CategoryLine
	BudgetedExpenses  float64
	ActualExpenses    float64
	ContributedValue  float64

	// Approved spend that could not be attributed to an expense line:
	// a task without a budget link, or a link that resolves to a revenue
	// item or to no item at all. Kept visible so no approved time
	// disappears from the report.
	UnattributedActual      float64
	UnattributedContributed float64
}

// Reconcile computes projected and actual totals for one project. Tasks,
// activities and expenses belonging to other projects are ignored; only
// approved activities count.
func Reconcile(p domain.Project, tasks []domain.Task, activities []domain.Activity, expenses []domain.DirectExpense) Summary {
	s := Summary{ProjectID: p.ID}

	taskByID := make(map[string]domain.Task)
	for _, t := range tasks {
		if t.ProjectID == p.ID {
			taskByID[t.ID] = t
		}
	}

	actual := make(map[string]float64)
	contributed := make(map[string]float64)

	for _, a := range activities {
		if a.Status != domain.ActivityApproved {
			continue
		}
		t, ok := taskByID[a.TaskID]
		if !ok {
			continue
		}
		value := a.Hours * t.HourlyRate
		switch {
		case t.WorkType == domain.WorkPaid && t.BudgetItemID != "":
			actual[t.BudgetItemID] += value
		case t.WorkType == domain.WorkPaid:
			s.UnattributedActual += value
		case t.BudgetItemID != "":
			contributed[t.BudgetItemID] += value
		default:
			s.UnattributedContributed += value
		}
	}

	for _, e := range expenses {
		if e.ProjectID != p.ID {
			continue
		}
		if e.BudgetItemID != "" {
			actual[e.BudgetItemID] += e.Amount
		} else {
			s.UnattributedActual += e.Amount
		}
	}

	for _, cat := range p.Budget.RevenueCategories() {
		line := CategoryLine{Name: cat.Name}
		for _, item := range cat.Items {
			il := ItemLine{
				ItemID:      item.ID,
				Category:    cat.Name,
				Source:      item.Source,
				Description: item.Description,
				Budgeted:    item.Amount,
			}
			if item.ActualAmount != nil {
				il.Actual = *item.ActualAmount
			}
			il.Variance = il.Budgeted - il.Actual
			line.Budgeted += il.Budgeted
			line.Actual += il.Actual
			line.Items = append(line.Items, il)
		}
		s.Revenue = append(s.Revenue, line)
		s.ProjectedRevenue += line.Budgeted
	}

	s.Tickets = TicketLine{Projected: p.Budget.Tickets.Revenue()}
	s.ProjectedRevenue += s.Tickets.Projected

	attributed := make(map[string]bool)
	for _, cat := range p.Budget.ExpenseCategories() {
		line := CategoryLine{Name: cat.Name}
		for _, item := range cat.Items {
			attributed[item.ID] = true
			il := ItemLine{
				ItemID:      item.ID,
				Category:    cat.Name,
				Source:      item.Source,
				Description: item.Description,
				Budgeted:    item.Amount,
				Actual:      actual[item.ID],
				Contributed: contributed[item.ID],
			}
			il.Variance = il.Budgeted - il.Actual
			line.Budgeted += il.Budgeted
			line.Actual += il.Actual
			line.Contributed += il.Contributed
			line.Items = append(line.Items, il)
		}
		s.Expenses = append(s.Expenses, line)
		s.BudgetedExpenses += line.Budgeted
		s.ActualExpenses += line.Actual
		s.ContributedValue += line.Contributed
	}

	// Accumulations keyed by a revenue item or a vanished item have no
	// expense line to land on; fold them into the unattributed totals.
	for id, v := range actual {
		if !attributed[id] {
			s.UnattributedActual += v
		}
	}
	for id, v := range contributed {
		if !attributed[id] {
			s.UnattributedContributed += v
		}
	}
	s.ContributedValue += s.UnattributedContributed

	return s
}
