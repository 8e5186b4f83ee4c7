package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/testutil"
)

func findItem(t *testing.T, cats []CategoryLine, itemID string) ItemLine {
	t.Helper()
	for _, cat := range cats {
		for _, item := range cat.Items {
			if item.ItemID == itemID {
				return item
			}
		}
	}
	t.Fatalf("item %s not found in summary", itemID)
	return ItemLine{}
}

func TestReconcileApprovedHoursBecomeActuals(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			ProfessionalFees: []domain.BudgetItem{{ID: "b1", Description: "Facilitator", Amount: 1000}},
		}
	})
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.BudgetItemID = "b1"
		x.HourlyRate = 50
	})
	activity := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 10 })

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{activity}, nil)

	item := findItem(t, s.Expenses, "b1")
	assert.Equal(t, 1000.0, item.Budgeted)
	assert.Equal(t, 500.0, item.Actual)
	assert.Equal(t, 500.0, item.Variance)
	assert.Equal(t, 1000.0, s.BudgetedExpenses)
	assert.Equal(t, 500.0, s.ActualExpenses)
}

func TestReconcileIgnoresPendingActivities(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			ProfessionalFees: []domain.BudgetItem{{ID: "b1", Amount: 1000}},
		}
	})
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.BudgetItemID = "b1"
	})
	pending := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) {
		a.Status = domain.ActivityPending
	})

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{pending}, nil)

	assert.Equal(t, 0.0, s.ActualExpenses)
}

func TestReconcileUnlinkedPaidWorkIsUnattributed(t *testing.T) {
	p := testutil.NewTestProject()
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.BudgetItemID = ""
		x.HourlyRate = 40
	})
	activity := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 5 })

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{activity}, nil)

	assert.Equal(t, 200.0, s.UnattributedActual)
	assert.Equal(t, 0.0, s.ActualExpenses)
}

func TestReconcileInKindHoursAreContributedNotActual(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			Production: []domain.BudgetItem{{ID: "b1", Amount: 800}},
		}
	})
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.WorkType = domain.WorkInKind
		x.BudgetItemID = "b1"
		x.HourlyRate = 30
	})
	activity := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 4 })

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{activity}, nil)

	item := findItem(t, s.Expenses, "b1")
	assert.Equal(t, 0.0, item.Actual)
	assert.Equal(t, 120.0, item.Contributed)
	assert.Equal(t, 120.0, s.ContributedValue)
	assert.Equal(t, 800.0, item.Variance)
}

func TestReconcileDirectExpenses(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			Travel: []domain.BudgetItem{{ID: "b1", Amount: 300}},
		}
	})
	linked := testutil.NewTestExpense(p.ID, func(e *domain.DirectExpense) {
		e.BudgetItemID = "b1"
		e.Amount = 120
	})
	unlinked := testutil.NewTestExpense(p.ID, func(e *domain.DirectExpense) {
		e.Amount = 45
	})
	foreign := testutil.NewTestExpense("other-project", func(e *domain.DirectExpense) {
		e.BudgetItemID = "b1"
		e.Amount = 999
	})

	s := Reconcile(p, nil, nil, []domain.DirectExpense{linked, unlinked, foreign})

	item := findItem(t, s.Expenses, "b1")
	assert.Equal(t, 120.0, item.Actual)
	assert.Equal(t, 45.0, s.UnattributedActual)
}

func TestReconcileIgnoresOtherProjectsTasks(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			ProfessionalFees: []domain.BudgetItem{{ID: "b1", Amount: 1000}},
		}
	})
	foreign := testutil.NewTestTask("other-project", func(x *domain.Task) {
		x.BudgetItemID = "b1"
	})
	activity := testutil.NewTestActivity(foreign.ID, "", func(a *domain.Activity) { a.Hours = 8 })

	s := Reconcile(p, []domain.Task{foreign}, []domain.Activity{activity}, nil)

	assert.Equal(t, 0.0, s.ActualExpenses)
	assert.Equal(t, 0.0, s.UnattributedActual)
}

func TestReconcileRevenueAndTickets(t *testing.T) {
	tracked := 2500.0
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			Grants: []domain.BudgetItem{
				{ID: "g1", Source: "Arts Council", Amount: 5000, ActualAmount: &tracked},
			},
			Sales: []domain.BudgetItem{{ID: "s1", Amount: 400}},
			Tickets: domain.TicketPlan{
				NumVenues: 2, VenueCapacity: 100, PercentCapacity: 50, AvgTicketPrice: 10,
			},
		}
	})

	s := Reconcile(p, nil, nil, nil)

	grant := findItem(t, s.Revenue, "g1")
	assert.Equal(t, 2500.0, grant.Actual)
	assert.Equal(t, 2500.0, grant.Variance)

	assert.Equal(t, 1000.0, s.Tickets.Projected)
	assert.False(t, s.Tickets.Tracked)
	// 5000 + 400 itemized, plus 1000 projected ticket income.
	assert.Equal(t, 6400.0, s.ProjectedRevenue)
}

func TestReconcileRevenueLinkedSpendIsUnattributed(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			Grants: []domain.BudgetItem{{ID: "g1", Source: "Council", Amount: 5000}},
		}
	})
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.BudgetItemID = "g1"
		x.HourlyRate = 50
	})
	activity := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 10 })
	expense := testutil.NewTestExpense(p.ID, func(e *domain.DirectExpense) {
		e.BudgetItemID = "g1"
		e.Amount = 75
	})

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{activity}, []domain.DirectExpense{expense})

	// A revenue item has no actual-cost line; the spend must still show
	// up somewhere in the summary.
	grant := findItem(t, s.Revenue, "g1")
	assert.Equal(t, 0.0, grant.Actual)
	assert.Equal(t, 0.0, s.ActualExpenses)
	assert.Equal(t, 575.0, s.UnattributedActual)
}

func TestReconcileVanishedItemSpendIsUnattributed(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{}
	})
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.BudgetItemID = "no-longer-here"
		x.HourlyRate = 20
	})
	activity := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 2 })

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{activity}, nil)

	assert.Equal(t, 40.0, s.UnattributedActual)
}

func TestReconcileRevenueLinkedInKindIsContributed(t *testing.T) {
	p := testutil.NewTestProject(func(p *domain.Project) {
		p.Budget = domain.Budget{
			Sales: []domain.BudgetItem{{ID: "s1", Amount: 300}},
		}
	})
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.WorkType = domain.WorkVolunteer
		x.BudgetItemID = "s1"
		x.HourlyRate = 25
	})
	activity := testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 4 })

	s := Reconcile(p, []domain.Task{task}, []domain.Activity{activity}, nil)

	assert.Equal(t, 100.0, s.UnattributedContributed)
	assert.Equal(t, 100.0, s.ContributedValue)
	assert.Equal(t, 0.0, s.UnattributedActual)
}

func TestReconcileIsDeterministic(t *testing.T) {
	p := testutil.NewTestProject()
	task := testutil.NewTestTask(p.ID, func(x *domain.Task) {
		x.BudgetItemID = p.Budget.ProfessionalFees[0].ID
	})
	activities := []domain.Activity{
		testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 3 }),
		testutil.NewTestActivity(task.ID, "", func(a *domain.Activity) { a.Hours = 7 }),
	}

	first := Reconcile(p, []domain.Task{task}, activities, nil)
	second := Reconcile(p, []domain.Task{task}, activities, nil)

	require.Equal(t, first, second)
}
