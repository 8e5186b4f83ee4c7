package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketPlanRevenue(t *testing.T) {
	plan := TicketPlan{
		NumVenues:       3,
		VenueCapacity:   200,
		PercentCapacity: 75,
		AvgTicketPrice:  20,
	}
	// 3 venues * 150 seats filled * $20
	assert.Equal(t, 9000.0, plan.Revenue())
}

func TestTicketPlanRevenueUnconfigured(t *testing.T) {
	assert.Equal(t, 0.0, TicketPlan{}.Revenue())
}

func TestWalkItemsVisitsEveryCategory(t *testing.T) {
	b := Budget{
		Grants:           []BudgetItem{{ID: "g1"}},
		Sales:            []BudgetItem{{ID: "s1"}, {ID: "s2"}},
		ProfessionalFees: []BudgetItem{{ID: "f1"}},
		Travel:           []BudgetItem{{ID: "t1"}},
	}

	visited := make(map[string]string)
	b.WalkItems(func(category string, item *BudgetItem) {
		visited[item.ID] = category
	})

	require.Len(t, visited, 5)
	assert.Equal(t, CategoryGrants, visited["g1"])
	assert.Equal(t, CategorySales, visited["s2"])
	assert.Equal(t, CategoryProfessionalFees, visited["f1"])
	assert.Equal(t, CategoryTravel, visited["t1"])
}

func TestWalkItemsGrantsPointerAccess(t *testing.T) {
	b := Budget{Grants: []BudgetItem{{ID: "old"}}}
	b.WalkItems(func(_ string, item *BudgetItem) {
		item.ID = "new"
	})
	assert.Equal(t, "new", b.Grants[0].ID)
}

func TestHasItem(t *testing.T) {
	b := Budget{
		Production: []BudgetItem{{ID: "p1"}},
	}
	assert.True(t, b.HasItem("p1"))
	assert.False(t, b.HasItem("nope"))
	assert.False(t, b.HasItem(""))
}

func TestBudgetCloneIsDeep(t *testing.T) {
	actual := 250.0
	b := Budget{
		Grants: []BudgetItem{{ID: "g1", Amount: 1000, ActualAmount: &actual}},
	}

	clone := b.Clone()
	clone.Grants[0].Amount = 9999
	*clone.Grants[0].ActualAmount = 1

	assert.Equal(t, 1000.0, b.Grants[0].Amount)
	assert.Equal(t, 250.0, *b.Grants[0].ActualAmount)
}

func TestProjectCloneIsDeep(t *testing.T) {
	p := Project{
		ID:            "p1",
		Collaborators: []Collaborator{{MemberID: "m1", Role: "lead"}},
		Budget:        Budget{Travel: []BudgetItem{{ID: "t1", Amount: 100}}},
	}

	clone := p.Clone()
	clone.Collaborators[0].MemberID = "other"
	clone.Budget.Travel[0].Amount = 5

	assert.Equal(t, "m1", p.Collaborators[0].MemberID)
	assert.Equal(t, 100.0, p.Budget.Travel[0].Amount)
}
