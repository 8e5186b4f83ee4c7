package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadiaferrer/tessera/internal/domain"
)

func sampleBundle() Bundle {
	return Bundle{
		Project: domain.Project{
			ID:   "proj-1",
			Name: "Touring Show",
			Budget: domain.Budget{
				Grants:           []domain.BudgetItem{{ID: "item-g", Source: "Council", Amount: 5000}},
				ProfessionalFees: []domain.BudgetItem{{ID: "item-f", Amount: 1000}},
			},
			Collaborators: []domain.Collaborator{{MemberID: "mem-1", Role: "director"}},
		},
		Members: []domain.Member{
			{ID: "mem-1", Name: "Ana", Email: "ana@example.org"},
			{ID: "mem-2", Name: "Bea", Email: "bea@example.org"},
		},
		Tasks: []domain.Task{
			{ID: "task-1", ProjectID: "proj-1", Title: "Rehearse", AssignedMemberID: "mem-1", BudgetItemID: "item-f"},
		},
		Activities: []domain.Activity{
			{ID: "act-1", TaskID: "task-1", MemberID: "mem-2", Hours: 4, Status: domain.ActivityApproved},
		},
		DirectExpenses: []domain.DirectExpense{
			{ID: "exp-1", ProjectID: "proj-1", BudgetItemID: "item-g", Amount: 200},
		},
	}
}

func TestMergeMintsFreshIDsEverywhere(t *testing.T) {
	res := Merge(sampleBundle(), nil)

	assert.NotEqual(t, "proj-1", res.Project.ID)
	require.Len(t, res.NewMembers, 2)
	require.Len(t, res.Tasks, 1)
	require.Len(t, res.Activities, 1)
	require.Len(t, res.DirectExpenses, 1)

	task := res.Tasks[0]
	assert.NotEqual(t, "task-1", task.ID)
	assert.Equal(t, res.Project.ID, task.ProjectID)
	assert.Equal(t, res.NewMembers[0].ID, task.AssignedMemberID)
	assert.NotEqual(t, "item-f", task.BudgetItemID)
	assert.True(t, res.Project.Budget.HasItem(task.BudgetItemID))

	activity := res.Activities[0]
	assert.Equal(t, task.ID, activity.TaskID)
	assert.Equal(t, res.NewMembers[1].ID, activity.MemberID)

	expense := res.DirectExpenses[0]
	assert.Equal(t, res.Project.ID, expense.ProjectID)
	assert.True(t, res.Project.Budget.HasItem(expense.BudgetItemID))

	assert.Equal(t, res.NewMembers[0].ID, res.Project.Collaborators[0].MemberID)
	assert.Empty(t, res.Warnings)
}

func TestMergeDedupesMembersByEmailCaseInsensitive(t *testing.T) {
	existing := domain.Member{ID: "ws-ana", Name: "Ana W", Email: "ANA@Example.org"}

	res := Merge(sampleBundle(), []domain.Member{existing})

	assert.Equal(t, 1, res.MembersDeduped)
	require.Len(t, res.NewMembers, 1)
	assert.Equal(t, "Bea", res.NewMembers[0].Name)

	// References to the deduplicated member resolve to the workspace copy.
	assert.Equal(t, "ws-ana", res.Tasks[0].AssignedMemberID)
	assert.Equal(t, "ws-ana", res.Project.Collaborators[0].MemberID)
}

func TestMergeTwiceCreatesNoNewMembers(t *testing.T) {
	first := Merge(sampleBundle(), nil)

	workspace := first.NewMembers
	second := Merge(sampleBundle(), workspace)

	assert.Empty(t, second.NewMembers)
	assert.Equal(t, 2, second.MembersDeduped)
	// The project itself is never deduplicated.
	assert.NotEqual(t, first.Project.ID, second.Project.ID)
}

func TestMergeNeverDedupesBudgetItems(t *testing.T) {
	first := Merge(sampleBundle(), nil)
	second := Merge(sampleBundle(), first.NewMembers)

	var firstIDs, secondIDs []string
	first.Project.Budget.WalkItems(func(_ string, item *domain.BudgetItem) {
		firstIDs = append(firstIDs, item.ID)
	})
	second.Project.Budget.WalkItems(func(_ string, item *domain.BudgetItem) {
		secondIDs = append(secondIDs, item.ID)
	})
	for _, id := range firstIDs {
		assert.NotContains(t, secondIDs, id)
	}
}

func TestMergeDedupesMembersWithinBundle(t *testing.T) {
	b := sampleBundle()
	b.Members = append(b.Members, domain.Member{ID: "mem-3", Name: "Ana Again", Email: "Ana@Example.org"})
	b.Activities = append(b.Activities, domain.Activity{ID: "act-2", TaskID: "task-1", MemberID: "mem-3", Hours: 2})

	res := Merge(b, nil)

	// The duplicate collapses onto the first Ana; references follow.
	require.Len(t, res.NewMembers, 2)
	assert.Equal(t, 1, res.MembersDeduped)
	require.Len(t, res.Activities, 2)
	assert.Equal(t, res.NewMembers[0].ID, res.Activities[1].MemberID)
}

func TestMergeDropsUnmappedBudgetLink(t *testing.T) {
	b := sampleBundle()
	b.Tasks[0].BudgetItemID = "item-missing"

	res := Merge(b, nil)

	assert.Empty(t, res.Tasks[0].BudgetItemID)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "item-missing")
}

func TestMergeKeepsUnmappedCollaborator(t *testing.T) {
	b := sampleBundle()
	b.Project.Collaborators = append(b.Project.Collaborators, domain.Collaborator{MemberID: "mem-ghost"})

	res := Merge(b, nil)

	require.Len(t, res.Project.Collaborators, 2)
	assert.Equal(t, "mem-ghost", res.Project.Collaborators[1].MemberID)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "mem-ghost")
}

func TestMergeDropsActivityWithUnmappedTask(t *testing.T) {
	b := sampleBundle()
	b.Activities = append(b.Activities, domain.Activity{ID: "act-orphan", TaskID: "task-ghost", Hours: 1})

	res := Merge(b, nil)

	assert.Len(t, res.Activities, 1)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "task-ghost")
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	b := sampleBundle()
	_ = Merge(b, nil)

	assert.Equal(t, "proj-1", b.Project.ID)
	assert.Equal(t, "item-g", b.Project.Budget.Grants[0].ID)
	assert.Equal(t, "task-1", b.Tasks[0].ID)
	assert.Equal(t, "mem-1", b.Project.Collaborators[0].MemberID)
}
