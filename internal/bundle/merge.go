package bundle

import (
	"fmt"

	"github.com/nadiaferrer/tessera/internal/domain"
)

// Result holds the records a merge produces. Every identifier is freshly
// minted except deduplicated member references, which point at pre-existing
// workspace members. The caller appends everything in one atomic change;
// nothing already in the workspace is touched.
type Result struct {
	Project        domain.Project
	Tasks          []domain.Task
	Activities     []domain.Activity
	DirectExpenses []domain.DirectExpense
	NewMembers     []domain.Member
	MembersDeduped int
	Warnings       []string
}

// Merge folds a validated bundle into a workspace. All cross-references are
// rewritten through a single old-id to new-id translation table, built
// up-front, so no field can be missed by ad hoc rewriting.
//
// Members are deduplicated by case-insensitive email: a match maps the
// bundle member's id to the existing workspace member and drops the bundle
// copy. Budget items are never deduplicated; amounts are point-in-time and
// must not be shared across projects.
func Merge(b Bundle, workspaceMembers []domain.Member) Result {
	var res Result
	ids := make(map[string]string)

	byEmail := make(map[string]string, len(workspaceMembers))
	for _, m := range workspaceMembers {
		byEmail[m.EmailKey()] = m.ID
	}

	for _, m := range b.Members {
		key := m.EmailKey()
		if existing, ok := byEmail[key]; ok && key != "" {
			ids[m.ID] = existing
			res.MembersDeduped++
			continue
		}
		newID := domain.NewID()
		ids[m.ID] = newID
		// Register the kept member so a later bundle member with the same
		// email collapses onto it instead of entering twice.
		if key != "" {
			byEmail[key] = newID
		}
		m.ID = newID
		res.NewMembers = append(res.NewMembers, m)
	}

	project := b.Project.Clone()
	newProjectID := domain.NewID()
	ids[project.ID] = newProjectID
	project.ID = newProjectID

	for i, c := range project.Collaborators {
		if mapped, ok := ids[c.MemberID]; ok {
			project.Collaborators[i].MemberID = mapped
		} else if c.MemberID != "" {
			// Bundle inconsistency: the referenced member was not in the
			// bundle. Keep the value and surface it rather than dropping
			// the edge silently.
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("collaborator member %s not found in bundle; reference kept as-is", c.MemberID))
		}
	}

	project.Budget.WalkItems(func(_ string, item *domain.BudgetItem) {
		if item.ID == "" {
			item.ID = domain.NewID()
			return
		}
		newID := domain.NewID()
		ids[item.ID] = newID
		item.ID = newID
	})

	for _, t := range b.Tasks {
		oldID := t.ID
		t.ID = domain.NewID()
		ids[oldID] = t.ID

		if mapped, ok := ids[t.ProjectID]; ok {
			t.ProjectID = mapped
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("task %s referenced project %s, not the bundle project; reparented", oldID, t.ProjectID))
			t.ProjectID = project.ID
		}
		if t.AssignedMemberID != "" {
			if mapped, ok := ids[t.AssignedMemberID]; ok {
				t.AssignedMemberID = mapped
			} else {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("task %s assignee %s not found in bundle; unassigned", oldID, t.AssignedMemberID))
				t.AssignedMemberID = ""
			}
		}
		if t.BudgetItemID != "" {
			if mapped, ok := ids[t.BudgetItemID]; ok {
				t.BudgetItemID = mapped
			} else {
				// A dropped reference is safer than a dangling one.
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("task %s budget item %s not found in bundle; link dropped", oldID, t.BudgetItemID))
				t.BudgetItemID = ""
			}
		}
		res.Tasks = append(res.Tasks, t)
	}

	for _, a := range b.Activities {
		oldID := a.ID
		a.ID = domain.NewID()

		if mapped, ok := ids[a.TaskID]; ok {
			a.TaskID = mapped
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("activity %s task %s not found in bundle; activity dropped", oldID, a.TaskID))
			continue
		}
		if a.MemberID != "" {
			if mapped, ok := ids[a.MemberID]; ok {
				a.MemberID = mapped
			} else {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("activity %s member %s not found in bundle; reference cleared", oldID, a.MemberID))
				a.MemberID = ""
			}
		}
		res.Activities = append(res.Activities, a)
	}

	for _, e := range b.DirectExpenses {
		oldID := e.ID
		e.ID = domain.NewID()

		if mapped, ok := ids[e.ProjectID]; ok {
			e.ProjectID = mapped
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("expense %s referenced project %s, not the bundle project; reparented", oldID, e.ProjectID))
			e.ProjectID = project.ID
		}
		if e.BudgetItemID != "" {
			if mapped, ok := ids[e.BudgetItemID]; ok {
				e.BudgetItemID = mapped
			} else {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("expense %s budget item %s not found in bundle; link dropped", oldID, e.BudgetItemID))
				e.BudgetItemID = ""
			}
		}
		res.DirectExpenses = append(res.DirectExpenses, e)
	}

	res.Project = project
	return res
}
