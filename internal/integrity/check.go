package integrity

import (
	"fmt"

	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/store"
)

// Violation is one dangling reference found in a snapshot.
type Violation struct {
	Entity    string
	EntityID  string
	Field     string
	MissingID string
	Policy    Policy
}

func (v Violation) String() string {
	return fmt.Sprintf("%s[%s].%s -> missing %s (%s)", v.Entity, v.EntityID, v.Field, v.MissingID, v.Policy)
}

// Check scans the snapshot for dangling references and duplicate budget-item
// ids. It never mutates; repair is the caller's decision, guided by each
// violation's policy.
func Check(snap store.Snapshot) []Violation {
	var out []Violation

	members := make(map[string]bool, len(snap.Members))
	for _, m := range snap.Members {
		members[m.ID] = true
	}
	tasks := make(map[string]domain.Task, len(snap.Tasks))
	for _, t := range snap.Tasks {
		tasks[t.ID] = t
	}
	projects := make(map[string]domain.Project, len(snap.Projects))
	for _, p := range snap.Projects {
		projects[p.ID] = p
	}

	for _, p := range snap.Projects {
		for _, c := range p.Collaborators {
			if c.MemberID != "" && !members[c.MemberID] {
				out = append(out, Violation{EntityProject, p.ID, "collaborator_details.member_id", c.MemberID, PolicyNullOut})
			}
		}
		seen := make(map[string]bool)
		p.Budget.WalkItems(func(_ string, item *domain.BudgetItem) {
			if item.ID == "" {
				return
			}
			if seen[item.ID] {
				out = append(out, Violation{EntityProject, p.ID, "budget.item_id", item.ID, PolicyNullOut})
			}
			seen[item.ID] = true
		})
	}

	for _, t := range snap.Tasks {
		owner, ok := projects[t.ProjectID]
		if t.ProjectID == "" || !ok {
			out = append(out, Violation{EntityTask, t.ID, "project_id", t.ProjectID, PolicyCascade})
		}
		if t.AssignedMemberID != "" && !members[t.AssignedMemberID] {
			out = append(out, Violation{EntityTask, t.ID, "assigned_member_id", t.AssignedMemberID, PolicyNullOut})
		}
		// Budget item must live inside the task's own project.
		if t.BudgetItemID != "" && ok && !owner.Budget.HasItem(t.BudgetItemID) {
			out = append(out, Violation{EntityTask, t.ID, "budget_item_id", t.BudgetItemID, PolicyNullOut})
		}
	}

	for _, a := range snap.Activities {
		if _, ok := tasks[a.TaskID]; a.TaskID == "" || !ok {
			out = append(out, Violation{EntityActivity, a.ID, "task_id", a.TaskID, PolicyCascade})
		}
		if a.MemberID != "" && !members[a.MemberID] {
			out = append(out, Violation{EntityActivity, a.ID, "member_id", a.MemberID, PolicyPreserve})
		}
	}

	for _, e := range snap.DirectExpenses {
		owner, ok := projects[e.ProjectID]
		if e.ProjectID == "" || !ok {
			out = append(out, Violation{EntityDirectExpense, e.ID, "project_id", e.ProjectID, PolicyCascade})
		}
		if e.BudgetItemID != "" && ok && !owner.Budget.HasItem(e.BudgetItemID) {
			out = append(out, Violation{EntityDirectExpense, e.ID, "budget_item_id", e.BudgetItemID, PolicyNullOut})
		}
	}

	for _, r := range snap.Reports {
		if _, ok := projects[r.ProjectID]; r.ProjectID == "" || !ok {
			out = append(out, Violation{EntityReport, r.ID, "project_id", r.ProjectID, PolicyCascade})
		}
	}

	return out
}

// Repair returns a copy of the snapshot with every violation resolved by its
// policy: cascade violations drop the record, null-out violations blank the
// field, preserve violations are left alone. The returned violations are the
// ones that were acted on.
func Repair(snap store.Snapshot) (store.Snapshot, []Violation) {
	violations := Check(snap)
	if len(violations) == 0 {
		return snap, nil
	}

	dropTask := make(map[string]bool)
	dropActivity := make(map[string]bool)
	dropExpense := make(map[string]bool)
	dropReport := make(map[string]bool)
	blankTaskMember := make(map[string]bool)
	blankTaskItem := make(map[string]bool)
	blankExpenseItem := make(map[string]bool)
	dropCollaborator := make(map[string]map[string]bool)

	var acted []Violation
	for _, v := range violations {
		switch {
		case v.Entity == EntityTask && v.Field == "project_id":
			dropTask[v.EntityID] = true
		case v.Entity == EntityTask && v.Field == "assigned_member_id":
			blankTaskMember[v.EntityID] = true
		case v.Entity == EntityTask && v.Field == "budget_item_id":
			blankTaskItem[v.EntityID] = true
		case v.Entity == EntityActivity && v.Field == "task_id":
			dropActivity[v.EntityID] = true
		case v.Entity == EntityDirectExpense && v.Field == "project_id":
			dropExpense[v.EntityID] = true
		case v.Entity == EntityDirectExpense && v.Field == "budget_item_id":
			blankExpenseItem[v.EntityID] = true
		case v.Entity == EntityReport && v.Field == "project_id":
			dropReport[v.EntityID] = true
		case v.Entity == EntityProject && v.Field == "collaborator_details.member_id":
			if dropCollaborator[v.EntityID] == nil {
				dropCollaborator[v.EntityID] = make(map[string]bool)
			}
			dropCollaborator[v.EntityID][v.MissingID] = true
		default:
			continue // preserve policy: surfaced, not repaired
		}
		acted = append(acted, v)
	}
	if len(acted) == 0 {
		return snap, nil
	}

	next := snap.Clone()

	if len(dropCollaborator) > 0 {
		for i := range next.Projects {
			missing := dropCollaborator[next.Projects[i].ID]
			if len(missing) == 0 {
				continue
			}
			kept := next.Projects[i].Collaborators[:0]
			for _, c := range next.Projects[i].Collaborators {
				if !missing[c.MemberID] {
					kept = append(kept, c)
				}
			}
			next.Projects[i].Collaborators = kept
		}
	}

	var keptTasks []domain.Task
	for _, t := range next.Tasks {
		if dropTask[t.ID] {
			// Its activities fall with it.
			continue
		}
		if blankTaskMember[t.ID] {
			t.AssignedMemberID = ""
		}
		if blankTaskItem[t.ID] {
			t.BudgetItemID = ""
		}
		keptTasks = append(keptTasks, t)
	}
	next.Tasks = keptTasks

	remaining := make(map[string]bool, len(next.Tasks))
	for _, t := range next.Tasks {
		remaining[t.ID] = true
	}
	var keptActivities []domain.Activity
	for _, a := range next.Activities {
		if dropActivity[a.ID] || !remaining[a.TaskID] {
			continue
		}
		keptActivities = append(keptActivities, a)
	}
	next.Activities = keptActivities

	var keptExpenses []domain.DirectExpense
	for _, e := range next.DirectExpenses {
		if dropExpense[e.ID] {
			continue
		}
		if blankExpenseItem[e.ID] {
			e.BudgetItemID = ""
		}
		keptExpenses = append(keptExpenses, e)
	}
	next.DirectExpenses = keptExpenses

	var keptReports []domain.Report
	for _, r := range next.Reports {
		if !dropReport[r.ID] {
			keptReports = append(keptReports, r)
		}
	}
	next.Reports = keptReports

	return next, acted
}
