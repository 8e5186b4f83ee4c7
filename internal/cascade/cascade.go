// Package cascade computes the transitive effect of deleting a project,
// member, or task. Each function is pure: snapshot in, next collections out.
// The caller publishes the result as one atomic change, so no reader ever
// sees a half-applied cascade.
package cascade

import (
	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/store"
)

// Stats summarizes what a cascade removed or rewired.
type Stats struct {
	Found               bool
	TasksRemoved        int
	ActivitiesRemoved   int
	ExpensesRemoved     int
	ReportsRemoved      int
	TasksUnassigned     int
	CollaboratorsPruned int
	ActivitiesRetained  int // activities that keep pointing at a deleted member
}

// DeleteProject removes the project and everything that hangs off it: its
// tasks, those tasks' activities, its direct expenses, and its report. A
// missing id is a no-op, not an error; retries and double-clicks are safe.
func DeleteProject(snap store.Snapshot, id string) (store.Change, Stats) {
	var st Stats

	projects := make([]domain.Project, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		if p.ID == id {
			st.Found = true
			continue
		}
		projects = append(projects, p)
	}
	if !st.Found {
		return store.Change{}, st
	}

	// Collect the doomed task ids before filtering tasks: activities are
	// selected by task id, not project id.
	doomed := make(map[string]bool)
	tasks := make([]domain.Task, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if t.ProjectID == id {
			doomed[t.ID] = true
			st.TasksRemoved++
			continue
		}
		tasks = append(tasks, t)
	}

	activities := make([]domain.Activity, 0, len(snap.Activities))
	for _, a := range snap.Activities {
		if doomed[a.TaskID] {
			st.ActivitiesRemoved++
			continue
		}
		activities = append(activities, a)
	}

	expenses := make([]domain.DirectExpense, 0, len(snap.DirectExpenses))
	for _, e := range snap.DirectExpenses {
		if e.ProjectID == id {
			st.ExpensesRemoved++
			continue
		}
		expenses = append(expenses, e)
	}

	reports := make([]domain.Report, 0, len(snap.Reports))
	for _, r := range snap.Reports {
		if r.ProjectID == id {
			st.ReportsRemoved++
			continue
		}
		reports = append(reports, r)
	}

	return store.Change{
		Projects:       &projects,
		Tasks:          &tasks,
		Activities:     &activities,
		DirectExpenses: &expenses,
		Reports:        &reports,
	}, st
}

// DeleteMember removes the member, strips them from every project's
// collaborator list, and unassigns their tasks. Activities are deliberately
// kept: the time was worked and the historical record outlives the person.
func DeleteMember(snap store.Snapshot, id string) (store.Change, Stats) {
	var st Stats

	members := make([]domain.Member, 0, len(snap.Members))
	for _, m := range snap.Members {
		if m.ID == id {
			st.Found = true
			continue
		}
		members = append(members, m)
	}
	if !st.Found {
		return store.Change{}, st
	}

	projects := make([]domain.Project, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		if p.HasCollaborator(id) {
			next := p.Clone()
			kept := next.Collaborators[:0]
			for _, c := range next.Collaborators {
				if c.MemberID == id {
					st.CollaboratorsPruned++
					continue
				}
				kept = append(kept, c)
			}
			next.Collaborators = kept
			projects = append(projects, next)
			continue
		}
		projects = append(projects, p)
	}

	tasks := make([]domain.Task, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if t.AssignedMemberID == id {
			t.AssignedMemberID = ""
			st.TasksUnassigned++
		}
		tasks = append(tasks, t)
	}

	for _, a := range snap.Activities {
		if a.MemberID == id {
			st.ActivitiesRetained++
		}
	}

	return store.Change{
		Projects: &projects,
		Members:  &members,
		Tasks:    &tasks,
	}, st
}

// DeleteTask removes the task and every activity logged against it.
func DeleteTask(snap store.Snapshot, id string) (store.Change, Stats) {
	var st Stats

	tasks := make([]domain.Task, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if t.ID == id {
			st.Found = true
			continue
		}
		tasks = append(tasks, t)
	}
	if !st.Found {
		return store.Change{}, st
	}

	activities := make([]domain.Activity, 0, len(snap.Activities))
	for _, a := range snap.Activities {
		if a.TaskID == id {
			st.ActivitiesRemoved++
			continue
		}
		activities = append(activities, a)
	}

	return store.Change{
		Tasks:      &tasks,
		Activities: &activities,
	}, st
}
