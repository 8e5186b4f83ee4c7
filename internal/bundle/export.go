package bundle

import (
	"fmt"

	"github.com/nadiaferrer/tessera/internal/store"
)

// Extract builds the self-contained bundle for one project: the project,
// its tasks, those tasks' activities, its direct expenses, and every member
// any of them references.
func Extract(snap store.Snapshot, projectID string) (Bundle, error) {
	project, ok := snap.FindProject(projectID)
	if !ok {
		return Bundle{}, fmt.Errorf("project not found: %s", projectID)
	}

	b := Bundle{Project: project}
	wanted := make(map[string]bool)
	for _, c := range project.Collaborators {
		wanted[c.MemberID] = true
	}

	taskIDs := make(map[string]bool)
	for _, t := range snap.Tasks {
		if t.ProjectID != projectID {
			continue
		}
		taskIDs[t.ID] = true
		if t.AssignedMemberID != "" {
			wanted[t.AssignedMemberID] = true
		}
		b.Tasks = append(b.Tasks, t)
	}

	for _, a := range snap.Activities {
		if !taskIDs[a.TaskID] {
			continue
		}
		if a.MemberID != "" {
			wanted[a.MemberID] = true
		}
		b.Activities = append(b.Activities, a)
	}

	for _, e := range snap.DirectExpenses {
		if e.ProjectID == projectID {
			b.DirectExpenses = append(b.DirectExpenses, e)
		}
	}

	for _, m := range snap.Members {
		if wanted[m.ID] {
			b.Members = append(b.Members, m)
		}
	}

	return b, nil
}
