package formatter

import (
	"fmt"
	"strings"

	"github.com/nadiaferrer/tessera/internal/store"
)

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// FormatProjectList renders one line per project with record counts.
func FormatProjectList(snap store.Snapshot) string {
	tasksByProject := make(map[string]int)
	for _, t := range snap.Tasks {
		tasksByProject[t.ProjectID]++
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-10s %-30s %-10s %6s %6s", "ID", "NAME", "STATUS", "TASKS", "COLL")))
	for _, p := range snap.Projects {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-10s %-30s %-10s %6d %6d",
			StyleDim.Render(shortID(p.ID)),
			StyleFg.Render(truncate(p.Name, 30)),
			string(p.Status),
			tasksByProject[p.ID],
			len(p.Collaborators),
		))
	}
	return b.String()
}

// FormatProjectInspect renders one project with its collaborators and tasks.
func FormatProjectInspect(snap store.Snapshot, projectID string) string {
	p, ok := snap.FindProject(projectID)
	if !ok {
		return "Project not found."
	}

	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%s]", shortID(p.ID))))
	b.WriteString(fmt.Sprintf("\nStatus: %s", p.Status))
	if p.Description != "" {
		b.WriteString("\n" + p.Description)
	}

	if len(p.Collaborators) > 0 {
		b.WriteString("\n\n" + StyleHeader.Render("Collaborators"))
		for _, c := range p.Collaborators {
			name := c.MemberID
			if m, ok := snap.FindMember(c.MemberID); ok {
				name = m.Name
			}
			b.WriteString(fmt.Sprintf("\n  %s", name))
			if c.Role != "" {
				b.WriteString(StyleDim.Render(" — " + c.Role))
			}
		}
	}

	var taskLines []string
	for _, t := range snap.Tasks {
		if t.ProjectID == projectID {
			taskLines = append(taskLines, fmt.Sprintf("  %s %-40s %s",
				StyleDim.Render(shortID(t.ID)), truncate(t.Title, 40), t.Status))
		}
	}
	if len(taskLines) > 0 {
		b.WriteString("\n\n" + StyleHeader.Render("Tasks"))
		b.WriteString("\n" + strings.Join(taskLines, "\n"))
	}

	return b.String()
}

// FormatMemberList renders one line per member.
func FormatMemberList(snap store.Snapshot) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-10s %-25s %-30s", "ID", "NAME", "EMAIL")))
	for _, m := range snap.Members {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-10s %-25s %-30s",
			StyleDim.Render(shortID(m.ID)),
			truncate(m.Name, 25),
			StyleBlue.Render(truncate(m.Email, 30)),
		))
	}
	return b.String()
}

// FormatTaskList renders tasks, optionally limited to one project. Returns
// "" when nothing matches.
func FormatTaskList(snap store.Snapshot, projectID string) string {
	projectName := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		projectName[p.ID] = p.Name
	}

	var lines []string
	for _, t := range snap.Tasks {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		assignee := StyleDim.Render("unassigned")
		if t.AssignedMemberID != "" {
			assignee = shortID(t.AssignedMemberID)
			if m, ok := snap.FindMember(t.AssignedMemberID); ok {
				assignee = m.Name
			}
		}
		lines = append(lines, fmt.Sprintf("%-10s %-35s %-20s %-12s %s",
			StyleDim.Render(shortID(t.ID)),
			truncate(t.Title, 35),
			truncate(projectName[t.ProjectID], 20),
			string(t.WorkType),
			assignee,
		))
	}
	if len(lines) == 0 {
		return ""
	}

	header := StyleHeader.Render(fmt.Sprintf("%-10s %-35s %-20s %-12s %s", "ID", "TITLE", "PROJECT", "WORK", "ASSIGNEE"))
	return header + "\n" + strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
