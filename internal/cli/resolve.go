package cli

import (
	"fmt"
	"strings"

	"github.com/nadiaferrer/tessera/internal/store"
)

// resolveProjectID accepts an exact name (case-insensitive), an exact id, or
// a unique id prefix.
func resolveProjectID(snap store.Snapshot, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	for _, p := range snap.Projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	for _, p := range snap.Projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range snap.Projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveMemberID accepts an exact email (case-insensitive), an exact id, or
// a unique id prefix.
func resolveMemberID(snap store.Snapshot, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("member is required")
	}

	for _, m := range snap.Members {
		if strings.EqualFold(m.Email, input) {
			return m.ID, nil
		}
	}
	for _, m := range snap.Members {
		if m.ID == input {
			return m.ID, nil
		}
	}

	var matches []string
	for _, m := range snap.Members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("member id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID accepts an exact id or a unique id prefix.
func resolveTaskID(snap store.Snapshot, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task is required")
	}

	for _, t := range snap.Tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range snap.Tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
