package bundle

import "fmt"

// ValidateEnvelope checks the type and version tags. Both must match
// exactly; there is no forward or backward compatibility logic. Every
// mismatching field is reported so the user sees the whole problem at once.
func ValidateEnvelope(env *Envelope, appVersion string) []error {
	var errs []error

	if env.Type != TypeProjectExport {
		errs = append(errs, fmt.Errorf("type: got %q, want %q", env.Type, TypeProjectExport))
	}
	if env.AppVersion != appVersion {
		errs = append(errs, fmt.Errorf("app_version: got %q, want %q", env.AppVersion, appVersion))
	}

	return errs
}

// ValidateBundle checks the bundle for structural problems that make a merge
// meaningless: a missing project, or duplicate identifiers inside the
// bundle. Reference gaps are not errors here; the merge engine repairs them.
func ValidateBundle(b *Bundle) []error {
	var errs []error

	if b.Project.ID == "" {
		errs = append(errs, fmt.Errorf("project.id is required"))
	}

	seen := map[string]string{}
	note := func(kind, id string) {
		if id == "" {
			return
		}
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q (already used by %s)", kind, id, prev))
			return
		}
		seen[id] = kind
	}

	note("project", b.Project.ID)
	for i, m := range b.Members {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("members[%d].id is required", i))
		}
		note("member", m.ID)
	}
	for i, t := range b.Tasks {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].id is required", i))
		}
		note("task", t.ID)
	}
	for i, a := range b.Activities {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("activities[%d].id is required", i))
		}
		note("activity", a.ID)
	}
	for i, e := range b.DirectExpenses {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("direct_expenses[%d].id is required", i))
		}
		note("direct_expense", e.ID)
	}

	return errs
}
