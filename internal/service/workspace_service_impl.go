package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nadiaferrer/tessera/internal/backup"
	"github.com/nadiaferrer/tessera/internal/bundle"
	"github.com/nadiaferrer/tessera/internal/cascade"
	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/integrity"
	"github.com/nadiaferrer/tessera/internal/persist"
	"github.com/nadiaferrer/tessera/internal/store"
)

// ErrNotFound is returned by upserts and exports that name a missing record.
// Deletes never return it; a delete of a missing id is a no-op.
var ErrNotFound = errors.New("not found")

type workspaceService struct {
	store    *store.Store
	slots    *persist.SlotStore
	version  string
	observer UseCaseObserver
}

// NewWorkspaceService wires the in-memory store to the durable slot store.
func NewWorkspaceService(st *store.Store, slots *persist.SlotStore, appVersion string, observers ...UseCaseObserver) WorkspaceService {
	return &workspaceService{
		store:    st,
		slots:    slots,
		version:  appVersion,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *workspaceService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

// persistAfter writes the current snapshot to the slot store. The in-memory
// state stays authoritative: a write failure becomes a warning, not an error.
func (s *workspaceService) persistAfter(ctx context.Context, useCase string) {
	if s.slots == nil {
		return
	}
	if err := s.slots.Save(ctx, s.store.Snapshot()); err != nil {
		s.observer.ObserveWarning(ctx, useCase, fmt.Sprintf("persisting workspace failed: %v", err))
	}
}

func (s *workspaceService) Load(ctx context.Context) ([]string, error) {
	start := time.Now()
	snap, warnings, err := s.slots.Load(ctx)
	s.observe(ctx, "workspace_load", start, err, map[string]any{
		"projects": len(snap.Projects),
		"warnings": len(warnings),
	})
	if err != nil {
		return warnings, err
	}
	for _, w := range warnings {
		s.observer.ObserveWarning(ctx, "workspace_load", w)
	}
	s.store.ReplaceAll(snap)
	return warnings, nil
}

func (s *workspaceService) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}

func (s *workspaceService) DeleteProject(ctx context.Context, id string) (cascade.Stats, error) {
	start := time.Now()
	ch, st := cascade.DeleteProject(s.store.Snapshot(), id)
	if st.Found {
		s.store.Apply(ch)
		s.persistAfter(ctx, "delete_project")
	}
	s.observe(ctx, "delete_project", start, nil, map[string]any{
		"found": st.Found, "tasks": st.TasksRemoved, "activities": st.ActivitiesRemoved,
		"expenses": st.ExpensesRemoved, "reports": st.ReportsRemoved,
	})
	return st, nil
}

func (s *workspaceService) DeleteMember(ctx context.Context, id string) (cascade.Stats, error) {
	start := time.Now()
	ch, st := cascade.DeleteMember(s.store.Snapshot(), id)
	if st.Found {
		s.store.Apply(ch)
		if st.ActivitiesRetained > 0 {
			s.observer.ObserveWarning(ctx, "delete_member",
				fmt.Sprintf("%d activities keep referencing deleted member %s as a historical record", st.ActivitiesRetained, id))
		}
		s.persistAfter(ctx, "delete_member")
	}
	s.observe(ctx, "delete_member", start, nil, map[string]any{
		"found": st.Found, "unassigned": st.TasksUnassigned, "collaborators_pruned": st.CollaboratorsPruned,
	})
	return st, nil
}

func (s *workspaceService) DeleteTask(ctx context.Context, id string) (cascade.Stats, error) {
	start := time.Now()
	ch, st := cascade.DeleteTask(s.store.Snapshot(), id)
	if st.Found {
		s.store.Apply(ch)
		s.persistAfter(ctx, "delete_task")
	}
	s.observe(ctx, "delete_task", start, nil, map[string]any{
		"found": st.Found, "activities": st.ActivitiesRemoved,
	})
	return st, nil
}

func (s *workspaceService) ImportBundle(ctx context.Context, path string) (*ImportResult, error) {
	start := time.Now()
	result, err := s.importBundle(ctx, path)
	fields := map[string]any{}
	if result != nil {
		fields["project"] = result.Project.ID
		fields["tasks"] = result.TaskCount
		fields["members_deduped"] = result.MembersDeduped
	}
	s.observe(ctx, "import_bundle", start, err, fields)
	return result, err
}

func (s *workspaceService) importBundle(ctx context.Context, path string) (*ImportResult, error) {
	env, err := bundle.LoadEnvelope(path)
	if err != nil {
		return nil, fmt.Errorf("loading export file: %w", err)
	}
	if errs := bundle.ValidateEnvelope(env, s.version); len(errs) > 0 {
		return nil, formatValidationErrors("export file rejected", errs)
	}
	if errs := bundle.ValidateBundle(&env.Data); len(errs) > 0 {
		return nil, formatValidationErrors("export bundle invalid", errs)
	}

	snap := s.store.Snapshot()
	res := bundle.Merge(env.Data, snap.Members)
	for _, w := range res.Warnings {
		s.observer.ObserveWarning(ctx, "import_bundle", w)
	}

	// Append everything in one change; existing records are untouched.
	projects := append(snap.Projects, res.Project)
	members := append(snap.Members, res.NewMembers...)
	tasks := append(snap.Tasks, res.Tasks...)
	activities := append(snap.Activities, res.Activities...)
	expenses := append(snap.DirectExpenses, res.DirectExpenses...)
	s.store.Apply(store.Change{
		Projects:       &projects,
		Members:        &members,
		Tasks:          &tasks,
		Activities:     &activities,
		DirectExpenses: &expenses,
	})
	s.persistAfter(ctx, "import_bundle")

	return &ImportResult{
		Project:        res.Project,
		TaskCount:      len(res.Tasks),
		ActivityCount:  len(res.Activities),
		ExpenseCount:   len(res.DirectExpenses),
		NewMembers:     len(res.NewMembers),
		MembersDeduped: res.MembersDeduped,
		Warnings:       res.Warnings,
	}, nil
}

func (s *workspaceService) ExportProject(ctx context.Context, projectID, path string) error {
	start := time.Now()
	err := func() error {
		b, err := bundle.Extract(s.store.Snapshot(), projectID)
		if err != nil {
			return err
		}
		return bundle.WriteEnvelope(path, bundle.NewEnvelope(b, s.version))
	}()
	s.observe(ctx, "export_project", start, err, map[string]any{"project": projectID})
	return err
}

func (s *workspaceService) Backup(ctx context.Context, path string) error {
	start := time.Now()
	err := backup.WriteFile(path, backup.Export(s.store.Snapshot(), s.version))
	s.observe(ctx, "workspace_backup", start, err, nil)
	return err
}

func (s *workspaceService) Restore(ctx context.Context, path string) error {
	start := time.Now()
	snap, err := backup.ReadFile(path, s.version)
	if err != nil {
		s.observe(ctx, "workspace_restore", start, err, nil)
		return err
	}
	s.store.ReplaceAll(snap)
	s.persistAfter(ctx, "workspace_restore")
	s.observe(ctx, "workspace_restore", start, nil, map[string]any{
		"projects": len(snap.Projects), "members": len(snap.Members),
	})
	return nil
}

func (s *workspaceService) CheckIntegrity(ctx context.Context) []integrity.Violation {
	violations := integrity.Check(s.store.Snapshot())
	for _, v := range violations {
		s.observer.ObserveWarning(ctx, "check_integrity", v.String())
	}
	return violations
}

func formatValidationErrors(prefix string, errs []error) error {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return fmt.Errorf("%s: %s", prefix, strings.Join(parts, "; "))
}

func touch(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}

func (s *workspaceService) PutProject(ctx context.Context, p domain.Project) error {
	start := time.Now()
	err := func() error {
		if p.ID == "" {
			p.ID = domain.NewID()
		}
		seen := make(map[string]bool)
		var dup string
		p.Budget.WalkItems(func(_ string, item *domain.BudgetItem) {
			if item.ID == "" {
				item.ID = domain.NewID()
				return
			}
			if seen[item.ID] {
				dup = item.ID
			}
			seen[item.ID] = true
		})
		if dup != "" {
			return fmt.Errorf("budget item id %s appears in more than one line", dup)
		}
		snap := s.store.Snapshot()
		for _, c := range p.Collaborators {
			if _, ok := snap.FindMember(c.MemberID); !ok {
				return fmt.Errorf("collaborator member %s: %w", c.MemberID, ErrNotFound)
			}
		}
		touch(&p.CreatedAt)
		p.UpdatedAt = time.Now().UTC()
		next := upsertProject(snap.Projects, p)
		s.store.Apply(store.Change{Projects: &next})
		s.persistAfter(ctx, "put_project")
		return nil
	}()
	s.observe(ctx, "put_project", start, err, map[string]any{"project": p.ID})
	return err
}

func (s *workspaceService) PutMember(ctx context.Context, m domain.Member) error {
	start := time.Now()
	if m.ID == "" {
		m.ID = domain.NewID()
	}
	touch(&m.CreatedAt)
	m.UpdatedAt = time.Now().UTC()
	snap := s.store.Snapshot()
	next := upsertMember(snap.Members, m)
	s.store.Apply(store.Change{Members: &next})
	s.persistAfter(ctx, "put_member")
	s.observe(ctx, "put_member", start, nil, map[string]any{"member": m.ID})
	return nil
}

func (s *workspaceService) PutTask(ctx context.Context, t domain.Task) error {
	start := time.Now()
	err := func() error {
		if t.ID == "" {
			t.ID = domain.NewID()
		}
		snap := s.store.Snapshot()
		owner, ok := snap.FindProject(t.ProjectID)
		if !ok {
			return fmt.Errorf("project %s: %w", t.ProjectID, ErrNotFound)
		}
		if t.AssignedMemberID != "" {
			if _, ok := snap.FindMember(t.AssignedMemberID); !ok {
				return fmt.Errorf("member %s: %w", t.AssignedMemberID, ErrNotFound)
			}
		}
		// Budget links may only point into the task's own project.
		if t.BudgetItemID != "" && !owner.Budget.HasItem(t.BudgetItemID) {
			return fmt.Errorf("budget item %s not in project %s: %w", t.BudgetItemID, t.ProjectID, ErrNotFound)
		}
		touch(&t.CreatedAt)
		t.UpdatedAt = time.Now().UTC()
		next := upsertTask(snap.Tasks, t)
		s.store.Apply(store.Change{Tasks: &next})
		s.persistAfter(ctx, "put_task")
		return nil
	}()
	s.observe(ctx, "put_task", start, err, map[string]any{"task": t.ID})
	return err
}

func (s *workspaceService) PutActivity(ctx context.Context, a domain.Activity) error {
	start := time.Now()
	err := func() error {
		if a.ID == "" {
			a.ID = domain.NewID()
		}
		if a.Status == "" {
			a.Status = domain.ActivityPending
		}
		if !domain.ValidActivityStatuses[string(a.Status)] {
			return fmt.Errorf("invalid activity status %q", a.Status)
		}
		snap := s.store.Snapshot()
		if _, ok := snap.FindTask(a.TaskID); !ok {
			return fmt.Errorf("task %s: %w", a.TaskID, ErrNotFound)
		}
		if a.MemberID != "" {
			if _, ok := snap.FindMember(a.MemberID); !ok {
				return fmt.Errorf("member %s: %w", a.MemberID, ErrNotFound)
			}
		}
		touch(&a.CreatedAt)
		a.UpdatedAt = time.Now().UTC()
		next := upsertActivity(snap.Activities, a)
		s.store.Apply(store.Change{Activities: &next})
		s.persistAfter(ctx, "put_activity")
		return nil
	}()
	s.observe(ctx, "put_activity", start, err, map[string]any{"activity": a.ID})
	return err
}

func (s *workspaceService) PutDirectExpense(ctx context.Context, e domain.DirectExpense) error {
	start := time.Now()
	err := func() error {
		if e.ID == "" {
			e.ID = domain.NewID()
		}
		snap := s.store.Snapshot()
		owner, ok := snap.FindProject(e.ProjectID)
		if !ok {
			return fmt.Errorf("project %s: %w", e.ProjectID, ErrNotFound)
		}
		if e.BudgetItemID != "" && !owner.Budget.HasItem(e.BudgetItemID) {
			return fmt.Errorf("budget item %s not in project %s: %w", e.BudgetItemID, e.ProjectID, ErrNotFound)
		}
		touch(&e.CreatedAt)
		e.UpdatedAt = time.Now().UTC()
		next := upsertExpense(snap.DirectExpenses, e)
		s.store.Apply(store.Change{DirectExpenses: &next})
		s.persistAfter(ctx, "put_direct_expense")
		return nil
	}()
	s.observe(ctx, "put_direct_expense", start, err, map[string]any{"expense": e.ID})
	return err
}

func (s *workspaceService) PutReport(ctx context.Context, r domain.Report) error {
	start := time.Now()
	err := func() error {
		if r.ID == "" {
			r.ID = domain.NewID()
		}
		snap := s.store.Snapshot()
		if _, ok := snap.FindProject(r.ProjectID); !ok {
			return fmt.Errorf("project %s: %w", r.ProjectID, ErrNotFound)
		}
		touch(&r.CreatedAt)
		r.UpdatedAt = time.Now().UTC()
		// One report per project: replace any report for the same project,
		// whatever its id.
		next := make([]domain.Report, 0, len(snap.Reports)+1)
		for _, existing := range snap.Reports {
			if existing.ProjectID == r.ProjectID || existing.ID == r.ID {
				continue
			}
			next = append(next, existing)
		}
		next = append(next, r)
		s.store.Apply(store.Change{Reports: &next})
		s.persistAfter(ctx, "put_report")
		return nil
	}()
	s.observe(ctx, "put_report", start, err, map[string]any{"report": r.ID})
	return err
}

func upsertProject(list []domain.Project, p domain.Project) []domain.Project {
	out := make([]domain.Project, 0, len(list)+1)
	replaced := false
	for _, item := range list {
		if item.ID == p.ID {
			out = append(out, p)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, p)
	}
	return out
}

func upsertMember(list []domain.Member, m domain.Member) []domain.Member {
	out := make([]domain.Member, 0, len(list)+1)
	replaced := false
	for _, item := range list {
		if item.ID == m.ID {
			out = append(out, m)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, m)
	}
	return out
}

func upsertTask(list []domain.Task, t domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(list)+1)
	replaced := false
	for _, item := range list {
		if item.ID == t.ID {
			out = append(out, t)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, t)
	}
	return out
}

func upsertActivity(list []domain.Activity, a domain.Activity) []domain.Activity {
	out := make([]domain.Activity, 0, len(list)+1)
	replaced := false
	for _, item := range list {
		if item.ID == a.ID {
			out = append(out, a)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, a)
	}
	return out
}

func upsertExpense(list []domain.DirectExpense, e domain.DirectExpense) []domain.DirectExpense {
	out := make([]domain.DirectExpense, 0, len(list)+1)
	replaced := false
	for _, item := range list {
		if item.ID == e.ID {
			out = append(out, e)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, e)
	}
	return out
}
