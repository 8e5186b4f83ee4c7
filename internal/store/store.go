package store

import (
	"github.com/nadiaferrer/tessera/internal/domain"
)

// Snapshot is one complete workspace state: the six entity collections.
// Snapshots are value types; every read from the store is a deep copy, so a
// caller can never reach into published state.
type Snapshot struct {
	Projects       []domain.Project       `json:"projects"`
	Members        []domain.Member        `json:"members"`
	Tasks          []domain.Task          `json:"tasks"`
	Activities     []domain.Activity      `json:"activities"`
	DirectExpenses []domain.DirectExpense `json:"direct_expenses"`
	Reports        []domain.Report        `json:"reports"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Projects:       cloneProjects(s.Projects),
		Members:        append([]domain.Member(nil), s.Members...),
		Tasks:          cloneTasks(s.Tasks),
		Activities:     cloneActivities(s.Activities),
		DirectExpenses: cloneExpenses(s.DirectExpenses),
		Reports:        cloneReports(s.Reports),
	}
	return out
}

func cloneProjects(in []domain.Project) []domain.Project {
	out := make([]domain.Project, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}

func cloneTasks(in []domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(in))
	for _, t := range in {
		out = append(out, t.Clone())
	}
	return out
}

func cloneActivities(in []domain.Activity) []domain.Activity {
	out := make([]domain.Activity, 0, len(in))
	for _, a := range in {
		out = append(out, a.Clone())
	}
	return out
}

func cloneExpenses(in []domain.DirectExpense) []domain.DirectExpense {
	out := make([]domain.DirectExpense, 0, len(in))
	for _, e := range in {
		out = append(out, e.Clone())
	}
	return out
}

func cloneReports(in []domain.Report) []domain.Report {
	out := make([]domain.Report, 0, len(in))
	for _, r := range in {
		out = append(out, r.Clone())
	}
	return out
}

// FindProject returns the project with the given id, if present.
func (s *Snapshot) FindProject(id string) (domain.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// FindMember returns the member with the given id, if present.
func (s *Snapshot) FindMember(id string) (domain.Member, bool) {
	for _, m := range s.Members {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Member{}, false
}

// FindTask returns the task with the given id, if present.
func (s *Snapshot) FindTask(id string) (domain.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// Change is a set of whole-collection replacements. A nil field leaves that
// collection untouched; every mutation in the system is expressed as one
// Change so readers never observe a partially applied cascade or merge.
type Change struct {
	Projects       *[]domain.Project
	Members        *[]domain.Member
	Tasks          *[]domain.Task
	Activities     *[]domain.Activity
	DirectExpenses *[]domain.DirectExpense
	Reports        *[]domain.Report
}

// Store holds the authoritative in-memory workspace. It owns no behavior
// beyond read and replace of whole collections; the cascade, merge and
// backup engines compute next states and publish them through Apply or
// ReplaceAll.
type Store struct {
	current Snapshot
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Snapshot returns a deep copy of the current workspace state.
func (s *Store) Snapshot() Snapshot {
	return s.current.Clone()
}

// Apply publishes the given collection replacements in one step. The
// incoming collections are cloned on the way in, so the caller keeps no
// handle on published state.
func (s *Store) Apply(ch Change) {
	next := s.current
	if ch.Projects != nil {
		next.Projects = cloneProjects(*ch.Projects)
	}
	if ch.Members != nil {
		next.Members = append([]domain.Member(nil), *ch.Members...)
	}
	if ch.Tasks != nil {
		next.Tasks = cloneTasks(*ch.Tasks)
	}
	if ch.Activities != nil {
		next.Activities = cloneActivities(*ch.Activities)
	}
	if ch.DirectExpenses != nil {
		next.DirectExpenses = cloneExpenses(*ch.DirectExpenses)
	}
	if ch.Reports != nil {
		next.Reports = cloneReports(*ch.Reports)
	}
	s.current = next
}

// ReplaceAll swaps in a whole new workspace. Used by startup load and by
// backup restore, the only fully destructive operation.
func (s *Store) ReplaceAll(snap Snapshot) {
	s.current = snap.Clone()
}
