package service

import (
	"context"

	"github.com/nadiaferrer/tessera/internal/budget"
	"github.com/nadiaferrer/tessera/internal/cascade"
	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/integrity"
	"github.com/nadiaferrer/tessera/internal/store"
)

// ImportResult summarizes one bundle merge.
type ImportResult struct {
	Project        domain.Project
	TaskCount      int
	ActivityCount  int
	ExpenseCount   int
	NewMembers     int
	MembersDeduped int
	Warnings       []string
}

// WorkspaceService is the single entry point for workspace mutation. Every
// mutating method computes the full next state, publishes it atomically,
// then persists to the slot store; a persistence failure is surfaced as a
// warning, never rolled back.
type WorkspaceService interface {
	// Load reads the durable slots into memory. Returned warnings name
	// slots that were missing or corrupt.
	Load(ctx context.Context) ([]string, error)
	Snapshot() store.Snapshot

	DeleteProject(ctx context.Context, id string) (cascade.Stats, error)
	DeleteMember(ctx context.Context, id string) (cascade.Stats, error)
	DeleteTask(ctx context.Context, id string) (cascade.Stats, error)

	ImportBundle(ctx context.Context, path string) (*ImportResult, error)
	ExportProject(ctx context.Context, projectID, path string) error

	Backup(ctx context.Context, path string) error
	Restore(ctx context.Context, path string) error

	CheckIntegrity(ctx context.Context) []integrity.Violation

	// Replace-by-id upserts used by the editing layer. Records with
	// unresolvable references are rejected, not repaired: the editors are
	// expected to hand over consistent records.
	PutProject(ctx context.Context, p domain.Project) error
	PutMember(ctx context.Context, m domain.Member) error
	PutTask(ctx context.Context, t domain.Task) error
	PutActivity(ctx context.Context, a domain.Activity) error
	PutDirectExpense(ctx context.Context, e domain.DirectExpense) error
	PutReport(ctx context.Context, r domain.Report) error
}

// ReconcileService produces budget reconciliation summaries. Read-only and
// safe to invoke on every request.
type ReconcileService interface {
	BudgetReport(ctx context.Context, projectID string) (budget.Summary, error)
}
