package service

import (
	"context"
	"fmt"

	"github.com/nadiaferrer/tessera/internal/budget"
	"github.com/nadiaferrer/tessera/internal/store"
)

type reconcileService struct {
	store *store.Store
}

// NewReconcileService creates a read-only reconciliation service over the
// shared store.
func NewReconcileService(st *store.Store) ReconcileService {
	return &reconcileService{store: st}
}

func (s *reconcileService) BudgetReport(ctx context.Context, projectID string) (budget.Summary, error) {
	snap := s.store.Snapshot()
	p, ok := snap.FindProject(projectID)
	if !ok {
		return budget.Summary{}, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}
	return budget.Reconcile(p, snap.Tasks, snap.Activities, snap.DirectExpenses), nil
}
