// Package persist is the durable local store: one named slot per entity
// collection, each holding the JSON-serialized collection. The in-memory
// store stays authoritative; slots are rewritten after every successful
// mutation and read once at startup.
package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/store"
)

// Slot names, one per collection.
const (
	SlotProjects       = "projects"
	SlotMembers        = "members"
	SlotTasks          = "tasks"
	SlotActivities     = "activities"
	SlotDirectExpenses = "direct_expenses"
	SlotReports        = "reports"
)

// SlotStore reads and writes workspace snapshots through the slots table.
type SlotStore struct {
	db *sql.DB
}

// NewSlotStore creates a SlotStore over an opened database.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Save writes all six slots in one transaction so a crash cannot leave the
// slots mutually inconsistent.
func (s *SlotStore) Save(ctx context.Context, snap store.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	write := func(name string, v any) error {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding slot %s: %w", name, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
			name, string(payload), now)
		if err != nil {
			return fmt.Errorf("writing slot %s: %w", name, err)
		}
		return nil
	}

	if err := write(SlotProjects, snap.Projects); err != nil {
		return err
	}
	if err := write(SlotMembers, snap.Members); err != nil {
		return err
	}
	if err := write(SlotTasks, snap.Tasks); err != nil {
		return err
	}
	if err := write(SlotActivities, snap.Activities); err != nil {
		return err
	}
	if err := write(SlotDirectExpenses, snap.DirectExpenses); err != nil {
		return err
	}
	if err := write(SlotReports, snap.Reports); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// Load reads every slot into a snapshot. A missing or corrupt slot yields an
// empty collection and a warning, never a hard failure: the workspace must
// stay usable even if one slot was damaged.
func (s *SlotStore) Load(ctx context.Context) (store.Snapshot, []string, error) {
	var snap store.Snapshot
	var warnings []string

	// Decode into a temporary so a corrupt payload cannot half-fill the
	// destination; the slot simply comes up empty.
	read := func(name string, assign func([]byte) error) {
		var payload string
		err := s.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, name).Scan(&payload)
		if err == sql.ErrNoRows {
			return
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("slot %s: read failed: %v", name, err))
			return
		}
		if err := assign([]byte(payload)); err != nil {
			warnings = append(warnings, fmt.Sprintf("slot %s: corrupt payload, starting empty: %v", name, err))
		}
	}

	read(SlotProjects, func(data []byte) error {
		var v []domain.Project
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		snap.Projects = v
		return nil
	})
	read(SlotMembers, func(data []byte) error {
		var v []domain.Member
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		snap.Members = v
		return nil
	})
	read(SlotTasks, func(data []byte) error {
		var v []domain.Task
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		snap.Tasks = v
		return nil
	})
	read(SlotActivities, func(data []byte) error {
		var v []domain.Activity
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		snap.Activities = v
		return nil
	})
	read(SlotDirectExpenses, func(data []byte) error {
		var v []domain.DirectExpense
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		snap.DirectExpenses = v
		return nil
	})
	read(SlotReports, func(data []byte) error {
		var v []domain.Report
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		snap.Reports = v
		return nil
	})

	return snap, warnings, nil
}
