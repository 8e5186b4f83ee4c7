package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadiaferrer/tessera/internal/domain"
	"github.com/nadiaferrer/tessera/internal/store"
)

func newTestStore(t *testing.T) *SlotStore {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSlotStore(db)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	slots := newTestStore(t)
	ctx := context.Background()

	snap := store.Snapshot{
		Projects:       []domain.Project{{ID: "p1", Name: "Touring Show"}},
		Members:        []domain.Member{{ID: "m1", Email: "ana@example.org"}},
		Tasks:          []domain.Task{{ID: "t1", ProjectID: "p1"}},
		Activities:     []domain.Activity{{ID: "a1", TaskID: "t1", Hours: 3}},
		DirectExpenses: []domain.DirectExpense{{ID: "e1", ProjectID: "p1", Amount: 50}},
		Reports:        []domain.Report{{ID: "r1", ProjectID: "p1"}},
	}

	require.NoError(t, slots.Save(ctx, snap))

	got, warnings, err := slots.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, snap, got)
}

func TestSaveOverwrites(t *testing.T) {
	slots := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, slots.Save(ctx, store.Snapshot{
		Members: []domain.Member{{ID: "m1"}, {ID: "m2"}},
	}))
	require.NoError(t, slots.Save(ctx, store.Snapshot{
		Members: []domain.Member{{ID: "m3"}},
	}))

	got, _, err := slots.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
	assert.Equal(t, "m3", got.Members[0].ID)
}

func TestLoadEmptyDatabase(t *testing.T) {
	slots := newTestStore(t)

	got, warnings, err := slots.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.Members)
}

func TestLoadCorruptSlotYieldsWarning(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	slots := NewSlotStore(db)
	ctx := context.Background()

	require.NoError(t, slots.Save(ctx, store.Snapshot{
		Projects: []domain.Project{{ID: "p1"}},
		Members:  []domain.Member{{ID: "m1"}},
	}))

	_, err = db.ExecContext(ctx,
		`UPDATE slots SET payload = 'not json' WHERE name = ?`, SlotMembers)
	require.NoError(t, err)

	got, warnings, err := slots.Load(ctx)

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], SlotMembers)

	// The damaged slot comes up empty; the healthy one is intact.
	assert.Empty(t, got.Members)
	require.Len(t, got.Projects, 1)
}
