package slots_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"life-slots/internal/slots"
	"life-slots/internal/storage"
	"life-slots/pkg/core"
)

func sampleGrid(t *testing.T) core.Grid {
	t.Helper()
	g, err := core.FromMatrix([][]uint8{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 0},
	})
	require.NoError(t, err)
	return g
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := slots.NewStore(storage.NewMemoryKV())
	g := sampleGrid(t)

	for _, id := range slots.IDs() {
		turn := int(id) * 11
		require.NoError(t, store.Save(ctx, id, g, turn))

		snap, err := store.Load(ctx, id)
		require.NoError(t, err)
		require.True(t, snap.Grid.Equal(g), "slot %d grid mismatch", id)
		require.Equal(t, turn, snap.Turn)
	}
}

func TestLoadNeverSaved(t *testing.T) {
	ctx := context.Background()
	store := slots.NewStore(storage.NewMemoryKV())

	for _, id := range slots.IDs() {
		_, err := store.Load(ctx, id)
		require.ErrorIs(t, err, slots.ErrEmpty)
		require.False(t, store.IsOccupied(ctx, id))
	}
	require.Equal(t, [slots.Count]bool{}, store.Occupancy(ctx))
}

func TestAllDeadGridIsOccupied(t *testing.T) {
	ctx := context.Background()
	store := slots.NewStore(storage.NewMemoryKV())
	dead, err := core.New(30, 50)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, 2, dead, 0))
	require.True(t, store.IsOccupied(ctx, 2))
	require.Equal(t, [slots.Count]bool{false, true, false}, store.Occupancy(ctx))

	snap, err := store.Load(ctx, 2)
	require.NoError(t, err)
	require.True(t, snap.Grid.Equal(dead))
	require.Equal(t, 0, snap.Turn)
}

func TestSaveOverwritesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	store := slots.NewStore(kv)
	g := sampleGrid(t)

	require.NoError(t, store.Save(ctx, 1, g, 4))
	first, _, _ := kv.Get(ctx, "grid1")
	require.NoError(t, store.Save(ctx, 1, g, 4))
	second, _, _ := kv.Get(ctx, "grid1")
	require.Equal(t, first, second)

	other, err := g.Toggle(0, 0)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, 1, other, 9))

	snap, err := store.Load(ctx, 1)
	require.NoError(t, err)
	require.True(t, snap.Grid.Equal(other))
	require.Equal(t, 9, snap.Turn)
}

func TestPersistedFormat(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	store := slots.NewStore(kv)

	g, err := core.FromMatrix([][]uint8{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, 3, g, 12))

	raw, found, err := kv.Get(ctx, "grid3")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `[[1,0],[0,1]]`, raw)

	turn, _, _ := kv.Get(ctx, "turn3")
	require.Equal(t, "12", turn)
}

func TestMalformedDataLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"not json":   "{{{",
		"empty":      "[]",
		"ragged":     "[[0,1],[1]]",
		"non binary": "[[0,2]]",
		"null":       "null",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			require.NoError(t, kv.Set(ctx, "grid1", raw))
			store := slots.NewStore(kv)

			_, err := store.Load(ctx, 1)
			require.ErrorIs(t, err, slots.ErrEmpty)
			require.False(t, store.IsOccupied(ctx, 1))
		})
	}
}

func TestMissingTurnLoadsAsZero(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "grid1", "[[1]]"))
	require.NoError(t, kv.Set(ctx, "turn2", "banana"))
	require.NoError(t, kv.Set(ctx, "grid2", "[[0]]"))
	store := slots.NewStore(kv)

	snap, err := store.Load(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0, snap.Turn)

	snap, err = store.Load(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 0, snap.Turn)
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()
	store := slots.NewStore(storage.NewMemoryKV())
	g := sampleGrid(t)

	for _, id := range []slots.ID{0, 4, -1} {
		require.ErrorIs(t, store.Save(ctx, id, g, 1), slots.ErrInvalidSlot)
		_, err := store.Load(ctx, id)
		require.ErrorIs(t, err, slots.ErrInvalidSlot)
	}
	require.ErrorIs(t, store.Save(ctx, 1, g, -1), slots.ErrNegativeTurn)
	require.False(t, store.IsOccupied(ctx, 1))
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failingKV) SetMany(context.Context, map[string]string) error { return errors.New("disk on fire") }

// rejectingKV refuses any batch that touches key, leaving earlier values in
// place.
type rejectingKV struct {
	*storage.MemoryKV
	key string
}

func (r rejectingKV) SetMany(ctx context.Context, values map[string]string) error {
	if _, ok := values[r.key]; ok {
		return errors.New("disk full")
	}
	return r.MemoryKV.SetMany(ctx, values)
}

func TestFailedSaveKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryKV()
	first := sampleGrid(t)
	require.NoError(t, slots.NewStore(mem).Save(ctx, 1, first, 7))

	store := slots.NewStore(rejectingKV{MemoryKV: mem, key: "turn1"})
	second, err := core.New(4, 4)
	require.NoError(t, err)
	second, err = second.Toggle(0, 0)
	require.NoError(t, err)
	err = store.Save(ctx, 1, second, 99)
	require.ErrorContains(t, err, "disk full")

	snap, err := store.Load(ctx, 1)
	require.NoError(t, err)
	require.True(t, snap.Grid.Equal(first))
	require.Equal(t, 7, snap.Turn)
}

func TestReadFailureIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := slots.NewStore(failingKV{})

	_, err := store.Load(ctx, 1)
	require.ErrorIs(t, err, slots.ErrEmpty)
	require.ErrorContains(t, err, "disk on fire")

	require.Error(t, store.Save(ctx, 1, sampleGrid(t), 0))
}

func TestSQLiteBackedSlots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "slots.db")
	kv, err := storage.OpenSQLiteKV(dbPath)
	require.NoError(t, err)

	g := sampleGrid(t)
	require.NoError(t, slots.NewStore(kv).Save(ctx, 2, g, 42))
	require.NoError(t, kv.Close())

	kv, err = storage.OpenSQLiteKV(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	store := slots.NewStore(kv)
	snap, err := store.Load(ctx, 2)
	require.NoError(t, err)
	require.True(t, snap.Grid.Equal(g))
	require.Equal(t, 42, snap.Turn)
	require.Equal(t, [slots.Count]bool{false, true, false}, store.Occupancy(ctx))
}
