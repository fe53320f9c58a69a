// Package slots keeps up to three named snapshots of a grid and its turn
// counter in a key/value store.
package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"life-slots/pkg/core"
)

// Count is the number of save slots.
const Count = 3

var (
	// ErrEmpty reports a slot with nothing readable in it.
	ErrEmpty = errors.New("slot is empty")
	// ErrInvalidSlot reports a slot id outside 1..Count.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrNegativeTurn reports an attempt to save a negative turn counter.
	ErrNegativeTurn = errors.New("negative turn counter")
)

// ID names a slot, 1 through Count.
type ID int

// IDs lists every slot in order.
func IDs() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i + 1)
	}
	return ids
}

// Valid reports whether id names an existing slot.
func (id ID) Valid() bool { return id >= 1 && id <= Count }

func (id ID) gridKey() string { return "grid" + strconv.Itoa(int(id)) }
func (id ID) turnKey() string { return "turn" + strconv.Itoa(int(id)) }

// KV is the durable key/value storage the slots live in. Get reports
// found=false for keys that were never written. SetMany writes all pairs or
// none of them.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	SetMany(ctx context.Context, values map[string]string) error
}

// Snapshot is the content of an occupied slot.
type Snapshot struct {
	Grid core.Grid
	Turn int
}

// Store reads and writes snapshots.
type Store struct {
	kv KV
}

// NewStore returns a Store backed by kv.
func NewStore(kv KV) *Store { return &Store{kv: kv} }

// Save overwrites slot id with g and turn.
func (s *Store) Save(ctx context.Context, id ID, g core.Grid, turn int) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, id)
	}
	if turn < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTurn, turn)
	}
	data, err := json.Marshal(encodeMatrix(g.Matrix()))
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", id, err)
	}
	err = s.kv.SetMany(ctx, map[string]string{
		id.gridKey(): string(data),
		id.turnKey(): strconv.Itoa(turn),
	})
	if err != nil {
		return fmt.Errorf("save slot %d: %w", id, err)
	}
	return nil
}

// Load returns the snapshot in slot id. Missing, zero-length or unreadable
// grids all report ErrEmpty; the underlying cause, if any, is wrapped.
func (s *Store) Load(ctx context.Context, id ID) (Snapshot, error) {
	if !id.Valid() {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrInvalidSlot, id)
	}
	raw, found, err := s.kv.Get(ctx, id.gridKey())
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: slot %d: %w", ErrEmpty, id, err)
	}
	if !found {
		return Snapshot{}, fmt.Errorf("%w: slot %d", ErrEmpty, id)
	}
	var m [][]int
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Snapshot{}, fmt.Errorf("%w: slot %d: %w", ErrEmpty, id, err)
	}
	if len(m) == 0 {
		return Snapshot{}, fmt.Errorf("%w: slot %d", ErrEmpty, id)
	}
	cells, err := decodeMatrix(m)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: slot %d: %w", ErrEmpty, id, err)
	}
	g, err := core.FromMatrix(cells)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: slot %d: %w", ErrEmpty, id, err)
	}
	return Snapshot{Grid: g, Turn: s.loadTurn(ctx, id)}, nil
}

// loadTurn falls back to zero when the counter is missing or unreadable.
func (s *Store) loadTurn(ctx context.Context, id ID) int {
	raw, found, err := s.kv.Get(ctx, id.turnKey())
	if err != nil || !found {
		return 0
	}
	turn, err := strconv.Atoi(raw)
	if err != nil || turn < 0 {
		return 0
	}
	return turn
}

// IsOccupied reports whether slot id holds a loadable snapshot.
func (s *Store) IsOccupied(ctx context.Context, id ID) bool {
	_, err := s.Load(ctx, id)
	return err == nil
}

// Occupancy reports IsOccupied for every slot, indexed from zero.
func (s *Store) Occupancy(ctx context.Context) [Count]bool {
	var out [Count]bool
	for i, id := range IDs() {
		out[i] = s.IsOccupied(ctx, id)
	}
	return out
}

// The persisted form is plain integers so stored slots stay readable as JSON
// arrays of 0 and 1 rather than base64 byte strings.
func encodeMatrix(m [][]uint8) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		for j, v := range row {
			out[i][j] = int(v)
		}
	}
	return out
}

func decodeMatrix(m [][]int) ([][]uint8, error) {
	out := make([][]uint8, len(m))
	for i, row := range m {
		out[i] = make([]uint8, len(row))
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", core.ErrMalformedGrid, i, j, v)
			}
			out[i][j] = uint8(v)
		}
	}
	return out, nil
}
