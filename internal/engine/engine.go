// Package engine owns the live grid and turn counter and drives the
// simulation from a single cancellable timer.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	ctrl "life-slots/internal/core"
	"life-slots/internal/slots"
	"life-slots/pkg/core"
	"life-slots/pkg/sims/life"
)

// ErrNoSlots is returned by Save and Load when the engine has no slot store.
var ErrNoSlots = errors.New("no slot store configured")

// SlotStore persists snapshots between sessions.
type SlotStore interface {
	Save(ctx context.Context, id slots.ID, g core.Grid, turn int) error
	Load(ctx context.Context, id slots.ID) (slots.Snapshot, error)
}

// State is a consistent view of the engine taken under its lock.
type State struct {
	Grid     core.Grid
	Turn     int
	Run      RunState
	Interval time.Duration
}

// Options configures a new Engine. Rows and Cols are taken as given, so a
// zero value means an empty dimension. A zero Interval or Clock selects the
// default.
type Options struct {
	Rows     int
	Cols     int
	Interval time.Duration
	Clock    Clock
	Slots    SlotStore
}

// Engine is the single owner of the grid, the turn counter and the run state.
// All methods are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	grid     core.Grid
	turn     int
	run      RunState
	interval time.Duration
	epoch    uint64
	timer    Timer
	clock    Clock
	slots    SlotStore
	updates  chan State
	closed   bool
}

// New builds a stopped engine holding an empty grid of the requested size.
func New(opts Options) (*Engine, error) {
	if opts.Interval == 0 {
		opts.Interval = ctrl.DefaultIntervalMS * time.Millisecond
	}
	if opts.Interval < MinInterval || opts.Interval > MaxInterval {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, opts.Interval)
	}
	if opts.Clock == nil {
		opts.Clock = wallClock{}
	}
	g, err := core.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}
	return &Engine{
		grid:     g,
		interval: opts.Interval,
		clock:    opts.Clock,
		slots:    opts.Slots,
		updates:  make(chan State, 1),
	}, nil
}

// State returns the current grid, turn, run state and interval.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Updates delivers the latest State after every change. Only the newest state
// is kept when the reader falls behind. The channel closes with the engine.
func (e *Engine) Updates() <-chan State { return e.updates }

// Toggle flips one cell of the current grid.
func (e *Engine) Toggle(i, j int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, err := e.grid.Toggle(i, j)
	if err != nil {
		return err
	}
	e.grid = g
	e.publishLocked()
	return nil
}

// Resize replaces the grid with an empty rows×cols grid. The run is stopped
// and the turn counter restarts from zero. On error nothing changes.
func (e *Engine) Resize(rows, cols int) error {
	g, err := core.Resize(rows, cols, nil)
	if err != nil {
		return err
	}
	e.replace(g, 0)
	return nil
}

// Reset restores the default empty grid with the counter at zero.
func (e *Engine) Reset() {
	g, _ := core.New(ctrl.DefaultRows, ctrl.DefaultCols)
	e.replace(g, 0)
}

// Randomize fills the current shape with a pattern derived from seed.
func (e *Engine) Randomize(seed int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, err := core.Random(e.grid.Size(), seed)
	if err != nil {
		return err
	}
	e.replaceLocked(g, 0)
	return nil
}

// Save writes the current grid and turn counter to slot id.
func (e *Engine) Save(ctx context.Context, id slots.ID) error {
	if e.slots == nil {
		return ErrNoSlots
	}
	st := e.State()
	return e.slots.Save(ctx, id, st.Grid, st.Turn)
}

// Load replaces the grid and counter with the snapshot in slot id and stops
// the run. An empty slot leaves the engine untouched and returns
// slots.ErrEmpty.
func (e *Engine) Load(ctx context.Context, id slots.ID) error {
	if e.slots == nil {
		return ErrNoSlots
	}
	snap, err := e.slots.Load(ctx, id)
	if err != nil {
		return err
	}
	g, err := core.Resize(snap.Grid.Rows(), snap.Grid.Cols(), &snap.Grid)
	if err != nil {
		return err
	}
	e.replace(g, snap.Turn)
	return nil
}

// Close stops the scheduler and closes the Updates channel.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.haltLocked()
	e.closed = true
	close(e.updates)
}

func (e *Engine) replace(g core.Grid, turn int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.replaceLocked(g, turn)
}

func (e *Engine) replaceLocked(g core.Grid, turn int) {
	e.haltLocked()
	e.grid = g
	e.turn = turn
	e.publishLocked()
}

func (e *Engine) stepLocked() {
	e.grid = life.Step(e.grid)
	e.turn++
}

func (e *Engine) stateLocked() State {
	return State{Grid: e.grid, Turn: e.turn, Run: e.run, Interval: e.interval}
}

// publishLocked swaps the pending update for the current state. Holding the
// lock keeps updates in commit order.
func (e *Engine) publishLocked() {
	if e.closed {
		return
	}
	select {
	case <-e.updates:
	default:
	}
	e.updates <- e.stateLocked()
}
