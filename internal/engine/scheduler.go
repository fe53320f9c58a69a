package engine

import (
	"errors"
	"fmt"
	"time"
)

// Bounds on the delay between scheduled turns.
const (
	MinInterval = 100 * time.Millisecond
	MaxInterval = 1000 * time.Millisecond
)

// ErrInvalidInterval reports a turn interval outside [MinInterval, MaxInterval].
var ErrInvalidInterval = errors.New("invalid turn interval")

// RunState tells whether the scheduler keeps rescheduling turns.
type RunState int

const (
	// Stopped means no turn is pending.
	Stopped RunState = iota
	// Running means a turn is scheduled after every commit.
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The engine uses the wall clock unless told
// otherwise.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Start switches to Running, commits one turn immediately and schedules the
// next one. It does nothing when already running.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.run == Running {
		return
	}
	e.run = Running
	e.epoch++
	e.stepLocked()
	e.scheduleLocked(e.epoch)
	e.publishLocked()
}

// Stop switches to Stopped. A pending turn is cancelled; a turn already
// committing finishes first because it holds the lock.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run == Stopped {
		return
	}
	e.haltLocked()
	e.publishLocked()
}

// AdvanceOne commits exactly one turn without touching the run state or the
// pending schedule.
func (e *Engine) AdvanceOne() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked()
	e.publishLocked()
}

// SetInterval changes the delay used for turns scheduled from now on.
func (e *Engine) SetInterval(d time.Duration) error {
	if d < MinInterval || d > MaxInterval {
		return fmt.Errorf("%w: %s outside [%s,%s]", ErrInvalidInterval, d, MinInterval, MaxInterval)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.interval = d
	e.publishLocked()
	return nil
}

// tick runs when a scheduled turn fires. It commits only if the run that
// scheduled it is still the current one.
func (e *Engine) tick(epoch uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run != Running || e.epoch != epoch {
		return
	}
	e.stepLocked()
	e.scheduleLocked(epoch)
	e.publishLocked()
}

func (e *Engine) scheduleLocked(epoch uint64) {
	e.timer = e.clock.AfterFunc(e.interval, func() { e.tick(epoch) })
}

// haltLocked stops the run and invalidates any turn already scheduled.
func (e *Engine) haltLocked() {
	e.run = Stopped
	e.epoch++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
