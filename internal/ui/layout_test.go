package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"life-slots/internal/core"
	"life-slots/internal/engine"
	"life-slots/internal/slots"
	"life-slots/internal/storage"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.Options{
		Rows:     10,
		Cols:     10,
		Interval: 500 * time.Millisecond,
		Slots:    slots.NewStore(storage.NewMemoryKV()),
	})
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng
}

func find(t *testing.T, p Panel, match func(Button) bool) Button {
	t.Helper()
	for _, b := range p.Buttons {
		if match(b) {
			return b
		}
	}
	t.Fatal("button not found")
	return Button{}
}

func center(b Button) (int, int) {
	return (b.Rect.Min.X + b.Rect.Max.X) / 2, (b.Rect.Min.Y + b.Rect.Max.Y) / 2
}

func TestLayoutButtonsDoNotOverlap(t *testing.T) {
	p := LayoutPanel(PanelWidth)
	require.Len(t, p.Controls, 3)
	require.Len(t, p.SlotTops, slots.Count)
	for i, a := range p.Buttons {
		require.True(t, a.Rect.Max.X <= PanelWidth, "button %q leaves the panel", a.Label)
		for _, b := range p.Buttons[i+1:] {
			require.False(t, a.Rect.Overlaps(b.Rect), "%q overlaps %q", a.Label, b.Label)
		}
	}
}

func TestHitTest(t *testing.T) {
	p := LayoutPanel(PanelWidth)
	save2 := find(t, p, func(b Button) bool { return b.Kind == ActionSave && b.Slot == 2 })

	got, ok := p.HitTest(center(save2))
	require.True(t, ok)
	require.Equal(t, ActionSave, got.Kind)
	require.Equal(t, slots.ID(2), got.Slot)

	_, ok = p.HitTest(0, 0)
	require.False(t, ok)
}

func TestApplyRunStepReset(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	p := LayoutPanel(PanelWidth)
	run := find(t, p, func(b Button) bool { return b.Kind == ActionRun })
	step := find(t, p, func(b Button) bool { return b.Kind == ActionStep })
	reset := find(t, p, func(b Button) bool { return b.Kind == ActionReset })

	status, err := Apply(ctx, eng, step, 0)
	require.NoError(t, err)
	require.Equal(t, "turn 1", status)

	_, err = Apply(ctx, eng, run, 0)
	require.NoError(t, err)
	require.Equal(t, engine.Running, eng.State().Run)

	status, err = Apply(ctx, eng, run, 0)
	require.NoError(t, err)
	require.Equal(t, "stopped", status)

	_, err = Apply(ctx, eng, reset, 0)
	require.NoError(t, err)
	require.Equal(t, 0, eng.State().Turn)
	require.Equal(t, 30, eng.State().Grid.Rows())
}

// tickingController commits an extra turn between the status read and the
// step, the way a scheduled tick can.
type tickingController struct {
	*engine.Engine
	reads int
}

func (c *tickingController) State() engine.State {
	c.reads++
	if c.reads == 1 {
		defer c.Engine.AdvanceOne()
	}
	return c.Engine.State()
}

func TestApplyStepReportsCommittedTurn(t *testing.T) {
	eng := newEngine(t)
	c := &tickingController{Engine: eng}
	step := find(t, LayoutPanel(PanelWidth), func(b Button) bool { return b.Kind == ActionStep })

	status, err := Apply(context.Background(), c, step, 0)
	require.NoError(t, err)
	require.Equal(t, 2, eng.State().Turn)
	require.Equal(t, "turn 2", status)
}

func TestApplyAdjust(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	p := LayoutPanel(PanelWidth)
	rowsUp := find(t, p, func(b Button) bool { return b.Kind == ActionAdjust && b.Control.Key == core.KeyRows && b.Delta > 0 })
	colsDown := find(t, p, func(b Button) bool { return b.Kind == ActionAdjust && b.Control.Key == core.KeyCols && b.Delta < 0 })
	faster := find(t, p, func(b Button) bool { return b.Kind == ActionAdjust && b.Control.Key == core.KeyInterval && b.Delta < 0 })

	_, err := Apply(ctx, eng, rowsUp, 0)
	require.NoError(t, err)
	_, err = Apply(ctx, eng, colsDown, 0)
	require.NoError(t, err)
	require.Equal(t, 11, eng.State().Grid.Rows())
	require.Equal(t, 9, eng.State().Grid.Cols())

	status, err := Apply(ctx, eng, faster, 0)
	require.NoError(t, err)
	require.Equal(t, "interval 400ms", status)
	require.Equal(t, 400*time.Millisecond, eng.State().Interval)
}

func TestApplySlots(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	p := LayoutPanel(PanelWidth)
	save1 := find(t, p, func(b Button) bool { return b.Kind == ActionSave && b.Slot == 1 })
	load1 := find(t, p, func(b Button) bool { return b.Kind == ActionLoad && b.Slot == 1 })
	load3 := find(t, p, func(b Button) bool { return b.Kind == ActionLoad && b.Slot == 3 })
	random := find(t, p, func(b Button) bool { return b.Kind == ActionRandom })

	_, err := Apply(ctx, eng, random, 5)
	require.NoError(t, err)
	saved := eng.State().Grid

	status, err := Apply(ctx, eng, save1, 0)
	require.NoError(t, err)
	require.Equal(t, "saved slot 1", status)

	eng.Reset()
	status, err = Apply(ctx, eng, load1, 0)
	require.NoError(t, err)
	require.Equal(t, "loaded slot 1", status)
	require.True(t, eng.State().Grid.Equal(saved))

	status, err = Apply(ctx, eng, load3, 0)
	require.NoError(t, err)
	require.Equal(t, "slot 3 is empty", status)
}

func TestPanelMinHeightFitsEveryButton(t *testing.T) {
	p := LayoutPanel(PanelWidth)
	for _, b := range p.Buttons {
		require.LessOrEqual(t, b.Rect.Max.Y, PanelMinHeight, "button %q", b.Label)
	}
}
