package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"life-slots/internal/core"
	"life-slots/internal/engine"
	"life-slots/internal/slots"
)

// ActionKind enumerates what a panel button does.
type ActionKind int

const (
	ActionRun ActionKind = iota
	ActionStep
	ActionReset
	ActionRandom
	ActionAdjust
	ActionSave
	ActionLoad
)

// Button is a clickable rectangle of the side panel, in panel coordinates.
type Button struct {
	Rect  image.Rectangle
	Label string
	Kind  ActionKind
	// Control and Delta describe an ActionAdjust button.
	Control core.ParameterControl
	Delta   int
	// Slot is set for ActionSave and ActionLoad.
	Slot slots.ID
}

// Controller is the part of the engine the panel drives.
type Controller interface {
	State() engine.State
	Start()
	Stop()
	AdvanceOne()
	Reset()
	Randomize(seed int64) error
	Resize(rows, cols int) error
	SetInterval(d time.Duration) error
	Save(ctx context.Context, id slots.ID) error
	Load(ctx context.Context, id slots.ID) error
}

// ControlRow is the vertical position of one adjustable control.
type ControlRow struct {
	Control core.ParameterControl
	Top     int
}

// Panel is the computed layout of the side panel.
type Panel struct {
	Width    int
	Controls []ControlRow
	SlotTops []int
	Buttons  []Button
}

// LayoutPanel places every button for a panel of the given width.
func LayoutPanel(width int) Panel {
	p := Panel{Width: width}
	top := controlsTop

	actions := []struct {
		label string
		kind  ActionKind
	}{
		{"Run", ActionRun},
		{"Step", ActionStep},
		{"Random", ActionRandom},
		{"Reset", ActionReset},
	}
	actionWidth := (width - 2*panelPadding - (len(actions)-1)*buttonGap) / len(actions)
	for i, a := range actions {
		x := panelPadding + i*(actionWidth+buttonGap)
		p.Buttons = append(p.Buttons, Button{
			Rect:  image.Rect(x, top, x+actionWidth, top+buttonSize),
			Label: a.label,
			Kind:  a.kind,
		})
	}
	top += lineHeight

	for _, ctrl := range core.Controls() {
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.Controls = append(p.Controls, ControlRow{Control: ctrl, Top: top})
		p.Buttons = append(p.Buttons,
			Button{Rect: minus, Label: "-", Kind: ActionAdjust, Control: ctrl, Delta: -1},
			Button{Rect: plus, Label: "+", Kind: ActionAdjust, Control: ctrl, Delta: 1},
		)
		top += lineHeight
	}

	for _, id := range slots.IDs() {
		buttonY := top + (lineHeight-buttonSize)/2
		load := image.Rect(width-panelPadding-slotButtonWidth, buttonY, width-panelPadding, buttonY+buttonSize)
		save := image.Rect(load.Min.X-buttonGap-slotButtonWidth, buttonY, load.Min.X-buttonGap, buttonY+buttonSize)
		p.SlotTops = append(p.SlotTops, top)
		p.Buttons = append(p.Buttons,
			Button{Rect: save, Label: "Save", Kind: ActionSave, Slot: id},
			Button{Rect: load, Label: "Load", Kind: ActionLoad, Slot: id},
		)
		top += lineHeight
	}
	return p
}

// HitTest returns the button under (x, y), in panel coordinates.
func (p Panel) HitTest(x, y int) (Button, bool) {
	for _, b := range p.Buttons {
		if pointInRect(x, y, b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// ControlValue returns the current value shown next to a control.
func ControlValue(st engine.State, key string) int {
	switch key {
	case core.KeyRows:
		return st.Grid.Rows()
	case core.KeyCols:
		return st.Grid.Cols()
	case core.KeyInterval:
		return int(st.Interval / time.Millisecond)
	}
	return 0
}

// Apply performs the button's action and returns a status line.
func Apply(ctx context.Context, c Controller, b Button, seed int64) (string, error) {
	st := c.State()
	switch b.Kind {
	case ActionRun:
		if st.Run == engine.Running {
			c.Stop()
			return "stopped", nil
		}
		c.Start()
		return "running", nil
	case ActionStep:
		c.AdvanceOne()
		return fmt.Sprintf("turn %d", c.State().Turn), nil
	case ActionReset:
		c.Reset()
		return "reset", nil
	case ActionRandom:
		if err := c.Randomize(seed); err != nil {
			return "", err
		}
		return fmt.Sprintf("random fill (seed %d)", seed), nil
	case ActionAdjust:
		current := ControlValue(st, b.Control.Key)
		target := b.Control.Nudge(current, b.Delta)
		if target == current {
			return "", nil
		}
		switch b.Control.Key {
		case core.KeyRows:
			return fmt.Sprintf("grid %dx%d", target, st.Grid.Cols()), c.Resize(target, st.Grid.Cols())
		case core.KeyCols:
			return fmt.Sprintf("grid %dx%d", st.Grid.Rows(), target), c.Resize(st.Grid.Rows(), target)
		case core.KeyInterval:
			return fmt.Sprintf("interval %dms", target), c.SetInterval(time.Duration(target) * time.Millisecond)
		}
	case ActionSave:
		c.Stop()
		if err := c.Save(ctx, b.Slot); err != nil {
			return "", err
		}
		return fmt.Sprintf("saved slot %d", b.Slot), nil
	case ActionLoad:
		err := c.Load(ctx, b.Slot)
		if errors.Is(err, slots.ErrEmpty) {
			return fmt.Sprintf("slot %d is empty", b.Slot), nil
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("loaded slot %d", b.Slot), nil
	}
	return "", nil
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding    = 12
	lineHeight      = 36
	buttonSize      = 24
	buttonGap       = 6
	slotButtonWidth = 48
	headerBaseline  = 18
	labelBaseline   = 24
	controlsTop     = panelPadding + headerBaseline + 14

	// PanelWidth is the default width of the side panel in pixels.
	PanelWidth = 260
	// PanelMinHeight fits the action row, every control, every slot and the status line.
	PanelMinHeight = controlsTop + (1+3+slots.Count)*lineHeight + 2*panelPadding + headerBaseline
)
