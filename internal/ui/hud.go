//go:build ebiten

package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"life-slots/internal/core"
	"life-slots/internal/engine"
	"life-slots/internal/slots"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Occupancy reports which slots hold a snapshot.
type Occupancy interface {
	Occupancy(ctx context.Context) [slots.Count]bool
}

// HUD renders the control panel to the right of the grid.
type HUD struct {
	ctx      context.Context
	ctrl     Controller
	occ      Occupancy
	layout   Panel
	panel    *ebiten.Image
	pixel    *ebiten.Image
	height   int
	occupied [slots.Count]bool
	state    engine.State
	status   string
	failed   bool
	seed     int64

	panelOffsetX int
}

// NewHUD constructs a HUD for the provided controller and panel width. occ
// may be nil when slots are unavailable.
func NewHUD(ctx context.Context, ctrl Controller, occ Occupancy, width int, seed int64) *HUD {
	h := &HUD{ctx: ctx, ctrl: ctrl, occ: occ, layout: LayoutPanel(width), seed: seed}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.refreshOccupancy()
	return h
}

// Update refreshes the cached state and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.state = h.ctrl.State()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	b, ok := h.layout.HitTest(mx-h.panelOffsetX, my)
	if !ok {
		return
	}
	h.Do(b)
}

// Do applies a button action and records its outcome on the status line.
func (h *HUD) Do(b Button) {
	if b.Kind == ActionRandom {
		h.seed++
	}
	status, err := Apply(h.ctx, h.ctrl, b, h.seed)
	if b.Kind == ActionSave {
		h.refreshOccupancy()
	}
	h.SetStatus(status, err)
	h.state = h.ctrl.State()
}

// SetStatus replaces the status line.
func (h *HUD) SetStatus(status string, err error) {
	if err != nil {
		h.status, h.failed = err.Error(), true
		return
	}
	if status != "" {
		h.status, h.failed = status, false
	}
}

func (h *HUD) refreshOccupancy() {
	if h.occ == nil {
		return
	}
	h.occupied = h.occ.Occupancy(h.ctx)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.layout.Width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.layout.Width, height)
		h.height = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	colorLabel = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorDim   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	colorError = color.RGBA{R: 243, G: 139, B: 168, A: 255}
)

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	header := fmt.Sprintf("Turn %d  Alive %d  %s", h.state.Turn, h.state.Grid.Population(), h.state.Run)
	text.Draw(h.panel, header, face, panelPadding, panelPadding+headerBaseline, colorLabel)

	for _, b := range h.layout.Buttons {
		label := b.Label
		if b.Kind == ActionRun && h.state.Run == engine.Running {
			label = "Stop"
		}
		enabled := true
		if b.Kind == ActionAdjust {
			current := ControlValue(h.state, b.Control.Key)
			enabled = b.Control.Nudge(current, b.Delta) != current
		}
		if b.Kind == ActionLoad {
			enabled = h.occupied[int(b.Slot)-1]
		}
		h.drawButton(b.Rect, label, enabled)
	}

	for _, row := range h.layout.Controls {
		y := row.Top + labelBaseline
		text.Draw(h.panel, row.Control.Label, face, panelPadding, y, colorLabel)
		value := strconv.Itoa(ControlValue(h.state, row.Control.Key))
		if row.Control.Type == core.ParamTypeDuration {
			value += "ms"
		}
		text.Draw(h.panel, value, face, panelPadding+110, y, colorLabel)
	}

	for i, top := range h.layout.SlotTops {
		label := fmt.Sprintf("Slot %d", i+1)
		clr := colorDim
		if h.occupied[i] {
			label += " *"
			clr = colorLabel
		}
		text.Draw(h.panel, label, face, panelPadding, top+labelBaseline, clr)
	}

	if h.status != "" {
		clr := colorDim
		if h.failed {
			clr = colorError
		}
		text.Draw(h.panel, h.status, face, panelPadding, h.height-panelPadding, clr)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
