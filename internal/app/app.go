//go:build ebiten

package app

import (
	"context"
	"image/color"

	"life-slots/internal/engine"
	"life-slots/internal/render"
	"life-slots/internal/slots"
	"life-slots/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	eng     *engine.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	panel   ui.Panel

	onColor  color.Color
	offColor color.Color

	scale int
	seed  int64
}

// New constructs a Game for the provided engine. occ may be nil.
func New(ctx context.Context, eng *engine.Engine, occ ui.Occupancy, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		eng:      eng,
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(ctx, eng, occ, ui.PanelWidth, seed),
		overlay:  ui.NewOverlay(scale),
		panel:    ui.LayoutPanel(ui.PanelWidth),
		onColor:  color.RGBA{R: 0, G: 123, B: 255, A: 255},
		offColor: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		scale:    scale,
		seed:     seed,
	}
}

// Update handles per-frame input. Turns advance on the engine's own timer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.eng.Stop()
		return ebiten.Termination
	}

	st := g.eng.State()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.press(ui.ActionRun, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.press(ui.ActionStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.press(ui.ActionReset, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.press(ui.ActionRandom, 0)
	}
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		kind := ui.ActionLoad
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			kind = ui.ActionSave
		}
		g.press(kind, slots.ID(i+1))
	}

	g.overlay.Update(st.Grid.Size())
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i, j, ok := g.overlay.Hovered(); ok {
			g.hud.SetStatus("", g.eng.Toggle(i, j))
		}
	}

	g.hud.Update(g.gridWidth())
	g.syncWindow()
	return nil
}

func (g *Game) press(kind ui.ActionKind, slot slots.ID) {
	for _, b := range g.panel.Buttons {
		if b.Kind == kind && b.Slot == slot {
			g.hud.Do(b)
			return
		}
	}
}

func (g *Game) gridWidth() int {
	return g.eng.State().Grid.Cols() * g.scale
}

func (g *Game) syncWindow() {
	w, h := g.Layout(0, 0)
	if cw, ch := ebiten.WindowSize(); cw != w || ch != h {
		ebiten.SetWindowSize(w, h)
	}
}

// Draw renders the current grid and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.eng.State()
	g.painter.Blit(screen, st.Grid, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, st.Grid.Cols()*g.scale, h)
}

// Layout returns the logical screen size: the scaled grid plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.State().Grid.Size()
	w := s.Cols*g.scale + ui.PanelWidth
	h := s.Rows * g.scale
	if h < ui.PanelMinHeight {
		h = ui.PanelMinHeight
	}
	return w, h
}
