//go:build ebiten

package ui

import (
	"image/color"

	"life-slots/internal/render"
	"life-slots/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the cell under the mouse cursor.
type Overlay struct {
	scale int
	pixel *ebiten.Image
	i, j  int
	hover bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records which cell of a grid of the given size is hovered.
func (o *Overlay) Update(size core.Size) {
	mx, my := ebiten.CursorPosition()
	o.i, o.j, o.hover = render.CellAt(mx, my, o.scale, size)
}

// Hovered returns the cell under the cursor, if any.
func (o *Overlay) Hovered() (int, int, bool) { return o.i, o.j, o.hover }

// Draw renders the highlight onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.hover || o.scale <= 0 {
		return
	}
	x := float64(o.j * o.scale)
	y := float64(o.i * o.scale)
	s := float64(o.scale)
	tint := color.RGBA{R: 250, G: 179, B: 135, A: 255}
	o.rect(screen, x, y, s, 1, tint)
	o.rect(screen, x, y+s-1, s, 1, tint)
	o.rect(screen, x, y, 1, s, tint)
	o.rect(screen, x+s-1, y, 1, s, tint)
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
