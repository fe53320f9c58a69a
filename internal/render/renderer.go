//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"life-slots/pkg/core"
)

// GridPainter uploads grid snapshots into an image and draws it scaled.
// The backing image is reallocated when the grid shape changes.
type GridPainter struct {
	size  core.Size
	img   *ebiten.Image
	buf   []byte
	cells []uint8
}

// NewGridPainter returns a painter with no image yet.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// Blit draws g onto dst with the top-left cell at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, on, off color.Color, scale int) {
	if g.Empty() {
		return
	}
	if gp.img == nil || gp.size != g.Size() {
		gp.size = g.Size()
		gp.img = ebiten.NewImage(gp.size.Cols, gp.size.Rows)
		gp.buf = make([]byte, 4*gp.size.Rows*gp.size.Cols)
	}
	var ok bool
	gp.cells, ok = fillGridRGBA(gp.buf, gp.cells, g, on, off)
	if !ok {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
