package render

import (
	"image/color"

	"life-slots/pkg/core"
)

// fillGridRGBA writes one RGBA pixel per cell of g into buf, which must hold
// 4*rows*cols bytes. It returns false when buf has the wrong size.
func fillGridRGBA(buf []byte, cells []uint8, g core.Grid, on, off color.Color) ([]uint8, bool) {
	if len(buf) != 4*g.Rows()*g.Cols() {
		return cells, false
	}
	cells = g.AppendCells(cells[:0])
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	return cells, true
}

// CellAt maps a screen position to grid coordinates for a grid drawn at the
// given scale from the origin. ok is false outside the grid.
func CellAt(x, y, scale int, size core.Size) (i, j int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	i, j = y/scale, x/scale
	if i >= size.Rows || j >= size.Cols {
		return 0, 0, false
	}
	return i, j, true
}
