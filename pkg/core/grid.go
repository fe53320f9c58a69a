package core

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDimension bounds both the row and the column count of a grid.
const MaxDimension = 100

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Grid is an immutable rows×cols matrix of binary cells stored in row-major
// order. Every operation that changes a cell returns a new Grid.
type Grid struct {
	rows, cols int
	data       []uint8
}

// New returns a grid of the given dimensions with every cell dead.
func New(rows, cols int) (Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	return Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// Resize returns existing verbatim when it carries at least one row, letting
// its own shape override the requested one. Otherwise it behaves like New.
func Resize(rows, cols int, existing *Grid) (Grid, error) {
	if existing != nil && existing.rows > 0 {
		return *existing, nil
	}
	return New(rows, cols)
}

// ParseDimension converts collaborator input into a row or column count.
func ParseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidDimension, s)
	}
	if n < 0 || n > MaxDimension {
		return 0, fmt.Errorf("%w: %d outside [0,%d]", ErrInvalidDimension, n, MaxDimension)
	}
	return n, nil
}

// FromMatrix builds a grid from nested rows of 0/1 values.
func FromMatrix(m [][]uint8) (Grid, error) {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	if err := checkDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	g := Grid{rows: rows, cols: cols, data: make([]uint8, 0, rows*cols)}
	for i, row := range m {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(row), cols)
		}
		for j, v := range row {
			if v > 1 {
				return Grid{}, fmt.Errorf("%w: cell (%d,%d) = %d", ErrMalformedGrid, i, j, v)
			}
		}
		g.data = append(g.data, row...)
	}
	return g, nil
}

func checkDimensions(rows, cols int) error {
	if rows < 0 || rows > MaxDimension || cols < 0 || cols > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Size returns both dimensions.
func (g Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Empty reports whether the grid has no cells to display.
func (g Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Alive reports the state of cell (i, j). Off-grid cells are dead.
func (g Grid) Alive(i, j int) bool {
	if !g.InBounds(i, j) {
		return false
	}
	return g.data[i*g.cols+j] == 1
}

// Toggle returns a copy of g with cell (i, j) flipped.
func (g Grid) Toggle(i, j int) (Grid, error) {
	if !g.InBounds(i, j) {
		return g, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, i, j, g.rows, g.cols)
	}
	next := g.clone()
	next.data[i*g.cols+j] ^= 1
	return next, nil
}

// Population counts the live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Matrix returns a deep copy of the cells as nested rows.
func (g Grid) Matrix() [][]uint8 {
	m := make([][]uint8, g.rows)
	for i := range m {
		row := make([]uint8, g.cols)
		copy(row, g.data[i*g.cols:(i+1)*g.cols])
		m[i] = row
	}
	return m
}

// AppendCells appends the row-major cell values to dst.
func (g Grid) AppendCells(dst []uint8) []uint8 {
	return append(dst, g.data...)
}

func (g Grid) clone() Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return Grid{rows: g.rows, cols: g.cols, data: data}
}

// Builder assembles a new grid cell by cell. It is meant for code that
// produces a whole generation at once; the grid returned by Grid must not be
// written through the builder afterwards.
type Builder struct {
	g Grid
}

// NewBuilder returns a builder for an all-dead grid of the given size.
func NewBuilder(s Size) *Builder {
	return &Builder{g: Grid{rows: s.Rows, cols: s.Cols, data: make([]uint8, s.Rows*s.Cols)}}
}

// Set marks cell (i, j) alive or dead.
func (b *Builder) Set(i, j int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	b.g.data[i*b.g.cols+j] = v
}

// Grid finalizes the builder.
func (b *Builder) Grid() Grid {
	g := b.g
	b.g = Grid{}
	return g
}
