package core

import (
	"errors"
	"testing"
)

func TestNewDimensions(t *testing.T) {
	for _, rows := range []int{0, 1, 30, 99, 100} {
		for _, cols := range []int{0, 1, 50, 100} {
			g, err := New(rows, cols)
			if err != nil {
				t.Fatalf("New(%d,%d): %v", rows, cols, err)
			}
			if g.Rows() != rows || g.Cols() != cols {
				t.Fatalf("New(%d,%d) produced %dx%d", rows, cols, g.Rows(), g.Cols())
			}
			if g.Population() != 0 {
				t.Fatalf("New(%d,%d) has %d live cells", rows, cols, g.Population())
			}
			if len(g.Matrix()) != rows {
				t.Fatalf("matrix has %d rows, want %d", len(g.Matrix()), rows)
			}
		}
	}
}

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 5}, {5, -1}, {101, 5}, {5, 101}}
	for _, c := range cases {
		if _, err := New(c[0], c[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d,%d) err=%v, want ErrInvalidDimension", c[0], c[1], err)
		}
	}
}

func TestResizeWithoutExisting(t *testing.T) {
	for r := 0; r <= MaxDimension; r += 25 {
		for c := 0; c <= MaxDimension; c += 20 {
			g, err := Resize(r, c, nil)
			if err != nil {
				t.Fatalf("Resize(%d,%d): %v", r, c, err)
			}
			if g.Rows() != r || g.Cols() != c || g.Population() != 0 {
				t.Fatalf("Resize(%d,%d) gave %dx%d pop=%d", r, c, g.Rows(), g.Cols(), g.Population())
			}
		}
	}
}

func TestResizeAdoptsExisting(t *testing.T) {
	saved, _ := New(4, 6)
	saved, _ = saved.Toggle(1, 2)

	g, err := Resize(30, 50, &saved)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(saved) {
		t.Fatalf("expected saved 4x6 grid to be adopted, got %dx%d", g.Rows(), g.Cols())
	}

	empty, _ := New(0, 0)
	g, err = Resize(3, 3, &empty)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("empty existing grid should fall back to requested size, got %dx%d", g.Rows(), g.Cols())
	}
}

func TestToggleIsOwnInverse(t *testing.T) {
	g, _ := New(3, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			once, err := g.Toggle(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if !once.Alive(i, j) {
				t.Fatalf("cell (%d,%d) should be alive after toggle", i, j)
			}
			twice, err := once.Toggle(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if !twice.Equal(g) {
				t.Fatalf("double toggle at (%d,%d) changed the grid", i, j)
			}
		}
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	g, _ := New(2, 2)
	next, _ := g.Toggle(0, 0)
	if g.Alive(0, 0) {
		t.Fatal("toggle mutated its receiver")
	}
	if !next.Alive(0, 0) {
		t.Fatal("toggle result missing the flip")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	g, _ := New(2, 3)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		got, err := g.Toggle(c[0], c[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err=%v", c[0], c[1], err)
		}
		if !got.Equal(g) {
			t.Fatal("out of bounds toggle must not change the grid")
		}
	}
}

func TestFromMatrix(t *testing.T) {
	g, err := FromMatrix([][]uint8{{0, 1, 0}, {1, 1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 2 || g.Cols() != 3 || g.Population() != 3 {
		t.Fatalf("unexpected grid %dx%d pop=%d", g.Rows(), g.Cols(), g.Population())
	}
	back, err := FromMatrix(g.Matrix())
	if err != nil || !back.Equal(g) {
		t.Fatalf("matrix round trip failed: %v", err)
	}

	if _, err := FromMatrix([][]uint8{{0, 1}, {1}}); !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("ragged rows err=%v", err)
	}
	if _, err := FromMatrix([][]uint8{{0, 2}}); !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("non-binary cell err=%v", err)
	}
	if _, err := FromMatrix(make([][]uint8, 101)); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("oversized grid err=%v", err)
	}
}

func TestMatrixIsACopy(t *testing.T) {
	g, _ := New(2, 2)
	m := g.Matrix()
	m[0][0] = 1
	if g.Alive(0, 0) {
		t.Fatal("writing through Matrix changed the grid")
	}
}

func TestParseDimension(t *testing.T) {
	if n, err := ParseDimension(" 42 "); err != nil || n != 42 {
		t.Fatalf("ParseDimension(42) = %d, %v", n, err)
	}
	for _, in := range []string{"", "abc", "4.5", "-1", "101"} {
		if _, err := ParseDimension(in); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("ParseDimension(%q) err=%v", in, err)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, err := Random(Size{Rows: 20, Cols: 30}, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Random(Size{Rows: 20, Cols: 30}, 7)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	if a.Population() == 0 || a.Population() == 600 {
		t.Fatalf("implausible population %d", a.Population())
	}
}
