package fractal

import "fmt"

// Cell is the element type of a Grid.
type Cell interface {
	~int | ~float64
}

// Grid is a caller-owned two-dimensional buffer stored in row-major order.
//
// Samplers write into a Grid in place and never retain it past the call.
// Row y of the grid corresponds to pixel row y of the viewport, so row 0 holds
// the starty edge of the sampled region.
type Grid[T Cell] struct {
	width  int
	height int
	data   []T
}

// NewGrid allocates a zero-filled width×height grid.
// Non-positive dimensions produce an empty grid.
func NewGrid[T Cell](width, height int) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

// GridFrom wraps existing row-major storage without copying it.
// len(data) must equal width*height.
func GridFrom[T Cell](width, height int, data []T) (*Grid[T], error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrBufferSize, len(data), width, height)
	}
	return &Grid[T]{width: width, height: height, data: data}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Data returns the backing storage in row-major order.
func (g *Grid[T]) Data() []T {
	return g.data
}

// At returns the value at column x, row y. It panics if the cell is outside
// the grid.
func (g *Grid[T]) At(x, y int) T {
	g.checkIndex(x, y)
	return g.data[y*g.width+x]
}

// Set stores v at column x, row y. It panics if the cell is outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.checkIndex(x, y)
	g.data[y*g.width+x] = v
}

// Row returns a mutable view of row y.
func (g *Grid[T]) Row(y int) []T {
	return g.data[y*g.width : (y+1)*g.width]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Equal reports whether g and other have the same shape and contents.
// NaN cells never compare equal.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// FlipRows returns a copy of g with the row order reversed, so that row 0
// holds the endy edge. Renderers with a top-left origin want this orientation.
func (g *Grid[T]) FlipRows() *Grid[T] {
	out := NewGrid[T](g.width, g.height)
	for y := range g.height {
		copy(out.Row(g.height-1-y), g.Row(y))
	}
	return out
}

func (g *Grid[T]) checkIndex(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("fractal: cell (%d, %d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
}

// matches reports whether g has the pixel dimensions of vp.
func (g *Grid[T]) matches(vp Viewport) bool {
	return g != nil && g.width == vp.XRes && g.height == vp.YRes && len(g.data) == vp.XRes*vp.YRes
}

func checkBuffer[T Cell](name string, g *Grid[T], vp Viewport) error {
	if g.matches(vp) {
		return nil
	}
	if g == nil {
		return fmt.Errorf("%w: %s buffer is nil", ErrBufferSize, name)
	}
	return fmt.Errorf("%w: %s buffer is %dx%d, viewport is %dx%d",
		ErrBufferSize, name, g.width, g.height, vp.XRes, vp.YRes)
}
