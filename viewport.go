package fractal

import (
	"fmt"
	"math"
)

// Viewport is a rectangle of the complex plane sampled at a fixed pixel
// resolution.
//
// Column col and row row map linearly onto the plane:
//
//	real = StartX + col*(EndX-StartX)/XRes
//	imag = StartY + row*(EndY-StartY)/YRes
//
// so pixel (0, 0) sits at (StartX, StartY) and the End edges are excluded.
type Viewport struct {
	StartX, EndX float64
	StartY, EndY float64
	XRes, YRes   int
}

// NewViewport returns a validated viewport.
func NewViewport(startx, endx, starty, endy float64, xres, yres int) (Viewport, error) {
	vp := Viewport{
		StartX: startx, EndX: endx,
		StartY: starty, EndY: endy,
		XRes: xres, YRes: yres,
	}
	if err := vp.Validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// CenteredViewport returns the viewport spanning xspan×yspan around center,
// with half of each span on either side.
func CenteredViewport(center complex128, xspan, yspan float64, xres, yres int) (Viewport, error) {
	cx, cy := real(center), imag(center)
	return NewViewport(cx-xspan/2, cx+xspan/2, cy-yspan/2, cy+yspan/2, xres, yres)
}

// Validate checks that both resolutions are positive and that both per-pixel
// steps are finite and nonzero. A degenerate viewport (StartX == EndX or
// StartY == EndY) is rejected with ErrInvalidArgument.
func (v Viewport) Validate() error {
	if v.XRes <= 0 || v.YRes <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %dx%d", ErrInvalidArgument, v.XRes, v.YRes)
	}
	dx, dy := v.Delta()
	if !isFiniteNonZero(dx) || !isFiniteNonZero(dy) {
		return fmt.Errorf("%w: degenerate viewport [%g, %g]x[%g, %g]",
			ErrInvalidArgument, v.StartX, v.EndX, v.StartY, v.EndY)
	}
	return nil
}

// Delta returns the per-pixel step along each axis.
func (v Viewport) Delta() (dx, dy float64) {
	return (v.EndX - v.StartX) / float64(v.XRes), (v.EndY - v.StartY) / float64(v.YRes)
}

// Point returns the complex value sampled at column x, row y, matching the
// argument order of Grid.At.
func (v Viewport) Point(x, y int) complex128 {
	dx, dy := v.Delta()
	return complex(v.StartX+dx*float64(x), v.StartY+dy*float64(y))
}

// Points returns the number of pixels in the viewport.
func (v Viewport) Points() int {
	return v.XRes * v.YRes
}

func isFiniteNonZero(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
