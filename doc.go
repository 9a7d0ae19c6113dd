// Package fractal samples Mandelbrot, Julia and Newton fractals over a
// rectangle of the complex plane.
//
// # Overview
//
// The package produces per-pixel numbers, not images: escape-time iteration
// counts, converged Newton roots, and basin-of-attraction indices. A renderer
// colorizes those buffers; see cmd/fractal for one.
//
// # Quick Start
//
//	vp, _ := fractal.CenteredViewport(-0.5, 3, 3, 800, 800)
//	buf := fractal.NewGrid[int](vp.XRes, vp.YRes)
//	err := fractal.SampleMandelbrot(buf, vp, 500, fractal.WithThreads(8))
//
// Newton fractals need a polynomial, its roots, and three output grids:
//
//	p, _ := fractal.NewPolynomial(-1, 0, 0, 1) // x^3 - 1
//	out := fractal.NewNewtonBuffers(vp.XRes, vp.YRes)
//	err := fractal.SampleNewton(out, p, vp, 50, fractal.WithThreads(8))
//
//	roots, _ := p.Roots()
//	basins := fractal.NewGrid[int](vp.XRes, vp.YRes)
//	err = fractal.AssignRoots(basins, out.Re, out.Im, roots)
//	err = fractal.MaskUnconverged(basins, out.Iterations, out.Limit)
//
// # Buffers
//
// Every output Grid is allocated by the caller and written in place. Row y
// of a grid holds imaginary part StartY + y*dy, so row 0 is the bottom edge of
// the region; Grid.FlipRows gives top-down order for display.
//
// # Concurrency
//
// WithThreads(n) splits the rows into n contiguous bands and samples each band
// on its own goroutine. Bands never overlap, so the output is identical for
// every thread count. The call returns only after every band has finished.
//
// # Failure Sentinels
//
// A Newton start point that hits a zero derivative or exhausts its iteration
// cap records the root (+Inf, +Inf) and the iteration count NotConverged.
// NewtonRoot itself returns a tagged NewtonResult.
package fractal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
