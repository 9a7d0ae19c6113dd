package fractal

import (
	"math"
	"math/cmplx"

	"github.com/gogpu/fractal/internal/parallel"
)

// NotConverged is the iteration count recorded for a Newton start point that
// failed to converge. SampleNewton also reports it as NewtonBuffers.Limit.
const NotConverged = math.MaxInt

// NewtonStatus classifies how a Newton iteration ended.
type NewtonStatus uint8

const (
	// Converged means |p(x)| fell below the tolerance.
	Converged NewtonStatus = iota
	// SingularDerivative means p'(x) was exactly zero at some iterate.
	SingularDerivative
	// IterationLimit means the iteration cap was reached first.
	IterationLimit
)

// String returns a human-readable status name.
func (s NewtonStatus) String() string {
	switch s {
	case Converged:
		return "Converged"
	case SingularDerivative:
		return "SingularDerivative"
	case IterationLimit:
		return "IterationLimit"
	default:
		return "Unknown"
	}
}

// NewtonResult is the outcome of one Newton–Raphson run.
//
// On failure the last approximation is discarded: Root is (+Inf, +Inf)
// whatever the status.
type NewtonResult struct {
	Root       complex128
	Iterations int
	Status     NewtonStatus
}

// Encode returns the values written to the root and iteration buffers:
// the root and iteration index on convergence, otherwise the (+Inf, +Inf)
// root and NotConverged.
func (r NewtonResult) Encode() (complex128, int) {
	if r.Status != Converged {
		return cmplx.Inf(), NotConverged
	}
	return r.Root, r.Iterations
}

// NewtonRoot iterates x ← x − p(x)/p'(x) from x0.
//
// It returns Converged with the iterate and its index at the first iteration
// where |p(x)| < tol. If p'(x) is exactly zero it stops with
// SingularDerivative and logs a warning naming x0. If maxItr iterations pass
// without meeting the tolerance it returns IterationLimit.
func NewtonRoot(p Polynomial, x0 complex128, maxItr int, tol float64) NewtonResult {
	x := x0
	for itr := 0; itr < maxItr; itr++ {
		f, g := p.EvalDeriv(x)
		if cmplx.Abs(f) < tol {
			return NewtonResult{Root: x, Iterations: itr, Status: Converged}
		}
		if g == 0 {
			Logger().Warn("zero derivative encountered", "start", x0)
			return NewtonResult{Root: cmplx.Inf(), Iterations: itr, Status: SingularDerivative}
		}
		x -= f / g
	}
	return NewtonResult{Root: cmplx.Inf(), Iterations: maxItr, Status: IterationLimit}
}

// NewtonBuffers bundles the caller-owned outputs of SampleNewton.
type NewtonBuffers struct {
	// Re and Im hold the converged root per pixel, or +Inf on failure.
	Re, Im *Grid[float64]
	// Iterations holds the iteration count per pixel, or NotConverged.
	Iterations *Grid[int]
	// Limit is set to NotConverged once sampling completes so callers can
	// recognise failed pixels.
	Limit int
}

// NewNewtonBuffers allocates buffers for an xres×yres sample.
func NewNewtonBuffers(xres, yres int) *NewtonBuffers {
	return &NewtonBuffers{
		Re:         NewGrid[float64](xres, yres),
		Im:         NewGrid[float64](xres, yres),
		Iterations: NewGrid[int](xres, yres),
	}
}

// Root returns the sampled root at column x, row y.
func (b *NewtonBuffers) Root(x, y int) complex128 {
	return complex(b.Re.At(x, y), b.Im.At(x, y))
}

// SampleNewton runs Newton's method from every pixel of vp for the polynomial p
// and writes converged roots and iteration counts into out.
//
// All three buffers in out must be vp.XRes wide and vp.YRes tall.
// After every band has finished, out.Limit is set to NotConverged.
func SampleNewton(out *NewtonBuffers, p Polynomial, vp Viewport, maxItr int, opts ...SampleOption) error {
	o, err := buildSampleOptions(opts)
	if err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	if err := vp.Validate(); err != nil {
		return err
	}
	if err := checkMaxIterations(maxItr); err != nil {
		return err
	}
	if out == nil {
		return checkBuffer[int]("iteration", nil, vp)
	}
	if err := checkBuffer("real", out.Re, vp); err != nil {
		return err
	}
	if err := checkBuffer("imaginary", out.Im, vp); err != nil {
		return err
	}
	if err := checkBuffer("iteration", out.Iterations, vp); err != nil {
		return err
	}

	err = runBands("newton", vp, o, func(b parallel.Band, pr *progress) {
		computeNewtonRange(out, p, vp, b, maxItr, o.tolerance, pr)
	})
	if err != nil {
		return err
	}

	out.Limit = NotConverged
	return nil
}

func computeNewtonRange(out *NewtonBuffers, p Polynomial, vp Viewport, b parallel.Band, maxItr int, tol float64, pr *progress) {
	dx, dy := vp.Delta()
	for row := b.Start; row < b.End; row++ {
		im := vp.StartY + dy*float64(row)
		reRow, imRow, itRow := out.Re.Row(row), out.Im.Row(row), out.Iterations.Row(row)
		for col := range itRow {
			x0 := complex(vp.StartX+dx*float64(col), im)
			root, itr := NewtonRoot(p, x0, maxItr, tol).Encode()
			reRow[col] = real(root)
			imRow[col] = imag(root)
			itRow[col] = itr
		}
		pr.row(row)
	}
}
