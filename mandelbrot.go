package fractal

import (
	"github.com/gogpu/fractal/internal/parallel"
)

// EscapeRadius is the modulus beyond which an orbit is considered to escape.
const EscapeRadius = 2.0

const escapeRadiusSq = EscapeRadius * EscapeRadius

// Iterate applies z ← z² + c starting from z and returns the number of steps
// taken before |z| exceeds EscapeRadius. Orbits that never escape return
// maxItr, which therefore marks points presumed inside the set.
func Iterate(z, c complex128, maxItr int) int {
	for i := 0; i < maxItr; i++ {
		re, im := real(z), imag(z)
		if re*re+im*im > escapeRadiusSq {
			return i
		}
		z = z*z + c
	}
	return maxItr
}

// SampleMandelbrot fills buf with escape-time counts for the Mandelbrot set
// over vp. Each pixel is the constant c, iterated from z = 0. Pixels that do
// not escape within maxItr steps hold maxItr.
//
// buf must be vp.XRes wide and vp.YRes tall.
func SampleMandelbrot(buf *Grid[int], vp Viewport, maxItr int, opts ...SampleOption) error {
	o, err := validateEscape(buf, vp, maxItr, opts)
	if err != nil {
		return err
	}

	return runBands("mandelbrot", vp, o, func(b parallel.Band, p *progress) {
		computeMandelbrotRange(buf, vp, b, maxItr, p)
	})
}

// SampleJulia fills buf with escape-time counts for the Julia set of c over
// vp. Each pixel is the starting z and c is fixed.
//
// buf must be vp.XRes wide and vp.YRes tall.
func SampleJulia(buf *Grid[int], c complex128, vp Viewport, maxItr int, opts ...SampleOption) error {
	o, err := validateEscape(buf, vp, maxItr, opts)
	if err != nil {
		return err
	}

	return runBands("julia", vp, o, func(b parallel.Band, p *progress) {
		computeJuliaRange(buf, vp, b, c, maxItr, p)
	})
}

func computeMandelbrotRange(buf *Grid[int], vp Viewport, b parallel.Band, maxItr int, p *progress) {
	dx, dy := vp.Delta()
	for row := b.Start; row < b.End; row++ {
		im := vp.StartY + dy*float64(row)
		out := buf.Row(row)
		for col := range out {
			c := complex(vp.StartX+dx*float64(col), im)
			out[col] = Iterate(0, c, maxItr)
		}
		p.row(row)
	}
}

func computeJuliaRange(buf *Grid[int], vp Viewport, b parallel.Band, c complex128, maxItr int, p *progress) {
	dx, dy := vp.Delta()
	for row := b.Start; row < b.End; row++ {
		im := vp.StartY + dy*float64(row)
		out := buf.Row(row)
		for col := range out {
			z := complex(vp.StartX+dx*float64(col), im)
			out[col] = Iterate(z, c, maxItr)
		}
		p.row(row)
	}
}

func validateEscape(buf *Grid[int], vp Viewport, maxItr int, opts []SampleOption) (sampleOptions, error) {
	o, err := buildSampleOptions(opts)
	if err != nil {
		return o, err
	}
	if err := vp.Validate(); err != nil {
		return o, err
	}
	if err := checkMaxIterations(maxItr); err != nil {
		return o, err
	}
	return o, checkBuffer("iteration", buf, vp)
}
