package fractal

import "fmt"

// Unassigned is the basin index MaskUnconverged writes for pixels whose
// Newton iteration did not converge.
const Unassigned = -1

// Pair holds one element from each of two zipped sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs a[i] with b[i]. The result has the length of the shorter input;
// surplus elements of the longer one are dropped.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Argmin returns the index of the first element of s for which no other
// element is less. It returns -1 for an empty slice.
func Argmin[T any](s []T, less func(a, b T) bool) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[best]) {
			best = i
		}
	}
	return best
}

// KnownRoots zips separate real and imaginary parts into complex roots.
func KnownRoots(re, im []float64) []complex128 {
	pairs := Zip(re, im)
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		out[i] = complex(p.First, p.Second)
	}
	return out
}

// AssignRoots classifies every pixel of a Newton sample by its basin of
// attraction: out(x, y) is the index of the known root nearest (in squared
// distance) to the converged value (re(x, y), im(x, y)). Ties go to the lowest
// index. out, re and im must share one shape.
//
// Pixels holding the (+Inf, +Inf) failure sentinel are equidistant from every
// root and land in basin 0; use MaskUnconverged to mark them instead.
func AssignRoots(out *Grid[int], re, im *Grid[float64], known []complex128) error {
	if len(known) == 0 {
		return fmt.Errorf("%w: no known roots to classify against", ErrInvalidArgument)
	}
	if err := sameShape(out, re, im); err != nil {
		return err
	}

	less := func(a, b float64) bool { return a < b }
	dist := make([]float64, len(known))
	for y := range out.height {
		outRow, reRow, imRow := out.Row(y), re.Row(y), im.Row(y)
		for x := range outRow {
			for k, r := range known {
				dx := reRow[x] - real(r)
				dy := imRow[x] - imag(r)
				dist[k] = dx*dx + dy*dy
			}
			outRow[x] = Argmin(dist, less)
		}
	}
	return nil
}

// MaskUnconverged sets assign(x, y) to Unassigned wherever iterations(x, y)
// equals limit, the sentinel reported by SampleNewton.
func MaskUnconverged(assign, iterations *Grid[int], limit int) error {
	if assign == nil || iterations == nil || assign.width != iterations.width || assign.height != iterations.height {
		return fmt.Errorf("%w: assignment and iteration grids differ in shape", ErrBufferSize)
	}
	for i, n := range iterations.data {
		if n == limit {
			assign.data[i] = Unassigned
		}
	}
	return nil
}

func sameShape(out *Grid[int], re, im *Grid[float64]) error {
	if out == nil || re == nil || im == nil {
		return fmt.Errorf("%w: nil grid", ErrBufferSize)
	}
	if re.width != out.width || im.width != out.width || re.height != out.height || im.height != out.height {
		return fmt.Errorf("%w: assignment %dx%d, real %dx%d, imaginary %dx%d", ErrBufferSize,
			out.width, out.height, re.width, re.height, im.width, im.height)
	}
	return nil
}
