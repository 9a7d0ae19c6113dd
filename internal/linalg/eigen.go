package linalg

import (
	"fmt"
	"math"
)

// Default parameters for Eigenvalues.
const (
	// DefaultTolerance is the relative size below which a sub-diagonal entry
	// is treated as zero during QR iteration.
	DefaultTolerance = 0x1p-52

	// DefaultMaxIterations caps the QR sweeps spent isolating one eigenvalue
	// (or one conjugate pair).
	DefaultMaxIterations = 60
)

// radix is the floating-point base used when balancing. Scaling by powers of
// the radix introduces no rounding error.
const radix = 2.0

// Eigenvalues returns the eigenvalues of the square matrix m.
//
// The matrix is balanced, reduced to upper Hessenberg form by stabilized
// elementary similarity transforms, and then reduced to quasi-triangular form
// with Francis double-shift QR iteration. A sub-diagonal entry is deflated once
// its magnitude is at most tol times the sum of the neighbouring diagonal
// magnitudes. Each eigenvalue (or conjugate pair) may take at most maxIter QR
// sweeps; exceeding that returns ErrNoConvergence. Non-positive tol or maxIter
// select DefaultTolerance and DefaultMaxIterations.
//
// m is not modified. Eigenvalues are returned in the order they deflate.
func Eigenvalues(m *Dense, tol float64, maxIter int) ([]complex128, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	if !m.IsFinite() {
		return nil, ErrNaNInf
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	a := m.Clone()
	Balance(a)
	if !IsUpperHessenberg(a) {
		Hessenberg(a)
	}
	return hqr(a, tol, maxIter)
}

// Balance applies a diagonal similarity transform to m in place so that the
// norms of each row and its matching column are close. Eigenvalues are
// unchanged and the zero pattern of m (in particular Hessenberg form) is
// preserved.
func Balance(m *Dense) {
	n := m.rows
	a := m.rowViews()
	const sqrdx = radix * radix

	for done := false; !done; {
		done = true
		for i := range n {
			var r, c float64
			for j := range n {
				if j != i {
					c += math.Abs(a[j][i])
					r += math.Abs(a[i][j])
				}
			}
			if c == 0 || r == 0 {
				continue
			}

			g := r / radix
			f := 1.0
			s := c + r
			for c < g {
				f *= radix
				c *= sqrdx
			}
			g = r * radix
			for c > g {
				f /= radix
				c /= sqrdx
			}

			if (c+r)/f < 0.95*s {
				done = false
				g = 1 / f
				for j := range n {
					a[i][j] *= g
				}
				for j := range n {
					a[j][i] *= f
				}
			}
		}
	}
}

// IsUpperHessenberg reports whether every entry below the first sub-diagonal
// of m is zero.
func IsUpperHessenberg(m *Dense) bool {
	for i := 2; i < m.rows; i++ {
		for j := 0; j < i-1 && j < m.cols; j++ {
			if m.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// Hessenberg reduces the square matrix m in place to upper Hessenberg form
// using Gaussian elimination with pivoting. Entries below the sub-diagonal are
// set to zero.
func Hessenberg(m *Dense) {
	n := m.rows
	a := m.rowViews()

	for k := 1; k < n-1; k++ {
		x := 0.0
		p := k
		for j := k; j < n; j++ {
			if math.Abs(a[j][k-1]) > math.Abs(x) {
				x = a[j][k-1]
				p = j
			}
		}

		if p != k {
			for j := k - 1; j < n; j++ {
				a[p][j], a[k][j] = a[k][j], a[p][j]
			}
			for j := range n {
				a[j][p], a[j][k] = a[j][k], a[j][p]
			}
		}

		if x == 0 {
			continue
		}
		for i := k + 1; i < n; i++ {
			y := a[i][k-1]
			if y == 0 {
				continue
			}
			y /= x
			a[i][k-1] = y
			for j := k; j < n; j++ {
				a[i][j] -= y * a[k][j]
			}
			for j := range n {
				a[j][k] += y * a[j][i]
			}
		}
	}

	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			a[i][j] = 0
		}
	}
}

// hqr finds all eigenvalues of the upper Hessenberg matrix h, destroying it.
func hqr(h *Dense, tol float64, maxIter int) ([]complex128, error) {
	n := h.rows
	a := h.rowViews()
	wr := make([]float64, n)
	wi := make([]float64, n)

	var anorm float64
	for i := range n {
		for j := max(i-1, 0); j < n; j++ {
			anorm += math.Abs(a[i][j])
		}
	}

	var p, q, r, s, t, w, x, y, z float64
	nn := n - 1
	for nn >= 0 {
		its := 0
		var l int
		for {
			// Look for a single small sub-diagonal element.
			for l = nn; l > 0; l-- {
				s = math.Abs(a[l-1][l-1]) + math.Abs(a[l][l])
				if s == 0 {
					s = anorm
				}
				if math.Abs(a[l][l-1]) <= tol*s {
					a[l][l-1] = 0
					break
				}
			}

			x = a[nn][nn]
			if l == nn {
				// One root found.
				wr[nn] = x + t
				wi[nn] = 0
				nn--
			} else {
				y = a[nn-1][nn-1]
				w = a[nn][nn-1] * a[nn-1][nn]
				if l == nn-1 {
					// Two roots found.
					p = 0.5 * (y - x)
					q = p*p + w
					z = math.Sqrt(math.Abs(q))
					x += t
					if q >= 0 {
						z = p + math.Copysign(z, p)
						wr[nn-1] = x + z
						wr[nn] = x + z
						if z != 0 {
							wr[nn] = x - w/z
						}
						wi[nn-1] = 0
						wi[nn] = 0
					} else {
						wr[nn-1] = x + p
						wr[nn] = x + p
						wi[nn-1] = z
						wi[nn] = -z
					}
					nn -= 2
				} else {
					if its == maxIter {
						return nil, fmt.Errorf("%w: %d sweeps without isolating eigenvalue %d", ErrNoConvergence, its, nn)
					}
					if its > 0 && its%10 == 0 {
						// Exceptional shift.
						t += x
						for i := 0; i <= nn; i++ {
							a[i][i] -= x
						}
						s = math.Abs(a[nn][nn-1]) + math.Abs(a[nn-1][nn-2])
						x = 0.75 * s
						y = x
						w = -0.4375 * s * s
					}
					its++

					// Form shift and look for two consecutive small
					// sub-diagonal elements.
					var mm int
					for mm = nn - 2; mm >= l; mm-- {
						z = a[mm][mm]
						r = x - z
						s = y - z
						p = (r*s-w)/a[mm+1][mm] + a[mm][mm+1]
						q = a[mm+1][mm+1] - z - r - s
						r = a[mm+2][mm+1]
						s = math.Abs(p) + math.Abs(q) + math.Abs(r)
						p /= s
						q /= s
						r /= s
						if mm == l {
							break
						}
						u := math.Abs(a[mm][mm-1]) * (math.Abs(q) + math.Abs(r))
						v := math.Abs(p) * (math.Abs(a[mm-1][mm-1]) + math.Abs(z) + math.Abs(a[mm+1][mm+1]))
						if u <= tol*v {
							break
						}
					}

					for i := mm; i < nn-1; i++ {
						a[i+2][i] = 0
						if i != mm {
							a[i+2][i-1] = 0
						}
					}

					// Double QR step on rows l..nn and columns mm..nn.
					for k := mm; k < nn; k++ {
						if k != mm {
							p = a[k][k-1]
							q = a[k+1][k-1]
							r = 0
							if k+1 != nn {
								r = a[k+2][k-1]
							}
							x = math.Abs(p) + math.Abs(q) + math.Abs(r)
							if x != 0 {
								p /= x
								q /= x
								r /= x
							}
						}

						s = math.Copysign(math.Sqrt(p*p+q*q+r*r), p)
						if s == 0 {
							continue
						}
						if k == mm {
							if l != mm {
								a[k][k-1] = -a[k][k-1]
							}
						} else {
							a[k][k-1] = -s * x
						}
						p += s
						x = p / s
						y = q / s
						z = r / s
						q /= p
						r /= p

						for j := k; j <= nn; j++ {
							p = a[k][j] + q*a[k+1][j]
							if k+1 != nn {
								p += r * a[k+2][j]
								a[k+2][j] -= p * z
							}
							a[k+1][j] -= p * y
							a[k][j] -= p * x
						}

						mmin := min(nn, k+3)
						for i := l; i <= mmin; i++ {
							p = x*a[i][k] + y*a[i][k+1]
							if k+1 != nn {
								p += z * a[i][k+2]
								a[i][k+2] -= p * r
							}
							a[i][k+1] -= p * q
							a[i][k] -= p
						}
					}
				}
			}

			if l+1 >= nn {
				break
			}
		}
	}

	out := make([]complex128, n)
	for i := range n {
		out[i] = complex(wr[i], wi[i])
	}
	return out, nil
}

// rowViews returns mutable slices over each row of m.
func (m *Dense) rowViews() [][]float64 {
	a := make([][]float64, m.rows)
	for i := range a {
		a[i] = m.data[i*m.cols : (i+1)*m.cols]
	}
	return a
}
