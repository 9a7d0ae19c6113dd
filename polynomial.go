package fractal

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/fractal/internal/linalg"
)

// Polynomial holds real coefficients in ascending order of power:
// p[k] multiplies x^k, so the degree is len(p)-1.
type Polynomial []float64

// Eigenpair is a polynomial root paired with the matching left eigenvector of
// the polynomial's companion matrix. Element access is bounds-checked and
// fails with ErrOutOfRange.
type Eigenpair = linalg.Eigenpair[complex128]

// NewPolynomial returns a copy of coeffs as a Polynomial.
// It fails with ErrInvalidArgument if the degree is below 2 or a coefficient
// is not finite.
func NewPolynomial(coeffs ...float64) (Polynomial, error) {
	p := Polynomial(slices.Clone(coeffs))
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Degree returns len(p)-1.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// EvalDeriv evaluates p and its derivative at x in a single Horner pass,
// starting from the leading coefficient. p must be non-empty.
func (p Polynomial) EvalDeriv(x complex128) (value, deriv complex128) {
	n := p.Degree()
	value = complex(p[n], 0)
	for k := n - 1; k >= 0; k-- {
		deriv = x*deriv + value
		value = x*value + complex(p[k], 0)
	}
	return value, deriv
}

// Monic returns p divided by its leading coefficient.
func (p Polynomial) Monic() (Polynomial, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty polynomial", ErrInvalidArgument)
	}
	lead := p[p.Degree()]
	if lead == 0 {
		return nil, fmt.Errorf("%w: leading coefficient is zero", ErrInvalidArgument)
	}
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c / lead
	}
	out[p.Degree()] = 1
	return out, nil
}

// Companion returns the companion matrix of the monic form of p: ones on the
// first sub-diagonal and -a_i/a_n in row i of the last column. Its
// eigenvalues are the roots of p.
func (p Polynomial) Companion() (*linalg.Dense, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	monic, err := p.Monic()
	if err != nil {
		return nil, err
	}

	n := p.Degree()
	m, err := linalg.NewCompanion(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	neg := make([]float64, n)
	for i := range neg {
		neg[i] = -monic[i]
	}
	if err := linalg.AssignCompanion(m, neg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return m, nil
}

// Roots returns the Degree() complex roots of p, computed as the eigenvalues of
// its companion matrix with balanced Francis double-shift QR iteration.
// Roots are sorted by real part, then imaginary part.
//
// Roots fails with ErrInvalidArgument for an invalid polynomial or a zero
// leading coefficient, and with ErrNoConvergence if QR iteration exhausts its
// cap.
func (p Polynomial) Roots() ([]complex128, error) {
	m, err := p.Companion()
	if err != nil {
		return nil, err
	}

	roots, err := linalg.Eigenvalues(m, linalg.DefaultTolerance, linalg.DefaultMaxIterations)
	if err != nil {
		if errors.Is(err, linalg.ErrNoConvergence) {
			return nil, fmt.Errorf("%w: %w", ErrNoConvergence, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	slices.SortFunc(roots, func(a, b complex128) int {
		if c := cmp.Compare(real(a), real(b)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a), imag(b))
	})
	return roots, nil
}

// RootsInto writes the real and imaginary parts of p's roots into the
// caller-owned slices, which must each hold at least Degree() values.
func (p Polynomial) RootsInto(re, im []float64) error {
	n := p.Degree()
	if len(re) < n || len(im) < n {
		return fmt.Errorf("%w: need %d root slots, got %d and %d", ErrBufferSize, n, len(re), len(im))
	}
	roots, err := p.Roots()
	if err != nil {
		return err
	}
	for i, r := range roots {
		re[i], im[i] = real(r), imag(r)
	}
	return nil
}

// Eigenpairs returns each root of p paired with its companion left
// eigenvector (1, λ, λ², ..., λ^(n-1)).
func (p Polynomial) Eigenpairs() ([]Eigenpair, error) {
	roots, err := p.Roots()
	if err != nil {
		return nil, err
	}
	return linalg.CompanionEigenpairs(roots), nil
}

func (p Polynomial) validate() error {
	if p.Degree() < 2 {
		return fmt.Errorf("%w: degree must be at least 2, got %d", ErrInvalidArgument, p.Degree())
	}
	for k, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: coefficient %d is %g", ErrInvalidArgument, k, c)
		}
	}
	return nil
}
