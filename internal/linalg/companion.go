package linalg

import "fmt"

// NewCompanion returns a degree×degree matrix that is zero except for ones on
// the first sub-diagonal: entry (i, i-1) is 1 for i in [1, degree).
//
// The last column is left for AssignCompanion to fill.
func NewCompanion(degree int) (*Dense, error) {
	if degree < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}

	m, err := NewDense(degree, degree)
	if err != nil {
		return nil, err
	}
	for i := 1; i < degree; i++ {
		m.Set(i, i-1, 1)
	}
	return m, nil
}

// AssignCompanion writes coeffs[i] into row i of the last column of m.
// Only the last column is modified.
//
// The eigenvalues of the result are the roots of x^n - Σ coeffs[i]·x^i, so a
// monic polynomial a_0 + a_1·x + ... + x^n must be passed as -a_0, ..., -a_{n-1}.
func AssignCompanion(m *Dense, coeffs []float64) error {
	if !m.IsSquare() {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	n := m.rows
	if len(coeffs) < n {
		return fmt.Errorf("%w: need %d coefficients, got %d", ErrDimensionMismatch, n, len(coeffs))
	}

	for i := range n {
		m.Set(i, n-1, coeffs[i])
	}
	return nil
}
