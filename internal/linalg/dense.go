// Package linalg provides the small dense linear algebra kernel behind
// polynomial root extraction: companion matrices and a real nonsymmetric
// eigenvalue solver.
package linalg

import (
	"fmt"
	"math"
)

// Dense is a real matrix stored in row-major order.
type Dense struct {
	rows int
	cols int
	data []float64
}

// NewDense returns a zero-filled rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at row i, column j. It panics if the index is out
// of range, like a slice access.
func (m *Dense) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j. It panics if the index is out of range.
func (m *Dense) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

// Row returns a mutable view of row i.
func (m *Dense) Row(i int) []float64 {
	m.checkIndex(i, 0)
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	c := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// IsSquare reports whether m has as many rows as columns.
func (m *Dense) IsSquare() bool { return m.rows == m.cols }

// IsFinite reports whether every entry of m is finite.
func (m *Dense) IsFinite() bool {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (m *Dense) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("linalg: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}
