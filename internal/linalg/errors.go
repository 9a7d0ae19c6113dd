package linalg

import "errors"

// Sentinel errors returned by linalg routines. Callers should compare with
// errors.Is, since most call sites wrap them with additional detail.
var (
	// ErrInvalidDegree is returned when a companion matrix is requested for a
	// polynomial of degree below 2.
	ErrInvalidDegree = errors.New("linalg: degree must be greater than or equal to 2")

	// ErrInvalidDimensions is returned when a matrix is created with a
	// non-positive dimension.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrNonSquare is returned by routines that require a square matrix.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrDimensionMismatch is returned when operand sizes disagree.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOutOfRange is returned on out-of-bounds element access.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNaNInf is returned when a matrix holds a NaN or infinite entry.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrNoConvergence is returned when QR iteration exhausts its iteration
	// cap before an eigenvalue has been isolated.
	ErrNoConvergence = errors.New("linalg: eigenvalue iteration did not converge")
)
