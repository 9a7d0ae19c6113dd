package fractal

import (
	"errors"

	"github.com/gogpu/fractal/internal/linalg"
)

// Errors returned by the fractal package. Most call sites wrap these with
// detail, so compare with errors.Is.
var (
	// ErrInvalidArgument is returned for arguments outside their domain:
	// a polynomial of degree below 2, fewer than one thread, a non-positive
	// resolution or iteration cap, a degenerate viewport, or an empty set of
	// known roots.
	ErrInvalidArgument = errors.New("fractal: invalid argument")

	// ErrOutOfRange is returned by bounds-checked element access, such as
	// Eigenpair.At.
	ErrOutOfRange = linalg.ErrOutOfRange

	// ErrBufferSize is returned when a caller-supplied buffer does not match
	// the dimensions of the viewport being sampled.
	ErrBufferSize = errors.New("fractal: buffer size does not match viewport")

	// ErrNoConvergence is returned when eigenvalue extraction exhausts its
	// iteration cap.
	ErrNoConvergence = errors.New("fractal: root extraction did not converge")
)
