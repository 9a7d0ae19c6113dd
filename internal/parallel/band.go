// Package parallel provides row-band fork-join infrastructure for the fractal
// samplers.
//
// A sampled region is split into contiguous horizontal bands, one per worker.
// Every band is written by exactly one worker, so output buffers can be shared
// without locks as long as each worker only touches its own rows.
package parallel

import (
	"errors"
	"fmt"
)

// ErrInvalidThreads is returned when a partition is requested for fewer than
// one worker.
var ErrInvalidThreads = errors.New("parallel: number of threads must be at least 1")

// Band is a half-open row interval [Start, End).
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows covered by the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// Empty reports whether the band covers no rows.
func (b Band) Empty() bool {
	return b.End <= b.Start
}

// Partition returns numThreads+1 row boundaries splitting [0, rows) into
// numThreads contiguous bands.
//
// boundaries[i] = (rows/numThreads)*i for i < numThreads and the final
// boundary is always rows, so the last band absorbs the remainder of the
// integer division and may be larger than the others.
func Partition(numThreads, rows int) ([]int, error) {
	if numThreads < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreads, numThreads)
	}

	span := rows / numThreads
	boundaries := make([]int, 0, numThreads+1)
	for i := range numThreads {
		boundaries = append(boundaries, span*i)
	}
	boundaries = append(boundaries, rows)

	return boundaries, nil
}

// Bands converts the boundaries from Partition into one Band per worker.
func Bands(numThreads, rows int) ([]Band, error) {
	boundaries, err := Partition(numThreads, rows)
	if err != nil {
		return nil, err
	}

	bands := make([]Band, numThreads)
	for i := range bands {
		bands[i] = Band{Start: boundaries[i], End: boundaries[i+1]}
	}
	return bands, nil
}
