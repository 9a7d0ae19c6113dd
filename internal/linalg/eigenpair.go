package linalg

import "fmt"

// Eigenpair is an eigenvalue together with an eigenvector of fixed length.
// The vector is owned by the pair; element access is bounds-checked.
type Eigenpair[T any] struct {
	Value  T
	vector []T
}

// NewEigenpair returns a pair with the given value and a zeroed vector of
// length size.
func NewEigenpair[T any](value T, size int) Eigenpair[T] {
	if size < 0 {
		size = 0
	}
	return Eigenpair[T]{Value: value, vector: make([]T, size)}
}

// Len returns the length of the eigenvector.
func (e *Eigenpair[T]) Len() int { return len(e.vector) }

// At returns element idx of the eigenvector.
func (e *Eigenpair[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= len(e.vector) {
		var zero T
		return zero, fmt.Errorf("%w: %d is not in range for an eigenvector of size %d", ErrOutOfRange, idx, len(e.vector))
	}
	return e.vector[idx], nil
}

// Set stores v at element idx of the eigenvector.
func (e *Eigenpair[T]) Set(idx int, v T) error {
	if idx < 0 || idx >= len(e.vector) {
		return fmt.Errorf("%w: %d is not in range for an eigenvector of size %d", ErrOutOfRange, idx, len(e.vector))
	}
	e.vector[idx] = v
	return nil
}

// Vector returns a copy of the eigenvector.
func (e *Eigenpair[T]) Vector() []T {
	out := make([]T, len(e.vector))
	copy(out, e.vector)
	return out
}

// CompanionEigenpairs pairs every eigenvalue λ of a companion matrix built by
// NewCompanion/AssignCompanion with its left eigenvector (1, λ, λ², ..., λ^(n-1)),
// where n = len(values).
func CompanionEigenpairs(values []complex128) []Eigenpair[complex128] {
	n := len(values)
	pairs := make([]Eigenpair[complex128], n)
	for i, lambda := range values {
		p := NewEigenpair(lambda, n)
		pow := complex(1, 0)
		for j := range n {
			p.vector[j] = pow
			pow *= lambda
		}
		pairs[i] = p
	}
	return pairs
}
