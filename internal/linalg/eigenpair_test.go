package linalg

import (
	"errors"
	"math/cmplx"
	"testing"
)

func TestEigenpair_BoundsChecked(t *testing.T) {
	p := NewEigenpair(2.5, 3)
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}

	if err := p.Set(1, 4); err != nil {
		t.Fatalf("Set(1) error: %v", err)
	}
	v, err := p.At(1)
	if err != nil || v != 4 {
		t.Errorf("At(1) = %v, %v; want 4, nil", v, err)
	}

	for _, idx := range []int{-1, 3, 10} {
		if _, err := p.At(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if err := p.Set(idx, 1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
}

func TestEigenpair_VectorIsCopy(t *testing.T) {
	p := NewEigenpair(1.0, 2)
	vec := p.Vector()
	vec[0] = 99
	if got, _ := p.At(0); got != 0 {
		t.Errorf("mutating Vector() result changed the pair: At(0) = %v", got)
	}
}

func TestCompanionEigenpairs_LeftEigenvectors(t *testing.T) {
	// x^3 - 6x^2 + 11x - 6
	coeffs := []float64{6, -11, 6}
	m, _ := NewCompanion(3)
	_ = AssignCompanion(m, coeffs)

	pairs := CompanionEigenpairs([]complex128{1, 2, 3})
	for _, p := range pairs {
		vec := p.Vector()
		// v·C must equal λ·v.
		for j := range 3 {
			var sum complex128
			for i := range 3 {
				sum += vec[i] * complex(m.At(i, j), 0)
			}
			if cmplx.Abs(sum-p.Value*vec[j]) > 1e-12 {
				t.Errorf("λ=%v: (v·C)[%d] = %v, want %v", p.Value, j, sum, p.Value*vec[j])
			}
		}
	}
}
