package linalg

import (
	"errors"
	"testing"
)

func TestNewCompanion_Shape(t *testing.T) {
	m, err := NewCompanion(3)
	if err != nil {
		t.Fatalf("NewCompanion(3) error: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 3 {
		t.Fatalf("NewCompanion(3) is %dx%d, want 3x3", m.Rows(), m.Cols())
	}

	ones := 0
	for i := range 3 {
		for j := range 3 {
			v := m.At(i, j)
			switch {
			case j == i-1:
				if v != 1 {
					t.Errorf("At(%d, %d) = %v, want 1", i, j, v)
				}
				ones++
			case v != 0:
				t.Errorf("At(%d, %d) = %v, want 0", i, j, v)
			}
		}
	}
	if ones != 2 {
		t.Errorf("found %d sub-diagonal ones, want 2", ones)
	}
}

func TestNewCompanion_InvalidDegree(t *testing.T) {
	for _, d := range []int{-1, 0, 1} {
		if _, err := NewCompanion(d); !errors.Is(err, ErrInvalidDegree) {
			t.Errorf("NewCompanion(%d) error = %v, want ErrInvalidDegree", d, err)
		}
	}
}

func TestAssignCompanion_OnlyLastColumn(t *testing.T) {
	m, err := NewCompanion(3)
	if err != nil {
		t.Fatal(err)
	}
	before := m.Clone()

	coeffs := []float64{7, 8, 9}
	if err := AssignCompanion(m, coeffs); err != nil {
		t.Fatalf("AssignCompanion error: %v", err)
	}

	for i := range 3 {
		for j := range 2 {
			if m.At(i, j) != before.At(i, j) {
				t.Errorf("At(%d, %d) changed from %v to %v", i, j, before.At(i, j), m.At(i, j))
			}
		}
		if m.At(i, 2) != coeffs[i] {
			t.Errorf("At(%d, 2) = %v, want %v", i, m.At(i, 2), coeffs[i])
		}
	}
}

func TestAssignCompanion_Errors(t *testing.T) {
	m, _ := NewCompanion(3)
	if err := AssignCompanion(m, []float64{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short coeffs: error = %v, want ErrDimensionMismatch", err)
	}

	rect, _ := NewDense(2, 3)
	if err := AssignCompanion(rect, []float64{1, 2, 3}); !errors.Is(err, ErrNonSquare) {
		t.Errorf("non-square: error = %v, want ErrNonSquare", err)
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	if _, err := NewDense(0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewDense(0, 2) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestDense_AtPanicsOutOfRange(t *testing.T) {
	m, _ := NewDense(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("At(2, 0) should panic")
		}
	}()
	_ = m.At(2, 0)
}
