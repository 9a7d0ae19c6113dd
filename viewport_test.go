package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestNewViewport_Delta(t *testing.T) {
	vp, err := NewViewport(-2, 2, -1, 1, 4, 2)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}
	dx, dy := vp.Delta()
	if dx != 1 || dy != 1 {
		t.Errorf("Delta() = (%v, %v), want (1, 1)", dx, dy)
	}
	if got := vp.Point(0, 0); got != complex(-2, -1) {
		t.Errorf("Point(0, 0) = %v, want (-2-1i)", got)
	}
	if got := vp.Point(3, 1); got != complex(1, 0) {
		t.Errorf("Point(3, 1) = %v, want (1+0i)", got)
	}
	if got := vp.Point(1, 0); got != complex(-1, -1) {
		t.Errorf("Point(1, 0) = %v, want column 1 of row 0 at (-1-1i)", got)
	}
	if vp.Points() != 8 {
		t.Errorf("Points() = %d, want 8", vp.Points())
	}
}

func TestCenteredViewport(t *testing.T) {
	vp, err := CenteredViewport(complex(-0.5, 0.25), 3, 2, 30, 20)
	if err != nil {
		t.Fatalf("CenteredViewport error: %v", err)
	}
	if vp.StartX != -2 || vp.EndX != 1 || vp.StartY != -0.75 || vp.EndY != 1.25 {
		t.Errorf("CenteredViewport bounds = %+v", vp)
	}
}

func TestViewport_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
	}{
		{"zero x resolution", Viewport{StartX: -1, EndX: 1, StartY: -1, EndY: 1, XRes: 0, YRes: 4}},
		{"negative y resolution", Viewport{StartX: -1, EndX: 1, StartY: -1, EndY: 1, XRes: 4, YRes: -1}},
		{"degenerate x", Viewport{StartX: 1, EndX: 1, StartY: -1, EndY: 1, XRes: 4, YRes: 4}},
		{"degenerate y", Viewport{StartX: -1, EndX: 1, StartY: 0, EndY: 0, XRes: 4, YRes: 4}},
		{"infinite bound", Viewport{StartX: math.Inf(-1), EndX: 1, StartY: -1, EndY: 1, XRes: 4, YRes: 4}},
		{"NaN bound", Viewport{StartX: -1, EndX: 1, StartY: math.NaN(), EndY: 1, XRes: 4, YRes: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.vp.Validate(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestViewport_ReversedAxesAllowed(t *testing.T) {
	vp, err := NewViewport(1, -1, 1, -1, 2, 2)
	if err != nil {
		t.Fatalf("reversed viewport should be valid, got %v", err)
	}
	dx, dy := vp.Delta()
	if dx != -1 || dy != -1 {
		t.Errorf("Delta() = (%v, %v), want (-1, -1)", dx, dy)
	}
}
