package main

import (
	"image/color"
	"testing"

	"github.com/gogpu/fractal"
)

func TestRamp_Endpoints(t *testing.T) {
	if got := ramp(spectral, -1); got != spectral[0] {
		t.Errorf("ramp(-1) = %v, want first stop", got)
	}
	if got := ramp(spectral, 2); got != spectral[len(spectral)-1] {
		t.Errorf("ramp(2) = %v, want last stop", got)
	}
	mid := ramp([]rgb{{0, 0, 0}, {1, 1, 1}}, 0.5)
	if mid != (rgb{0.5, 0.5, 0.5}) {
		t.Errorf("ramp midpoint = %v, want grey", mid)
	}
}

func TestHSL_Primaries(t *testing.T) {
	tests := []struct {
		h    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 0, 0, 255}},
		{120, color.NRGBA{0, 255, 0, 255}},
		{240, color.NRGBA{0, 0, 255, 255}},
		{-120, color.NRGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := hsl(tt.h, 1, 0.5).nrgba(); got != tt.want {
			t.Errorf("hsl(%v, 1, 0.5) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestColorizeEscape_LimitIsBlackAndFlipped(t *testing.T) {
	g := fractal.NewGrid[int](2, 2)
	// Row 0 is the bottom of the region.
	g.Set(0, 0, 10)
	g.Set(1, 0, 3)
	g.Set(0, 1, 1)
	g.Set(1, 1, 10)

	img := colorizeEscape(g, 10)

	black := color.RGBA{A: 255}
	if img.RGBAAt(0, 1) != black {
		t.Errorf("limit pixel at bottom-left = %v, want black", img.RGBAAt(0, 1))
	}
	if img.RGBAAt(1, 0) != black {
		t.Errorf("limit pixel at top-right = %v, want black", img.RGBAAt(1, 0))
	}
	if img.RGBAAt(0, 0) == black || img.RGBAAt(1, 1) == black {
		t.Error("escaped pixels should not be black")
	}
}

func TestColorizeBasins(t *testing.T) {
	basins := fractal.NewGrid[int](3, 1)
	iters := fractal.NewGrid[int](3, 1)
	copy(basins.Row(0), []int{0, 1, fractal.Unassigned})
	copy(iters.Row(0), []int{2, 5, fractal.NotConverged})

	img := colorizeBasins(basins, iters, 2)

	if img.RGBAAt(2, 0) != (color.RGBA{A: 255}) {
		t.Errorf("unassigned pixel = %v, want black", img.RGBAAt(2, 0))
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(1, 0) {
		t.Error("different basins should get different colors")
	}
}
