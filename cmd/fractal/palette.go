package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/fractal"
)

// rgb is a color with components in [0, 1].
type rgb struct {
	R, G, B float64
}

// lerp interpolates between c and other. t = 0 gives c, t = 1 gives other.
func (c rgb) lerp(other rgb, t float64) rgb {
	return rgb{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// nrgba converts to an opaque color.NRGBA.
func (c rgb) nrgba() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 255,
	}
}

// hsl creates a color from hue (degrees), saturation and lightness in [0, 1].
func hsl(h, s, l float64) rgb {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return rgb{r + m, g + m, b + m}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// spectral approximates a reversed "Spectral" ramp: blue for quick escapes
// through yellow to red for slow ones.
var spectral = []rgb{
	{0.37, 0.31, 0.64},
	{0.20, 0.53, 0.74},
	{0.40, 0.76, 0.65},
	{0.67, 0.87, 0.64},
	{1.00, 1.00, 0.75},
	{0.99, 0.68, 0.38},
	{0.96, 0.43, 0.26},
	{0.84, 0.24, 0.31},
	{0.62, 0.00, 0.26},
}

// ramp samples stops at t in [0, 1].
func ramp(stops []rgb, t float64) rgb {
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	pos := t * float64(len(stops)-1)
	i := int(pos)
	return stops[i].lerp(stops[i+1], pos-float64(i))
}

// logScale maps an iteration count onto [0, 1] logarithmically relative to
// scale, the largest finite count.
func logScale(n, scale int) float64 {
	if scale <= 0 {
		return 0
	}
	return math.Log1p(float64(n)) / math.Log1p(float64(scale))
}

// colorizeEscape renders escape-time counts. Pixels at limit (inside the set)
// are black; the rest follow the spectral ramp on a log scale. The grid is
// flipped so the top image row is the EndY edge.
func colorizeEscape(iter *fractal.Grid[int], limit int) *image.RGBA {
	g := iter.FlipRows()
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))

	scale := 0
	for _, n := range g.Data() {
		if n != limit && n > scale {
			scale = n
		}
	}

	for y := range g.Height() {
		for x, n := range g.Row(y) {
			if n == limit {
				img.SetRGBA(x, y, color.RGBA{A: 255})
				continue
			}
			c := ramp(spectral, logScale(n, scale)).nrgba()
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// colorizeBasins renders a Newton sample: one hue per root, darker the more
// iterations a pixel took. Unassigned pixels are black.
func colorizeBasins(basins, iter *fractal.Grid[int], roots int) *image.RGBA {
	b := basins.FlipRows()
	it := iter.FlipRows()
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))

	scale := 0
	for _, n := range it.Data() {
		if n != fractal.NotConverged && n > scale {
			scale = n
		}
	}

	for y := range b.Height() {
		itRow := it.Row(y)
		for x, k := range b.Row(y) {
			if k == fractal.Unassigned || roots <= 0 {
				img.SetRGBA(x, y, color.RGBA{A: 255})
				continue
			}
			hue := 360 * float64(k) / float64(roots)
			light := 0.6 - 0.45*logScale(itRow[x], scale)
			c := hsl(hue, 0.75, light).nrgba()
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}
