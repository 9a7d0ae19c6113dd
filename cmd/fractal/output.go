package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("fractal: unsupported output format")

// encodeImage writes img to w in the format named by ext (".png", ".bmp",
// ".tif" or ".tiff").
func encodeImage(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// downscale shrinks a supersampled image by factor with Catmull-Rom
// filtering. A factor of 1 or less returns img unchanged.
func downscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// saveImage downscales img by factor and writes it to path, picking the
// format from the extension.
func saveImage(path string, img *image.RGBA, factor int) error {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".bmp", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("fractal: create output: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := encodeImage(f, ext, downscale(img, factor)); err != nil {
		return fmt.Errorf("fractal: encode %s: %w", path, err)
	}
	return f.Close()
}
