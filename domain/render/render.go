// Package render produces rounded-corner clipped images. It is pure image
// math: no UI types, no file system, no toolkit handles. The same inputs
// always produce the same output bytes, which keeps the export path
// deterministic and testable headless.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/vector"
)

// EffectiveRadius bounds a requested corner radius for a w×h image. The
// result never exceeds half of either dimension, so the rounded-rectangle
// path cannot self-intersect. Negative requests collapse to 0. Odd
// dimensions clamp to a fractional half (e.g. 101 wide clamps at 50.5).
func EffectiveRadius(radius float64, w, h int) float64 {
	r := radius
	if r < 0 {
		r = 0
	}
	if half := float64(w) / 2; r > half {
		r = half
	}
	if half := float64(h) / 2; r > half {
		r = half
	}
	return r
}

// Mask rasterizes a w×h coverage mask for a rounded rectangle with corner
// radius r. The path is traced clockwise starting on the top edge, each
// corner replaced by a quadratic Bézier of control length r. The caller is
// expected to have clamped r via EffectiveRadius; r=0 yields a fully opaque
// mask.
func Mask(w, h int, r float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w < 1 || h < 1 {
		return mask
	}
	fw, fh := float32(w), float32(h)
	fr := float32(r)

	var ras vector.Rasterizer
	ras.Reset(w, h)
	ras.MoveTo(fr, 0)
	ras.LineTo(fw-fr, 0)
	ras.QuadTo(fw, 0, fw, fr)
	ras.LineTo(fw, fh-fr)
	ras.QuadTo(fw, fh, fw-fr, fh)
	ras.LineTo(fr, fh)
	ras.QuadTo(0, fh, 0, fh-fr)
	ras.LineTo(0, fr)
	ras.QuadTo(0, 0, fr, 0)
	ras.ClosePath()
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Clip draws src through a rounded-rectangle mask into a fresh transparent
// NRGBA of the same dimensions. Pixels outside the rounded rectangle remain
// fully transparent; the radius is clamped internally.
func Clip(src image.Image, radius float64) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	mask := Mask(w, h, EffectiveRadius(radius, w, h))
	draw.DrawMask(dst, dst.Bounds(), src, b.Min, mask, image.Point{}, draw.Over)
	return dst
}

// Render clips src to rounded corners at the given radius and encodes the
// result as PNG. Output dimensions always equal the source dimensions.
func Render(src image.Image, radius float64) ([]byte, error) {
	if src == nil {
		return nil, errors.New("render: nil source image")
	}
	b := src.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("render: empty source %dx%d", b.Dx(), b.Dy())
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, Clip(src, radius)); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
