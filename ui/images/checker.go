package images

import (
	"image"
	"image/color"
	"image/draw"
)

// Checker square edge in pixels for the transparency backdrop.
const checkerSize = 8

var (
	checkerLight = color.NRGBA{200, 200, 200, 255}
	checkerDark  = color.NRGBA{156, 156, 156, 255}
)

// Checkerboard fills rect of dst with the transparency checker pattern.
func Checkerboard(dst draw.Image, rect image.Rectangle) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/checkerSize)+(y/checkerSize))%2 == 0 {
				dst.Set(x, y, checkerLight)
			} else {
				dst.Set(x, y, checkerDark)
			}
		}
	}
}

// OverCheckerboard composites img over a fresh checkerboard of the same
// size, making transparent corners visible in the preview.
func OverCheckerboard(img image.Image) *image.NRGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	Checkerboard(out, out.Bounds())
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
