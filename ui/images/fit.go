package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// PreviewScale returns the downscale factor applied when a w×h image is
// shown inside a maxW×maxH preview box: min(1, maxW/w, maxH/h). The preview
// corner radius is multiplied by the same factor so the rounding on screen
// stays proportional to the rounding in the exported file.
func PreviewScale(w, h, maxW, maxH int) float64 {
	if w < 1 || h < 1 || maxW < 1 || maxH < 1 {
		return 1
	}
	s := 1.0
	if sw := float64(maxW) / float64(w); sw < s {
		s = sw
	}
	if sh := float64(maxH) / float64(h); sh < s {
		s = sh
	}
	return s
}

// FitPreview scales src down to fit within maxW×maxH preserving aspect
// ratio. Images already inside the box are returned at natural size.
func FitPreview(src image.Image, maxW, maxH int) *image.NRGBA {
	if src == nil {
		return nil
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}
