package images

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG flattens img into the PNG bytes Tk photos are fed with. A nil
// image or a failed encode comes back as an empty slice, which the preview
// pipeline treats as nothing to show.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
