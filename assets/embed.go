package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// DropPromptPNG contains the raw PNG bytes of the empty-state placeholder
// shown in the preview area before any image is loaded.
//
//go:embed drop_prompt.png
var DropPromptPNG []byte

// DropPromptImage decodes the embedded placeholder into an image.Image.
func DropPromptImage() (image.Image, error) {
	if len(DropPromptPNG) == 0 {
		return nil, fmt.Errorf("embedded drop_prompt.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(DropPromptPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
