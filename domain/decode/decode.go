// Package decode turns encoded image files into in-memory bitmaps. All
// format registration for the application lives here: the stdlib decoders
// plus the golang.org/x/image ones, covering the envelope a typical desktop
// image picker is expected to open.
package decode

import (
	"bytes"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoded bundles a decoded bitmap with the encoded bytes it came from. The
// original bytes are kept so a later full-resolution export re-reads the
// exact source, never a preview downscale.
type Decoded struct {
	Img    image.Image
	Format string // registered format name: png, jpeg, gif, bmp, tiff, webp
	Data   []byte
}

// Bytes decodes an encoded image held in memory.
func Bytes(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode: empty input")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &Decoded{Img: img, Format: format, Data: data}, nil
}

// File reads and decodes an image file from disk.
func File(path string) (*Decoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode: read %s: %w", path, err)
	}
	return Bytes(data)
}
