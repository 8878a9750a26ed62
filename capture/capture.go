package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// Screen grabs pixels from the live display. The zero value is ready to use.
type Screen struct{}

// Grab returns a capture of the whole active monitor.
func (Screen) Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// GrabRegion captures the given area of the screen in global coordinates.
func (Screen) GrabRegion(area image.Rectangle) (*image.RGBA, error) {
	if area.Empty() {
		return nil, fmt.Errorf("capture region: empty rectangle %v", area)
	}
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, fmt.Errorf("capture region %v: %w", area, err)
	}
	return img, nil
}

// ScreenBounds reports the full bounds of the active screen.
func ScreenBounds() (image.Rectangle, error) {
	return screenshot.ScreenRect()
}
