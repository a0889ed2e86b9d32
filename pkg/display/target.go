package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Target adapts any drivers.Displayer into a render surface and presenter,
// so a frame can be written straight into a panel's buffer
type Target struct {
	dev drivers.Displayer
}

// NewTarget wraps dev
func NewTarget(dev drivers.Displayer) *Target {
	return &Target{dev: dev}
}

// Device returns the wrapped display
func (t *Target) Device() drivers.Displayer {
	return t.dev
}

// Bounds returns the device area as an image rectangle
func (t *Target) Bounds() image.Rectangle {
	w, h := t.dev.Size()
	return image.Rect(0, 0, int(w), int(h))
}

// SetRGBA forwards one pixel to the device
func (t *Target) SetRGBA(x, y int, c color.RGBA) {
	t.dev.SetPixel(int16(x), int16(y), c)
}

// Display presents the device's buffer
func (t *Target) Display() error {
	return t.dev.Display()
}
