package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"tinygo.org/x/drivers"
)

// MaxSize is the largest width or height addressable through the int16
// coordinates of drivers.Displayer
const MaxSize = math.MaxInt16

// CheckSize rejects frames too large for drivers.Displayer coordinates
func CheckSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxSize || height > MaxSize {
		return fmt.Errorf("frame size %dx%d outside 1..%d", width, height, MaxSize)
	}
	return nil
}

// Framebuffer is an in-memory drivers.Displayer backed by an *image.RGBA.
// Display counts presented frames and calls the optional present hook.
type Framebuffer struct {
	img       *image.RGBA
	frames    int
	onPresent func(*image.RGBA) error
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// NewFramebuffer creates a black width x height framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	fb.Clear(color.RGBA{A: 0xff})
	return fb
}

// OnPresent sets a hook called with the pixels on every Display
func (f *Framebuffer) OnPresent(fn func(*image.RGBA) error) {
	f.onPresent = fn
}

// Size returns the framebuffer dimensions. Frames wider or taller than
// MaxSize do not fit; see CheckSize.
func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel writes one pixel, ignoring coordinates outside the framebuffer
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if !(image.Point{X: ix, Y: iy}).In(f.img.Bounds()) {
		return
	}
	f.img.SetRGBA(ix, iy, c)
}

// Display counts the frame and runs the present hook, if any
func (f *Framebuffer) Display() error {
	f.frames++
	if f.onPresent != nil {
		return f.onPresent(f.img)
	}
	return nil
}

// FillRectangle fills a rectangle clipped to the framebuffer
func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(f.img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(f.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// Clear fills the whole framebuffer with c
func (f *Framebuffer) Clear(c color.RGBA) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image. It is overwritten by later frames.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Frames returns the number of frames presented so far
func (f *Framebuffer) Frames() int {
	return f.frames
}
