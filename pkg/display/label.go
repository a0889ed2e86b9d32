package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	LabelFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	LabelBG = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}
)

// labelFont is a small fixed-width bitmap font
var labelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

const (
	labelHeight  = 10 // Glyph box height in pixels, including descenders
	labelAscent  = 8  // Baseline offset from the top of the box
	labelPadding = 2
)

// rectFiller is implemented by displays that can fill a rectangle faster
// than pixel by pixel
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// LabelSize returns the size of the box DrawLabel fills for text
func LabelSize(text string) (width, height int16) {
	_, outbox := tinyfont.LineWidth(labelFont, text)
	return int16(outbox) + 2*labelPadding, labelHeight + 2*labelPadding
}

// DrawLabel draws text on a dark box whose top-left corner is (x, y)
func DrawLabel(d drivers.Displayer, x, y int16, text string) {
	w, h := LabelSize(text)
	fill(d, x, y, w, h, LabelBG)
	tinyfont.WriteLine(d, labelFont, x+labelPadding, y+labelPadding+labelAscent, text, LabelFG)
}

func fill(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	if f, ok := d.(rectFiller); ok {
		_ = f.FillRectangle(x, y, w, h, c)
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.SetPixel(px, py, c)
		}
	}
}
