package collage

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	labelMargin  = 10 // distance from the cell's left and bottom edges
	labelPadding = 5  // backdrop extends this far beyond the text box
)

// drawLabel renders the label in white on a black backdrop in the
// bottom-left corner of the cell and returns the annotated cell.
func drawLabel(cell image.Image, label string, face font.Face) image.Image {
	dc := gg.NewContextForImage(cell)
	dc.SetFontFace(face)

	w, h := dc.MeasureString(label)
	x := float64(labelMargin)
	y := float64(cell.Bounds().Dy()) - h - float64(labelMargin)

	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(x-labelPadding, y-labelPadding, w+2*labelPadding, h+2*labelPadding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(label, x, y, 0, 1)
	return dc.Image()
}
