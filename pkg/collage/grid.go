package collage

import (
	"image"

	"github.com/photosheet/photosheet/pkg/photo"
)

// Grid describes the fixed cell arrangement of one sheet: a full-bleed
// matrix of Rows x Cols cells with no gutters.
type Grid struct {
	Rows        int
	Cols        int
	Orientation photo.Orientation // orientation the cells are shaped for
}

var (
	// PortraitGrid holds six upright photos in two rows of three.
	PortraitGrid = Grid{Rows: 2, Cols: 3, Orientation: photo.Portrait}
	// LandscapeGrid holds four wide photos in two rows of two.
	LandscapeGrid = Grid{Rows: 2, Cols: 2, Orientation: photo.Landscape}
)

// Cells returns the number of photos the grid holds.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// CellRect returns the pixel rectangle of the cell at (row, col) on a canvas
// of the given size. Cell edges fall on whole pixels; when the canvas does
// not divide evenly, the last column and last row absorb the remainder so
// the cells always tile the canvas exactly.
func (g Grid) CellRect(canvasW, canvasH, row, col int) image.Rectangle {
	cellW := canvasW / g.Cols
	cellH := canvasH / g.Rows

	x0 := col * cellW
	y0 := row * cellH
	x1 := x0 + cellW
	y1 := y0 + cellH
	if col == g.Cols-1 {
		x1 = canvasW
	}
	if row == g.Rows-1 {
		y1 = canvasH
	}
	return image.Rect(x0, y0, x1, y1)
}
