package collage

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

// Item pairs a decoded photo with the label shown when filename overlays
// are enabled.
type Item struct {
	Image image.Image
	Label string
}

// Options control the pixel-level appearance of a composed sheet.
type Options struct {
	CanvasWidth  int  // sheet width in pixels
	CanvasHeight int  // sheet height in pixels
	BorderWidth  int  // white frame inside each cell, 0 disables
	AddLabels    bool // overlay each photo's filename in its cell

	// Face renders the label overlays. A nil Face disables overlays even
	// when AddLabels is set; the caller decides how loudly to report an
	// unresolvable font.
	Face font.Face
}

// Compose lays the items onto a fresh white canvas according to grid, in
// row-major cell order, and returns the finished sheet. The caller selects
// items to match the grid, so a count mismatch or non-positive canvas is an
// INTERNAL_ERROR rather than a user-facing condition.
func Compose(items []Item, grid Grid, opts Options) (*image.NRGBA, error) {
	if len(items) != grid.Cells() {
		return nil, apperrors.New(apperrors.ErrCodeInternal,
			"grid needs %d images, got %d", grid.Cells(), len(items))
	}
	if opts.CanvasWidth <= 0 || opts.CanvasHeight <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInternal,
			"invalid canvas size %dx%d", opts.CanvasWidth, opts.CanvasHeight)
	}

	canvas := imaging.New(opts.CanvasWidth, opts.CanvasHeight, color.White)
	for i, item := range items {
		row := i / grid.Cols
		col := i % grid.Cols
		rect := grid.CellRect(opts.CanvasWidth, opts.CanvasHeight, row, col)
		cell := renderCell(item, rect.Dx(), rect.Dy(), opts)
		draw.Draw(canvas, rect, cell, image.Point{}, draw.Src)
	}
	return canvas, nil
}

// renderCell produces the pixel content of a single cell: the photo fitted
// to the area inside the border, framed in white if a border is set, with
// the optional label drawn on top.
func renderCell(item Item, cellW, cellH int, opts Options) image.Image {
	border := opts.BorderWidth
	effW := cellW - 2*border
	effH := cellH - 2*border
	if border < 0 || effW <= 0 || effH <= 0 {
		// A border that would swallow the whole cell collapses to none.
		border, effW, effH = 0, cellW, cellH
	}

	fitted := Fit(item.Image, effW, effH)

	var cell image.Image = fitted
	if border > 0 {
		framed := imaging.New(cellW, cellH, color.White)
		draw.Draw(framed, image.Rect(border, border, border+effW, border+effH),
			fitted, image.Point{}, draw.Src)
		cell = framed
	}

	if opts.AddLabels && opts.Face != nil && item.Label != "" {
		cell = drawLabel(cell, item.Label, opts.Face)
	}
	return cell
}
