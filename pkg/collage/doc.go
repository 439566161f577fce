// Package collage composes photos into fixed-grid print sheets.
//
// # Overview
//
// A sheet is a white canvas at print resolution (A3 landscape by default,
// 4961x3508 pixels) divided into a full-bleed grid of cells. Two grid
// shapes exist: [PortraitGrid] with six cells in two rows of three, and
// [LandscapeGrid] with four cells in two rows of two. Every photo placed in
// a cell is scaled to cover the cell completely and center-cropped to its
// exact dimensions, so a finished sheet has no gaps and no letterboxing.
//
// # Grid Selection
//
// [Decide] is a pure function from remaining pool sizes to a [Decision],
// keeping the fallback policy auditable without touching image bytes. Full
// single-orientation sheets win, portrait first. When neither pool alone
// can fill its grid, a mixed sheet draws from both pools using the grid
// shape that wastes the fewest remaining images. Below four images the
// sheet is skipped.
//
// # Fitting
//
// [Fit] implements cover-and-crop: scale by the larger of the two axis
// ratios (Lanczos resampling), then trim the overshoot equally from both
// sides of the long axis. An odd trim loses its extra pixel on the right or
// bottom edge. The output always has exactly the requested dimensions,
// which is what lets cells tile the canvas without seams.
//
// # Basic Usage
//
//	items := []collage.Item{...} // decoded photos, one per cell
//	sheet, err := collage.Compose(items, collage.PortraitGrid, collage.Options{
//	    CanvasWidth:  4961,
//	    CanvasHeight: 3508,
//	})
//	if err != nil {
//	    return err
//	}
//	err = imaging.Save(sheet, "collage_01.png")
//
// Optional extras are a white [Options.BorderWidth] frame inside each cell
// and a filename overlay ([Options.AddLabels] plus a resolved
// [Options.Face]) drawn in the bottom-left corner of each cell.
package collage
