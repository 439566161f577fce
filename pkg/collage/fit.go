package collage

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Fit scales src to completely cover targetW x targetH and center-crops the
// overshoot, returning an image of exactly the target dimensions. The scale
// factor is the larger of the two axis ratios, so the image always fills the
// cell and the crop only ever removes content along one axis. Aspect ratio
// is preserved by the resize; composition is lost only to the crop.
//
// Rounding: the scaled dimensions are rounded to whole pixels and clamped
// up to the target, so the crop margins are never negative. When the crop
// margin is odd, the extra pixel comes off the right or bottom edge.
func Fit(src image.Image, targetW, targetH int) *image.NRGBA {
	bounds := src.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	scale := math.Max(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	newW := int(math.Round(float64(srcW) * scale))
	newH := int(math.Round(float64(srcH) * scale))
	if newW < targetW {
		newW = targetW
	}
	if newH < targetH {
		newH = targetH
	}

	resized := imaging.Resize(src, newW, newH, imaging.Lanczos)
	return imaging.CropAnchor(resized, targetW, targetH, imaging.Center)
}
