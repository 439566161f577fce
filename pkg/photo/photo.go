package photo

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	// Header decoders for every supported extension. Classification only
	// calls image.DecodeConfig, so registration is all we need here.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

// Orientation classifies an image by the relationship between its pixel
// dimensions.
type Orientation int

const (
	// Landscape represents images at least as wide as they are tall,
	// including exact squares.
	Landscape Orientation = iota
	// Portrait represents images strictly taller than wide.
	Portrait
)

// String returns the lowercase orientation name ("portrait" or "landscape").
func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// OrientationOf classifies pixel dimensions. Square images count as
// landscape, so only Height > Width yields Portrait.
func OrientationOf(width, height int) Orientation {
	if height > width {
		return Portrait
	}
	return Landscape
}

// SourceImage describes a discovered photo: where it lives on disk and what
// the file header says about its pixels. The pixel data itself is not loaded
// until the image is composed onto a canvas.
type SourceImage struct {
	Path        string      // Absolute or folder-relative path to the file
	Width       int         // Pixel width from the image header
	Height      int         // Pixel height from the image header
	Orientation Orientation // Derived from Width and Height
}

// Label returns the base filename without its extension, used for optional
// text overlays on the finished sheet.
func (s SourceImage) Label() string {
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FromDimensions builds a SourceImage from already-known pixel dimensions,
// e.g. when a probe cache lookup saved us from reopening the file.
func FromDimensions(path string, width, height int) SourceImage {
	return SourceImage{
		Path:        path,
		Width:       width,
		Height:      height,
		Orientation: OrientationOf(width, height),
	}
}

// Classify opens the file at path, decodes just enough of it to learn its
// pixel dimensions, and returns the classified image. Files that cannot be
// opened or whose headers cannot be parsed yield an UNREADABLE_IMAGE error.
func Classify(path string) (SourceImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return SourceImage{}, apperrors.Wrap(apperrors.ErrCodeUnreadableImage, err, "open %s", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return SourceImage{}, apperrors.Wrap(apperrors.ErrCodeUnreadableImage, err, "decode header of %s", path)
	}
	return FromDimensions(path, cfg.Width, cfg.Height), nil
}
