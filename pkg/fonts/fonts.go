// Package fonts resolves the typeface used for filename overlays.
//
// The preferred font is looked up by name among the fonts installed on the
// host. When it is missing or unparseable, the embedded Go Regular face
// steps in, so overlays keep working without any external font files.
package fonts

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

// Find loads the named font from the host's installed fonts at the given
// point size. The name is matched against font file names, so "Arial"
// finds Arial.ttf wherever the platform keeps it. Fonts that cannot be
// located or parsed yield an error; callers are expected to degrade to
// Fallback rather than abort.
func Find(name string, size float64) (font.Face, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "font %q not installed", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read font %s", path)
	}
	return face(data, size, path)
}

// Fallback returns the embedded Go Regular face at the given point size.
// It involves no file system access and should never fail in practice.
func Fallback(size float64) (font.Face, error) {
	return face(goregular.TTF, size, "embedded Go Regular")
}

func face(ttf []byte, size float64, origin string) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "parse font %s", origin)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
