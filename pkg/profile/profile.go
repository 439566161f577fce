// Package profile loads print profiles: the sheet geometry and overlay
// styling a collage run composes against.
//
// A profile is a small TOML file layered over the built-in A3 default, so a
// file only needs the keys it changes:
//
//	border_width = 12
//
//	[canvas]
//	width = 3508
//	height = 2480
//
//	[overlay]
//	font = "DejaVuSans"
//	size = 18
package profile

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

// A3Width and A3Height are the default sheet dimensions: A3 landscape at
// print resolution (300 dpi).
const (
	A3Width  = 4961
	A3Height = 3508
)

// Default overlay styling.
const (
	DefaultFont     = "Arial"
	DefaultFontSize = 24.0
)

// Canvas describes the pixel dimensions of the output sheet.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Overlay describes the filename overlay styling. An empty Font skips the
// host font lookup and goes straight to the embedded fallback face.
type Overlay struct {
	Font string  `toml:"font"`
	Size float64 `toml:"size"`
}

// Profile bundles everything a run needs to know about the print target.
type Profile struct {
	Canvas      Canvas  `toml:"canvas"`
	BorderWidth int     `toml:"border_width"` // white frame inside each cell, in pixels
	Overlay     Overlay `toml:"overlay"`
}

// Default returns the built-in profile: borderless A3 landscape with
// Arial 24pt overlays.
func Default() Profile {
	return Profile{
		Canvas:  Canvas{Width: A3Width, Height: A3Height},
		Overlay: Overlay{Font: DefaultFont, Size: DefaultFontSize},
	}
}

// Load reads a TOML profile from path and layers it over Default. Unknown
// keys are rejected rather than ignored; a typoed key would otherwise
// change print output without any warning.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.ErrCodeInvalidProfile, err, "read profile %s", path)
	}

	p := Default()
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Profile{}, apperrors.Wrap(apperrors.ErrCodeInvalidProfile, err, "parse profile %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, apperrors.New(apperrors.ErrCodeInvalidProfile,
			"profile %s has unknown keys: %v", path, undecoded)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks for values the compositor cannot work with.
func (p Profile) Validate() error {
	if p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidProfile,
			"canvas must have positive dimensions, got %dx%d", p.Canvas.Width, p.Canvas.Height)
	}
	if p.BorderWidth < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidProfile,
			"border width must not be negative, got %d", p.BorderWidth)
	}
	if p.Overlay.Size <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidProfile,
			"overlay size must be positive, got %v", p.Overlay.Size)
	}
	return nil
}
