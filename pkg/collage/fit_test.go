package collage

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestFitExactDimensions(t *testing.T) {
	tests := []struct {
		name             string
		srcW, srcH       int
		targetW, targetH int
	}{
		{"DownscaleWide", 4000, 3000, 1653, 1754},
		{"DownscaleTall", 900, 1600, 1653, 1754},
		{"ExtremePanorama", 3000, 300, 2480, 1754},
		{"ExtremeColumn", 300, 3000, 2480, 1754},
		{"Upscale", 50, 50, 120, 90},
		{"ExactMatch", 1653, 1754, 1653, 1754},
		{"OddByOdd", 333, 777, 101, 103},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := imaging.New(tt.srcW, tt.srcH, color.NRGBA{255, 0, 0, 255})
			got := Fit(src, tt.targetW, tt.targetH)
			if got.Bounds().Dx() != tt.targetW || got.Bounds().Dy() != tt.targetH {
				t.Errorf("Fit(%dx%d -> %dx%d) produced %dx%d",
					tt.srcW, tt.srcH, tt.targetW, tt.targetH,
					got.Bounds().Dx(), got.Bounds().Dy())
			}
		})
	}
}

func TestFitCoversTarget(t *testing.T) {
	// A solid source must come out solid: the crop may discard content but
	// never introduces background.
	src := imaging.New(640, 480, color.NRGBA{255, 0, 0, 255})
	got := Fit(src, 200, 300)

	want := color.NRGBA{255, 0, 0, 255}
	probes := []struct{ x, y int }{
		{0, 0}, {199, 0}, {0, 299}, {199, 299}, {100, 150},
	}
	for _, p := range probes {
		if c := got.NRGBAAt(p.x, p.y); c != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", p.x, p.y, c, want)
		}
	}
}
