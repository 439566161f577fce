package profile

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.Canvas.Width != 4961 || p.Canvas.Height != 3508 {
		t.Errorf("default canvas = %dx%d, want 4961x3508", p.Canvas.Width, p.Canvas.Height)
	}
	if p.BorderWidth != 0 {
		t.Errorf("default border = %d, want 0", p.BorderWidth)
	}
	if p.Overlay.Font != "Arial" || p.Overlay.Size != 24 {
		t.Errorf("default overlay = %q %v, want Arial 24", p.Overlay.Font, p.Overlay.Size)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default profile does not validate: %v", err)
	}
}

func TestLoadLayersOverDefault(t *testing.T) {
	path := writeProfile(t, `
border_width = 12

[canvas]
width = 3508
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Canvas.Width != 3508 {
		t.Errorf("canvas width = %d, want 3508", p.Canvas.Width)
	}
	if p.Canvas.Height != 3508 {
		t.Errorf("canvas height = %d, want default 3508", p.Canvas.Height)
	}
	if p.BorderWidth != 12 {
		t.Errorf("border = %d, want 12", p.BorderWidth)
	}
	if p.Overlay.Font != "Arial" {
		t.Errorf("overlay font = %q, want default Arial", p.Overlay.Font)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeProfile(t, `
[canvas]
width = 4961
hieght = 3508
`)
	_, err := Load(path)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidProfile)
	}
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeProfile(t, `[canvas`)
	_, err := Load(path)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidProfile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidProfile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr bool
	}{
		{"Default", func(p *Profile) {}, false},
		{"ZeroWidth", func(p *Profile) { p.Canvas.Width = 0 }, true},
		{"NegativeHeight", func(p *Profile) { p.Canvas.Height = -1 }, true},
		{"NegativeBorder", func(p *Profile) { p.BorderWidth = -3 }, true},
		{"ZeroOverlaySize", func(p *Profile) { p.Overlay.Size = 0 }, true},
		{"EmptyFontAllowed", func(p *Profile) { p.Overlay.Font = "" }, false},
		{"LargeBorderAllowed", func(p *Profile) { p.BorderWidth = 10000 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !apperrors.Is(err, apperrors.ErrCodeInvalidProfile) {
				t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidProfile)
			}
		})
	}
}
