package pipeline

import (
	"testing"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
	"github.com/photosheet/photosheet/pkg/profile"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Folder: "photos"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Slots != DefaultSlots {
		t.Errorf("Slots = %d, want %d", opts.Slots, DefaultSlots)
	}
	if opts.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, DefaultOutputDir)
	}
	if opts.Profile != profile.Default() {
		t.Errorf("Profile = %+v, want built-in default", opts.Profile)
	}
}

func TestOptionsRequireFolder(t *testing.T) {
	opts := Options{}
	err := opts.ValidateAndSetDefaults()
	if !apperrors.Is(err, apperrors.ErrCodeInvalidOptions) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidOptions)
	}
}

func TestOptionsRejectNegativeSlots(t *testing.T) {
	opts := Options{Folder: "photos", Slots: -2}
	err := opts.ValidateAndSetDefaults()
	if !apperrors.Is(err, apperrors.ErrCodeInvalidOptions) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidOptions)
	}
}

func TestOptionsRejectInvalidProfile(t *testing.T) {
	opts := Options{
		Folder:  "photos",
		Profile: profile.Profile{Canvas: profile.Canvas{Width: -1, Height: 10}},
	}
	err := opts.ValidateAndSetDefaults()
	if !apperrors.Is(err, apperrors.ErrCodeInvalidProfile) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidProfile)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Folder: "photos", Slots: 3, OutputDir: "out"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error: %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if opts.Slots != 3 || opts.OutputDir != "out" {
		t.Errorf("options changed between calls: %+v", opts)
	}
}

func TestOptionsEffectiveSeed(t *testing.T) {
	opts := Options{Folder: "photos", Seed: 99, SeedSet: true}
	if got := opts.effectiveSeed(); got != 99 {
		t.Errorf("effectiveSeed() = %d, want 99", got)
	}

	// An explicit zero seed is still an explicit seed.
	opts = Options{Folder: "photos", Seed: 0, SeedSet: true}
	if got := opts.effectiveSeed(); got != 0 {
		t.Errorf("effectiveSeed() = %d, want 0", got)
	}
}

func TestNewRNGDeterministic(t *testing.T) {
	a := newRNG(7)
	b := newRNG(7)
	for i := 0; i < 16; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("draw %d differs: %d vs %d", i, av, bv)
		}
	}
}

func TestSlotStatusString(t *testing.T) {
	if got := SlotWritten.String(); got != "written" {
		t.Errorf("SlotWritten.String() = %q, want written", got)
	}
	if got := SlotSkipped.String(); got != "skipped" {
		t.Errorf("SlotSkipped.String() = %q, want skipped", got)
	}
}
