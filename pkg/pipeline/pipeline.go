// Package pipeline provides the core collage pipeline for Photosheet.
//
// This package implements the complete scan → select → compose → write run
// that turns a folder of photos into numbered print sheets. Centralizing it
// here keeps the CLI a thin shell and gives tests a single entry point with
// no terminal attached.
//
// # Architecture
//
// A run moves through two phases:
//
//  1. Scan: list the folder, classify every supported image by reading its
//     header (through the probe cache), and partition the results into
//     portrait and landscape pools.
//  2. Slots: for each of the run's numbered slots, pick a grid for the
//     images still in the pools, sample them without replacement, compose
//     the sheet, and write it as a PNG. Slots that cannot be filled are
//     skipped, never padded.
//
// Anything that goes wrong inside a slot downgrades that slot to skipped;
// only missing preconditions (folder absent, fewer than four usable images)
// abort the run.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(store, logger)
//	summary, err := runner.Execute(ctx, pipeline.Options{
//	    Folder:       "photos/vacation",
//	    AddFilenames: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d written, %d skipped\n", summary.Written, summary.Skipped)
//
// Scan without composing (used by the inspect command):
//
//	pools, unreadable, err := runner.Scan(ctx, "photos/vacation")
package pipeline

import (
	"math/rand/v2"
	"time"

	"github.com/photosheet/photosheet/pkg/collage"
	apperrors "github.com/photosheet/photosheet/pkg/errors"
	"github.com/photosheet/photosheet/pkg/profile"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSlots is the number of sheets attempted per run.
	DefaultSlots = 12

	// DefaultOutputDir is where finished sheets land when the caller does
	// not choose a directory.
	DefaultOutputDir = "collages"

	// MinimumImages is the fewest usable images a run may start with.
	// Below this not even the smallest grid can be filled once.
	MinimumImages = 4

	// outputPattern names the sheet written by each slot, 1-based.
	outputPattern = "collage_%02d.png"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a collage run.
type Options struct {
	// Folder is the directory scanned for source photos. Required.
	Folder string `json:"folder"`

	// OutputDir receives the finished sheets. Created if absent.
	OutputDir string `json:"output_dir,omitempty"`

	// Slots is the number of sheets attempted.
	Slots int `json:"slots,omitempty"`

	// AddFilenames overlays each photo's base filename in its cell.
	AddFilenames bool `json:"add_filenames,omitempty"`

	// Profile is the print target. The zero value means the built-in
	// A3 default.
	Profile profile.Profile `json:"profile,omitempty"`

	// Seed fixes the sampling sequence when SeedSet is true. SeedSet
	// distinguishes an explicit seed of 0 from no seed at all.
	Seed    uint64 `json:"seed,omitempty"`
	SeedSet bool   `json:"seed_set,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Folder == "" {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "folder is required")
	}
	if o.Slots < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "slots must not be negative, got %d", o.Slots)
	}
	if o.Slots == 0 {
		o.Slots = DefaultSlots
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Profile == (profile.Profile{}) {
		o.Profile = profile.Default()
	}
	if err := o.Profile.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// effectiveSeed returns the seed the run will sample with: the explicit one
// when set, otherwise a fresh random value. The chosen seed is echoed in the
// Summary so any run can be reproduced after the fact.
func (o *Options) effectiveSeed() uint64 {
	if o.SeedSet {
		return o.Seed
	}
	return rand.Uint64()
}

// newRNG builds the sampling generator for a seed.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// =============================================================================
// Results
// =============================================================================

// SlotStatus describes how one numbered slot of a run ended.
type SlotStatus int

const (
	// SlotWritten means the slot composed a sheet and saved it.
	SlotWritten SlotStatus = iota
	// SlotSkipped means the slot produced no output.
	SlotSkipped
)

// String returns "written" or "skipped".
func (s SlotStatus) String() string {
	if s == SlotWritten {
		return "written"
	}
	return "skipped"
}

// SlotResult records the outcome of one collage slot.
type SlotResult struct {
	Slot   int          // 0-based slot index
	Status SlotStatus   // written or skipped
	Kind   collage.Kind // grid strategy the slot attempted
	Path   string       // output file, empty when skipped
	Reason string       // why the slot skipped, empty when written
	Images int          // photos placed on the sheet
}

// Summary aggregates a whole run.
type Summary struct {
	Results []SlotResult
	Written int
	Skipped int

	// Pool sizes after the scan, before any slot consumed images.
	Portrait  int
	Landscape int

	// Unreadable lists files excluded during the scan.
	Unreadable []string

	// Seed is the sampling seed the run actually used, explicit or drawn.
	Seed uint64

	Stats Stats
}

// Stats contains run timing information.
type Stats struct {
	ScanTime    time.Duration
	ComposeTime time.Duration
}
