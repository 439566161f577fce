package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"

	"github.com/photosheet/photosheet/pkg/dimcache"
	apperrors "github.com/photosheet/photosheet/pkg/errors"
	"github.com/photosheet/photosheet/pkg/fonts"
	"github.com/photosheet/photosheet/pkg/observability"
	"github.com/photosheet/photosheet/pkg/photo"
)

// Runner executes collage runs against a probe cache.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  dimcache.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given probe cache.
// If store is nil, a NullStore is used (probe caching disabled).
func NewRunner(store dimcache.Store, logger *log.Logger) *Runner {
	if store == nil {
		store = dimcache.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  store,
		Logger: logger,
	}
}

// Close releases the probe cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the complete scan → select → compose → write pipeline.
// The returned Summary has one SlotResult per slot; partial success (some
// slots skipped) is not an error. It fails outright only when the folder
// cannot be read, fewer than MinimumImages usable images exist, or the
// output directory cannot be created.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	summary := &Summary{}

	// Stage 1: scan the folder.
	scanStart := time.Now()
	pools, unreadable, err := r.Scan(ctx, opts.Folder)
	if err != nil {
		return nil, err
	}
	summary.Portrait = pools.Portrait.Len()
	summary.Landscape = pools.Landscape.Len()
	summary.Unreadable = unreadable
	summary.Stats.ScanTime = time.Since(scanStart)

	r.Logger.Info("scanned folder",
		"folder", opts.Folder,
		"portrait", summary.Portrait,
		"landscape", summary.Landscape,
		"unreadable", len(unreadable),
		"duration", summary.Stats.ScanTime)

	if total := pools.Total(); total < MinimumImages {
		return nil, apperrors.New(apperrors.ErrCodeInsufficientImages,
			"found %d usable images in %s, need at least %d", total, opts.Folder, MinimumImages)
	}

	seed := opts.effectiveSeed()
	summary.Seed = seed
	rng := newRNG(seed)
	r.Logger.Debug("sampling seeded", "seed", seed, "explicit", opts.SeedSet)

	face := r.resolveFace(opts)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err,
			"create output directory %s", opts.OutputDir)
	}

	// Stage 2: fill the slots.
	composeStart := time.Now()
	for slot := 0; slot < opts.Slots; slot++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := r.runSlot(ctx, slot, pools, rng, opts, face)
		summary.Results = append(summary.Results, res)
		if res.Status == SlotWritten {
			summary.Written++
			r.Logger.Info("collage written",
				"slot", res.Slot+1,
				"kind", res.Kind.String(),
				"images", res.Images,
				"remaining", pools.Total(),
				"file", res.Path)
		} else {
			summary.Skipped++
			r.Logger.Debug("slot skipped", "slot", res.Slot+1, "reason", res.Reason)
		}
	}
	summary.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("run complete",
		"written", summary.Written,
		"skipped", summary.Skipped,
		"duration", summary.Stats.ComposeTime)

	return summary, nil
}

// Scan lists the folder, classifies every supported image, and partitions
// the readable ones into orientation pools. Unreadable files are logged,
// returned by path, and excluded from the pools. Dimension probes go
// through the cache keyed by path, size, and mtime, so re-scanning an
// unchanged folder reads no image data at all.
func (r *Runner) Scan(ctx context.Context, folder string) (*photo.Pools, []string, error) {
	obs := observability.Run()
	obs.OnScanStart(ctx, folder)
	start := time.Now()

	paths, err := photo.List(folder)
	if err != nil {
		obs.OnScanComplete(ctx, folder, 0, 0, time.Since(start), err)
		return nil, nil, err
	}

	var (
		images     []photo.SourceImage
		unreadable []string
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		img, err := r.classify(ctx, path)
		if err != nil {
			r.Logger.Warn("skipping unreadable image", "file", path, "error", err)
			unreadable = append(unreadable, path)
			continue
		}
		images = append(images, img)
	}

	pools := photo.Partition(images)
	obs.OnScanComplete(ctx, folder, pools.Portrait.Len(), pools.Landscape.Len(), time.Since(start), nil)
	return pools, unreadable, nil
}

// classify resolves an image's dimensions, consulting the probe cache
// before touching the file's contents.
func (r *Runner) classify(ctx context.Context, path string) (photo.SourceImage, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return photo.SourceImage{}, apperrors.Wrap(apperrors.ErrCodeUnreadableImage, err, "stat %s", path)
	}
	key := dimcache.Key(path, fi.Size(), fi.ModTime())

	if d, ok, err := r.Cache.Lookup(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "dimensions")
		return photo.FromDimensions(path, d.Width, d.Height), nil
	}
	observability.Cache().OnCacheMiss(ctx, "dimensions")

	img, err := photo.Classify(path)
	if err != nil {
		return photo.SourceImage{}, err
	}

	if err := r.Cache.Save(ctx, key, dimcache.Dimensions{Width: img.Width, Height: img.Height}); err != nil {
		r.Logger.Debug("probe cache write failed", "file", path, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "dimensions")
	}
	return img, nil
}

// resolveFace builds the overlay font face for the run. Font trouble
// degrades: first to the embedded fallback face, then to no overlays at
// all. It never aborts the run.
func (r *Runner) resolveFace(opts Options) font.Face {
	if !opts.AddFilenames {
		return nil
	}

	name := opts.Profile.Overlay.Font
	size := opts.Profile.Overlay.Size
	if name != "" {
		face, err := fonts.Find(name, size)
		if err == nil {
			return face
		}
		r.Logger.Warn("preferred font unavailable, using embedded fallback",
			"font", name, "error", err)
	}

	face, err := fonts.Fallback(size)
	if err != nil {
		r.Logger.Warn("no usable overlay font, labels disabled", "error", err)
		return nil
	}
	return face
}
