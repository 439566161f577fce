package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/photosheet/photosheet/pkg/collage"
	apperrors "github.com/photosheet/photosheet/pkg/errors"
	"github.com/photosheet/photosheet/pkg/observability"
	"github.com/photosheet/photosheet/pkg/photo"
)

// runSlot drives one slot from grid selection through write, emitting the
// slot hooks around the work.
func (r *Runner) runSlot(ctx context.Context, slot int, pools *photo.Pools, rng *rand.Rand, opts Options, face font.Face) SlotResult {
	obs := observability.Run()
	start := time.Now()

	decision := collage.Decide(pools.Portrait.Len(), pools.Landscape.Len())
	obs.OnSlotStart(ctx, slot, decision.Kind.String())

	res, err := r.composeSlot(slot, pools, decision, rng, opts, face)
	obs.OnSlotComplete(ctx, slot, decision.Kind.String(), res.Path, time.Since(start), err)
	return res
}

// composeSlot implements the slot's state transitions after grid selection:
// sample, compose, write. Every failure downgrades the slot to skipped with
// a reason; the returned error carries the underlying cause for the hooks
// and never aborts the run.
func (r *Runner) composeSlot(slot int, pools *photo.Pools, decision collage.Decision, rng *rand.Rand, opts Options, face font.Face) (SlotResult, error) {
	res := SlotResult{Slot: slot, Kind: decision.Kind}

	if decision.Kind == collage.KindSkip {
		res.Status = SlotSkipped
		res.Reason = fmt.Sprintf("%d images remain, the smallest grid needs %d",
			pools.Total(), collage.LandscapeGrid.Cells())
		return res, nil
	}

	picked, err := drawFor(pools, decision, decision.Grid.Cells(), rng)
	if err != nil {
		// Decide sized the grid against the pools, so this only happens if
		// they drained in between; treat it like any other skip.
		res.Status = SlotSkipped
		res.Reason = "pools drained during sampling"
		return res, err
	}

	items, err := r.loadItems(picked, pools, decision, rng)
	if err != nil {
		res.Status = SlotSkipped
		res.Reason = "image unreadable and no replacement available"
		return res, err
	}

	sheet, err := collage.Compose(items, decision.Grid, collage.Options{
		CanvasWidth:  opts.Profile.Canvas.Width,
		CanvasHeight: opts.Profile.Canvas.Height,
		BorderWidth:  opts.Profile.BorderWidth,
		AddLabels:    opts.AddFilenames,
		Face:         face,
	})
	if err != nil {
		res.Status = SlotSkipped
		res.Reason = fmt.Sprintf("compose failed: %v", err)
		return res, err
	}

	path := filepath.Join(opts.OutputDir, fmt.Sprintf(outputPattern, slot+1))
	if err := imaging.Save(sheet, path); err != nil {
		r.Logger.Warn("failed to write collage", "file", path, "error", err)
		res.Status = SlotSkipped
		res.Reason = fmt.Sprintf("write failed: %v", err)
		return res, err
	}

	res.Status = SlotWritten
	res.Path = path
	res.Images = len(items)
	return res, nil
}

// drawFor samples the slot's images from the pool(s) the decision names.
func drawFor(pools *photo.Pools, decision collage.Decision, n int, rng *rand.Rand) ([]photo.SourceImage, error) {
	switch decision.Kind {
	case collage.KindPortrait:
		return pools.Portrait.Draw(n, rng)
	case collage.KindLandscape:
		return pools.Landscape.Draw(n, rng)
	default:
		return pools.DrawAny(n, rng)
	}
}

// loadItems decodes the picked images for composition. The scan probe only
// read headers, so a file can still turn out unreadable here; such images
// are dropped and replaced with a fresh draw from the same pool the slot
// samples from, until the grid is full or nothing is left to draw.
func (r *Runner) loadItems(picked []photo.SourceImage, pools *photo.Pools, decision collage.Decision, rng *rand.Rand) ([]collage.Item, error) {
	items := make([]collage.Item, 0, len(picked))
	queue := picked
	for len(queue) > 0 {
		img := queue[0]
		queue = queue[1:]

		decoded, err := imaging.Open(img.Path)
		if err != nil {
			r.Logger.Warn("dropping unreadable image", "file", img.Path, "error", err)
			replacement, drawErr := drawFor(pools, decision, 1, rng)
			if drawErr != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeUnreadableImage, err,
					"cannot replace %s, pools are drained", img.Path)
			}
			queue = append(queue, replacement...)
			continue
		}
		items = append(items, collage.Item{Image: decoded, Label: img.Label()})
	}
	return items, nil
}
