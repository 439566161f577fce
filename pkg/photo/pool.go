package photo

import (
	"math/rand/v2"

	apperrors "github.com/photosheet/photosheet/pkg/errors"
)

// Pool holds the images of one orientation that have not yet been placed on
// a sheet. Draws remove images, so within a run a pool only ever shrinks and
// no photo can appear on two sheets.
type Pool struct {
	images []SourceImage
}

// NewPool builds a pool over a copy of the given images.
func NewPool(images []SourceImage) *Pool {
	return &Pool{images: append([]SourceImage(nil), images...)}
}

// Len returns the number of images remaining in the pool.
func (p *Pool) Len() int {
	return len(p.images)
}

// Remaining returns a copy of the images still in the pool, in their current
// internal order.
func (p *Pool) Remaining() []SourceImage {
	return append([]SourceImage(nil), p.images...)
}

// Draw removes n images chosen uniformly at random with rng and returns
// them. Asking for more images than remain yields an INSUFFICIENT_IMAGES
// error and leaves the pool untouched.
//
// The selection is a partial Fisher-Yates shuffle: the first n slots are
// swapped with random later slots and then split off, which keeps draws O(n)
// regardless of pool size and fully reproducible for a given rng state.
func (p *Pool) Draw(n int, rng *rand.Rand) ([]SourceImage, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(p.images) {
		return nil, apperrors.New(apperrors.ErrCodeInsufficientImages,
			"pool has %d images, need %d", len(p.images), n)
	}

	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(p.images)-i)
		p.images[i], p.images[j] = p.images[j], p.images[i]
	}
	picked := append([]SourceImage(nil), p.images[:n]...)
	p.images = p.images[n:]
	return picked, nil
}

// Pools groups the portrait and landscape pools of one run.
type Pools struct {
	Portrait  *Pool
	Landscape *Pool
}

// Partition splits images by orientation into fresh pools.
func Partition(images []SourceImage) *Pools {
	var portrait, landscape []SourceImage
	for _, img := range images {
		if img.Orientation == Portrait {
			portrait = append(portrait, img)
		} else {
			landscape = append(landscape, img)
		}
	}
	return &Pools{
		Portrait:  NewPool(portrait),
		Landscape: NewPool(landscape),
	}
}

// Total returns the combined number of images remaining across both pools.
func (p *Pools) Total() int {
	return p.Portrait.Len() + p.Landscape.Len()
}

// ByOrientation returns the pool holding images of the given orientation.
func (p *Pools) ByOrientation(o Orientation) *Pool {
	if o == Portrait {
		return p.Portrait
	}
	return p.Landscape
}

// DrawAny removes n images chosen uniformly at random across both pools,
// ignoring orientation. The portrait and landscape images are merged
// (portraits first, to keep the draw order deterministic), sampled, and the
// remainder is re-partitioned back into the two pools. Asking for more
// images than both pools hold combined yields an INSUFFICIENT_IMAGES error
// and leaves the pools untouched.
func (p *Pools) DrawAny(n int, rng *rand.Rand) ([]SourceImage, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > p.Total() {
		return nil, apperrors.New(apperrors.ErrCodeInsufficientImages,
			"pools hold %d images combined, need %d", p.Total(), n)
	}

	merged := NewPool(append(p.Portrait.Remaining(), p.Landscape.Remaining()...))
	picked, err := merged.Draw(n, rng)
	if err != nil {
		return nil, err
	}

	rest := Partition(merged.Remaining())
	p.Portrait = rest.Portrait
	p.Landscape = rest.Landscape
	return picked, nil
}
