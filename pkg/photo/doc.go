// Package photo discovers and classifies the source images that feed a
// collage run.
//
// # Overview
//
// A collage run starts from a flat folder of photos. This package walks that
// folder (non-recursively), filters for supported image formats, reads each
// file's header to learn its pixel dimensions, and sorts the results into
// orientation pools. Grid selection downstream depends only on how many
// portrait and landscape images remain, so the pools are the package's main
// export.
//
// Classification reads only the image header via [image.DecodeConfig], never
// the full pixel data. A folder of thousands of photos is scanned in
// milliseconds, and full decoding is deferred until an image is actually
// placed on a canvas.
//
// # Basic Usage
//
// List a folder, classify each file, and partition the results:
//
//	paths, err := photo.List(dir)
//	if err != nil {
//	    return err
//	}
//	var images []photo.SourceImage
//	for _, p := range paths {
//	    img, err := photo.Classify(p)
//	    if err != nil {
//	        continue // unreadable file, leave it out
//	    }
//	    images = append(images, img)
//	}
//	pools := photo.Partition(images)
//	fmt.Println(pools.Portrait.Len(), pools.Landscape.Len())
//
// Draw images for a grid without replacement:
//
//	picked, err := pools.Portrait.Draw(6, rng)
//
// Draws mutate the pool, so a photo used on one sheet can never reappear on a
// later one within the same run.
//
// # Orientation
//
// Orientation is decided purely by pixel dimensions: an image is
// [Portrait] when it is taller than wide, and [Landscape] otherwise.
// Exactly square images count as landscape, which keeps the rule a strict
// inequality and avoids a third pool that almost never fills a grid.
package photo
