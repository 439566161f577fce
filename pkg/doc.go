// Package pkg provides the core libraries for Photosheet collage composition.
//
// # Overview
//
// Photosheet turns a folder of photos into a set of fixed-layout collage
// sheets sized for printing. The pkg directory is organized into four main
// areas:
//
//  1. [photo] - Scanning and classification (orientation pools, sampling)
//  2. [collage] - Sheet composition (grids, fitting, borders, overlays)
//  3. [pipeline] - Orchestration (scan → select → compose → write)
//  4. [profile] - Print target configuration (TOML profiles)
//
// # Architecture
//
// The typical data flow through Photosheet:
//
//	Folder of photos
//	         ↓
//	    [photo] package (scan + classify into orientation pools)
//	         ↓
//	    [pipeline] package (per-slot grid decisions, sampling)
//	         ↓
//	    [collage] package (fit, frame, label, compose)
//	         ↓
//	    collage_01.png … collage_12.png
//
// # Quick Start
//
// Compose a folder into collage sheets:
//
//	import (
//	    "context"
//	    "github.com/photosheet/photosheet/pkg/pipeline"
//	    "github.com/photosheet/photosheet/pkg/profile"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	summary, err := runner.Execute(context.Background(), pipeline.Options{
//	    Folder:  "./vacation",
//	    Profile: profile.Default(),
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("wrote %d collages\n", summary.Written)
//
// # Main Packages
//
// ## Domain Logic
//
// [photo] - Folder scanning and image classification. Reads only image
// headers to determine dimensions, routes every photo into a portrait or
// landscape pool, and supports random without-replacement sampling from
// those pools.
//
// [collage] - Sheet composition. Grids describe the cell geometry of a
// sheet, Decide picks the grid a slot can fill, Fit scales and crops a photo
// to cover its cell exactly, and Compose assembles the final sheet with
// optional borders and filename overlays.
//
// [profile] - Print profiles: canvas dimensions, border width, and overlay
// styling loaded from TOML and layered over the built-in A3 default.
//
// [fonts] - Overlay font resolution. Looks the preferred font up among the
// host's installed fonts and falls back to an embedded face.
//
// ## Infrastructure
//
// [pipeline] - Complete composition pipeline (scan → select → compose →
// write) used by the CLI. One Runner per cache; one Options value per run.
//
// [dimcache] - Dimension probe cache so repeated runs over large folders
// skip re-reading image headers. Keys embed file size and mtime, so stale
// entries self-invalidate. FileStore for the CLI, NullStore for tests and
// --no-cache.
//
// [errors] - Structured errors with stable codes (DIRECTORY_NOT_FOUND,
// INSUFFICIENT_IMAGES, UNREADABLE_IMAGE, INVALID_PROFILE, ...) so callers
// can branch on failure kind without string matching.
//
// [observability] - Pluggable hooks for scan and slot lifecycle events.
// No-op by default; register hooks to collect metrics.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Common Workflows
//
// Scan without composing:
//
//	runner := pipeline.NewRunner(nil, nil)
//	pools, unreadable, _ := runner.Scan(ctx, "./vacation")
//	fmt.Printf("%d portrait, %d landscape, %d unreadable\n",
//	    pools.Portrait.Len(), pools.Landscape.Len(), len(unreadable))
//
// Reproducible selection:
//
//	summary, _ := runner.Execute(ctx, pipeline.Options{
//	    Folder:  "./vacation",
//	    Seed:    42,
//	    SeedSet: true,
//	})
//
// Compose a single sheet directly, with one item per grid cell:
//
//	items := make([]collage.Item, 0, collage.LandscapeGrid.Cells())
//	for _, img := range decoded {
//	    items = append(items, collage.Item{Image: img.Pixels, Label: img.Name})
//	}
//	sheet, _ := collage.Compose(items, collage.LandscapeGrid, collage.Options{
//	    CanvasWidth:  4961,
//	    CanvasHeight: 3508,
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/collage/...   # Specific package
//
// [photo]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/photo
// [collage]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/collage
// [pipeline]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/pipeline
// [profile]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/profile
// [fonts]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/fonts
// [dimcache]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/dimcache
// [errors]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/errors
// [observability]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/photosheet/photosheet/pkg/buildinfo
package pkg
