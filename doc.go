// Package crunch packs transparent sprites into a single atlas image.
//
// Each source image is trimmed to the bounding box of its non-transparent
// pixels, the trimmed sprites are placed on a canvas by a rectangle packing
// Algorithm (MaxRects or Shelf), and the canvas is doubled up to
// Config.MaxRetries times when they do not fit. The composed atlas is
// written to Config.OutputPath and a descriptor for every sprite is written
// next to it, see package descriptor.
//
// Images without opaque pixels are skipped with a warning; every other
// failure aborts the run.
package crunch
