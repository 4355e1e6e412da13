// Package accum defines configuration options and the result type for
// flow accumulation.
package accum

import (
	"github.com/uihilab/hydrodem/d8"
)

// Result bundles the accumulation raster with the D8 direction grid it
// was computed from, so chained callers (watershed, stream extraction)
// can reuse the directions without recomputing them.
type Result struct {
	// Width and Height mirror the source raster shape.
	Width, Height int
	// Cells holds the accumulation value per cell, row-major; every cell
	// is at least 1. float64 leaves ample headroom on large grids.
	Cells []float64
	// Dirs is the direction grid the propagation followed.
	Dirs *d8.Grid
}

// At returns the accumulation value at (x, y); must be in bounds.
// Complexity: O(1).
func (r *Result) At(x, y int) float64 {
	return r.Cells[y*r.Width+x]
}

// Options configures Accumulate.
//
// Fill – run fill.PriorityFlood before deriving directions (default true).
type Options struct {
	Fill bool
}

// Option is a functional option for configuring Accumulate.
type Option func(*Options)

// WithoutFilling skips the depression-filling pre-pass. Use when the
// input raster is already hydrologically conditioned; sinks left in the
// raster become accumulation endpoints.
func WithoutFilling() Option {
	return func(o *Options) {
		o.Fill = false
	}
}

// DefaultOptions returns the default configuration: filling enabled.
func DefaultOptions() Options {
	return Options{Fill: true}
}
