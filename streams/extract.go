// Package streams thresholds flow accumulation into a stream-presence mask.
package streams

import (
	"errors"

	"github.com/uihilab/hydrodem/accum"
	"github.com/uihilab/hydrodem/dem"
)

// ErrBadThreshold indicates a non-positive stream threshold.
var ErrBadThreshold = errors.New("streams: threshold must be positive")

// DefaultThreshold is the fallback drainage-area threshold, in cells.
// It suits small demonstration rasters only; real basins need a value
// derived from cell resolution and target channel density.
const DefaultThreshold = 50.0

// Options configures Extract.
//
// Fill – depression-fill before accumulating (default true).
type Options struct {
	Fill bool
}

// Option is a functional option for configuring Extract.
type Option func(*Options)

// WithoutFilling skips the depression-filling pre-pass of the internal
// accumulation run.
func WithoutFilling() Option {
	return func(o *Options) {
		o.Fill = false
	}
}

// DefaultOptions returns the default configuration: filling enabled.
func DefaultOptions() Options {
	return Options{Fill: true}
}

// Extract computes flow accumulation and returns the mask of cells whose
// accumulation is at least threshold.
// Returns ErrBadThreshold when threshold <= 0.
// Complexity: O(n log n) time, O(n) memory.
func Extract(g *dem.Grid, threshold float64, opts ...Option) (*dem.Mask, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if threshold <= 0 {
		return nil, ErrBadThreshold
	}

	var accOpts []accum.Option
	if !cfg.Fill {
		accOpts = append(accOpts, accum.WithoutFilling())
	}
	res, err := accum.Accumulate(g, accOpts...)
	if err != nil {
		return nil, err
	}

	mask := &dem.Mask{Width: res.Width, Height: res.Height, Bits: make([]bool, len(res.Cells))}
	for i, a := range res.Cells {
		if a >= threshold {
			mask.Bits[i] = true
		}
	}

	return mask, nil
}

// FromResult thresholds an already-computed accumulation result, letting
// callers probe several thresholds from a single accumulation run.
// Returns ErrBadThreshold when threshold <= 0.
// Complexity: O(n).
func FromResult(res *accum.Result, threshold float64) (*dem.Mask, error) {
	if threshold <= 0 {
		return nil, ErrBadThreshold
	}

	mask := &dem.Mask{Width: res.Width, Height: res.Height, Bits: make([]bool, len(res.Cells))}
	for i, a := range res.Cells {
		if a >= threshold {
			mask.Bits[i] = true
		}
	}

	return mask, nil
}
