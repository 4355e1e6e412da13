package watershed

import (
	"fmt"

	"github.com/uihilab/hydrodem/d8"
	"github.com/uihilab/hydrodem/dem"
	"github.com/uihilab/hydrodem/fill"
)

// Options configures Delineate.
//
// Fill – run fill.PriorityFlood before deriving directions (default true).
type Options struct {
	Fill bool
}

// Option is a functional option for configuring Delineate.
type Option func(*Options)

// WithoutFilling skips the depression-filling pre-pass.
func WithoutFilling() Option {
	return func(o *Options) {
		o.Fill = false
	}
}

// DefaultOptions returns the default configuration: filling enabled.
func DefaultOptions() Options {
	return Options{Fill: true}
}

// Delineate returns the mask of cells draining to the pour point.
//
// The traversal is an unordered frontier expansion: starting from the
// pour point, any unvisited neighbor whose own flow direction points back
// at the current cell joins the watershed. Membership is monotonic and
// idempotent, so stack versus queue order is irrelevant.
//
// Returns dem.ErrOutOfBounds when the pour point lies outside the raster.
// Complexity: O(n log n) time with filling, O(n) without; O(n) memory.
func Delineate(g *dem.Grid, pour dem.PourPoint, opts ...Option) (*dem.Mask, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.InBounds(pour.X, pour.Y) {
		return nil, fmt.Errorf("%w: pour point (%d,%d) on %dx%d raster",
			dem.ErrOutOfBounds, pour.X, pour.Y, g.Width, g.Height)
	}

	src := g
	if cfg.Fill {
		filled, err := fill.PriorityFlood(g)
		if err != nil {
			return nil, err
		}
		src = filled
	}

	dirs, err := d8.Directions(src)
	if err != nil {
		return nil, err
	}

	return climb(dirs, pour), nil
}

// climb expands the watershed frontier upstream from the pour point over
// a direction grid.
func climb(dirs *d8.Grid, pour dem.PourPoint) *dem.Mask {
	w, h := dirs.Width, dirs.Height
	mask := &dem.Mask{Width: w, Height: h, Bits: make([]bool, w*h)}

	mask.Set(pour.X, pour.Y)
	frontier := []dem.PourPoint{pour}

	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, dir := range d8.ScanOrder {
			dx, dy := d8.Offset(dir)
			nx, ny := cur.X+dx, cur.Y+dy
			if !dirs.InBounds(nx, ny) || mask.Contains(nx, ny) {
				continue
			}
			// The neighbor drains into cur exactly when its direction is
			// the reverse of the direction from cur to it.
			if dirs.At(nx, ny) != d8.Reverse(dir) {
				continue
			}
			mask.Set(nx, ny)
			frontier = append(frontier, dem.PourPoint{X: nx, Y: ny})
		}
	}

	return mask
}
