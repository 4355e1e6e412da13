// Package dem defines core types and sentinel errors shared by the
// hydrodem algorithm packages.
package dem

import (
	"errors"
)

// Sentinel errors for raster construction and coordinate access.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("dem: grid must have positive width and height")
	// ErrCellCount indicates the flat buffer length does not match width*height.
	ErrCellCount = errors.New("dem: cell buffer length must equal width*height")
	// ErrNonRectangular indicates rows of differing lengths in a 2D input.
	ErrNonRectangular = errors.New("dem: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("dem: coordinate out of grid bounds")
)

// Grid is a rectangular elevation raster stored as a flat row-major buffer:
// the cell at (x, y) lives at Cells[y*Width+x]. Algorithms never resize a
// Grid in place; they allocate fresh output buffers of the same shape.
type Grid struct {
	Width, Height int
	Cells         []float64
}

// PourPoint is the outlet cell used as the origin for watershed delineation,
// in pixel coordinates (0 ≤ X < Width, 0 ≤ Y < Height).
type PourPoint struct {
	X, Y int
}

// Mask is a same-shaped boolean raster marking cell membership
// (watershed area, stream presence).
type Mask struct {
	Width, Height int
	Bits          []bool
}
