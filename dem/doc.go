// Package dem defines the shared raster types consumed and produced by every
// terrain algorithm in hydrodem: the elevation Grid, the boolean Mask, and
// the PourPoint outlet coordinate.
//
// What:
//
//   - Grid wraps a rectangular elevation raster as a flat row-major buffer
//     (index = y*Width + x), the shape every algorithm agrees on.
//   - Mask is a same-shaped 0/1 raster marking watershed membership or
//     stream presence.
//   - PourPoint names the outlet cell for watershed delineation.
//
// Why:
//
//   - Algorithms exchange decoded numeric buffers only; no file decoding,
//     projection math, or rendering happens here.
//   - A single validated shape contract (Width>0, Height>0,
//     len(Cells)==Width*Height) lets every algorithm skip per-call bounds
//     bookkeeping.
//
// Complexity:
//
//   - NewGrid / From2D / Clone: O(W×H) time and memory.
//   - Index / Coordinate / InBounds / At / Set: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:   width or height is not positive.
//   - ErrCellCount:   buffer length does not equal Width*Height.
//   - ErrNonRectangular: rows of a 2D input differ in length.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package dem
