// Package vectorize converts a binary occupancy raster into vector
// geometry: closed boundary polygons or skeleton line networks.
//
// What:
//
//   - Polygons traces the solid/empty boundary on the dual grid of cell
//     edges, producing one closed ring per boundary loop (outer shells
//     and hole rings alike). Vertices lie on cell corners, so a ring
//     around the single cell (x, y) is (x,y) (x+1,y) (x+1,y+1) (x,y+1).
//   - Lines treats solid cells as a 1-pixel-wide network: cells whose
//     8-connected degree differs from 2 are nodes, and each maximal
//     node-to-node (or node-to-dead-end) walk becomes one open chain of
//     cell coordinates. Isolated loops get one synthetic node at their
//     lowest row-major index.
//   - Rasterize paints polygon features back onto an empty raster
//     (even-odd rule at cell centers), closing the round-trip.
//
// A cell is solid when its value is non-zero and not NaN.
//
// Tracing rules:
//
//   - Boundary walks keep the solid side on the right and pick the next
//     edge by fixed turn priority: right before straight before left.
//     Every boundary edge is traversed exactly once; consecutive
//     collinear vertices are merged.
//   - Walks are capped at 4× the cell count; exceeding the cap reports
//     ErrTraceOverflow instead of spinning.
//
// Options:
//
//   - WithGeoTransform(gt): map pixel vertices to world coordinates
//     through the affine transform [originX, pixelW, 0, originY, 0,
//     -pixelH]. Default is the identity (pixel coordinates pass through).
//
// Complexity:
//
//   - Polygons / Lines: O(W×H×8) time, O(W×H) memory.
//   - Rasterize: O(W×H×V) time for V total ring vertices.
//
// Errors:
//
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
//   - ErrTraceOverflow: a trace exceeded the iteration safety cap.
package vectorize
