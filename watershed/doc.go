// Package watershed delineates the contributing area of a pour point:
// the set of cells whose D8 flow path eventually reaches it.
//
// What:
//
//   - Delineate fills the raster, derives D8 directions, then expands a
//     frontier upstream from the pour point: a neighbor joins the
//     watershed when its own direction code points back at a cell already
//     in the watershed.
//
// Why:
//
//   - The contributing-area mask is the basin boundary used for runoff
//     budgeting and for clipping further analyses to one catchment.
//
// Options:
//
//   - WithoutFilling(): skip the depression-filling pre-pass.
//
// Guarantees:
//
//   - The pour point is always a member of its own watershed.
//   - Delineation is idempotent: the same raster and pour point always
//     produce the same mask.
//   - An isolated or flat pour point yields a singleton mask.
//
// Complexity:
//
//   - O(n log n) time with the filling pre-pass, O(n) without; O(n) memory.
//
// Errors:
//
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
//   - dem.ErrOutOfBounds: pour point outside the raster extent.
package watershed
