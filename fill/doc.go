// Package fill implements depression filling with the priority-flood
// algorithm (Barnes et al.): a min-priority-queue seeded from the raster
// border raises every interior depression to its lowest spill elevation.
//
// What:
//
//   - PriorityFlood returns a new raster where filled[i] >= original[i]
//     for every cell and filled[i] == original[i] on the border.
//   - Depth returns the fill depth raster (filled − original), a standard
//     companion product for locating and sizing depressions.
//
// Why:
//
//   - D8 flow direction leaves sinks (code 0) wherever a cell has no
//     downhill neighbor; filling first guarantees every interior cell
//     drains to the border.
//
// Flat handling:
//
//   - No epsilon is added: equal-elevation neighbors are filled to exactly
//     the same level, so filling produces flat areas rather than a forced
//     gradient.
//
// Complexity:
//
//   - PriorityFlood: O(n log n) time on a grid of n cells, each cell is
//     pushed and popped exactly once; O(n) memory.
//
// Errors:
//
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
package fill
