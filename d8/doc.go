// Package d8 implements the eight-direction ("D8") flow model: every cell
// of an elevation raster drains to exactly one of its 8 neighbors, or to
// none when it is a sink.
//
// What:
//
//   - Direction is a power-of-two code for one of the 8 compass neighbors
//     (E=1, SE=2, S=4, SW=8, W=16, NW=32, N=64, NE=128) or 0 for a sink.
//   - Directions assigns each cell the code of its steepest-descent
//     neighbor, using slope = drop/distance with distance 1 for cardinal
//     and √2 for diagonal neighbors.
//   - Grid holds one code per cell, same shape as the source raster.
//
// Why:
//
//   - The D8 grid is the directed graph every downstream computation walks:
//     flow accumulation propagates along it, watershed delineation walks it
//     in reverse.
//
// Flat handling:
//
//   - Strict descent always wins: a cell with any strictly-lower neighbor
//     never drains across a flat.
//   - Cells with only equal-or-higher neighbors are resolved by a
//     breadth-first sweep that routes each flat cell one step toward its
//     nearest same-elevation spill (a resolved cell or the grid border).
//   - Flats with no spill at all — enclosed depression floors — keep
//     code 0; depression-fill the raster first to remove them. Border
//     cells without strict descent also keep code 0: they spill off-grid
//     and act as outlets for the flats behind them.
//
// Determinism:
//
//   - Neighbors are scanned in the fixed order E, SE, S, SW, W, NW, N, NE;
//     the first maximum-slope neighbor in that order wins ties.
//
// Complexity:
//
//   - Directions: O(W×H×8) time, O(W×H) memory.
//
// Errors:
//
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
package d8
