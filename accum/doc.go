// Package accum computes D8 flow accumulation: for every cell, the number
// of cells (including itself) whose flow path passes through it.
//
// What:
//
//   - Accumulate chains fill.PriorityFlood → d8.Directions → topological
//     propagation and returns both the accumulation raster and the
//     direction grid it was derived from.
//   - Each cell starts at 1 (self-contribution); contributions propagate
//     downstream in Kahn order, so every cell is finalized exactly once.
//
// Why:
//
//   - Accumulation is the drainage-area proxy that stream extraction
//     thresholds and hydrologists read directly.
//
// Options:
//
//   - WithoutFilling(): skip the depression-filling pre-pass when the
//     caller already supplies a hydrologically conditioned raster.
//
// Guarantees:
//
//   - accumulation[i] >= 1 for every cell.
//   - accumulation[i] == 1 + Σ accumulation over cells draining into i.
//   - Cells with direction code 0 (sinks, outlets) absorb flow and do not
//     propagate further.
//
// Complexity:
//
//   - O(n log n) time with the filling pre-pass, O(n) without; O(n) memory.
//
// Errors:
//
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
package accum
