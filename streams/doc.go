// Package streams extracts a stream network from an elevation raster by
// thresholding flow accumulation: cells whose drainage area meets the
// threshold are stream cells.
//
// What:
//
//   - Extract runs accum.Accumulate internally and marks every cell with
//     accumulation >= threshold.
//
// Why:
//
//   - Thresholded accumulation is the standard first-pass channel map;
//     the mask feeds vectorize.Lines to obtain the network geometry.
//
// Threshold choice:
//
//   - Monotonic: raising the threshold only ever removes stream cells.
//   - DefaultThreshold is a policy value; callers should pick a threshold
//     matched to basin size and cell resolution.
//
// Complexity:
//
//   - O(n log n) time, O(n) memory (dominated by accumulation).
//
// Errors:
//
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
//   - ErrBadThreshold: threshold is not positive.
package streams
