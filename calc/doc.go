// Package calc applies a per-cell expression across a raster: a sandboxed
// raster calculator with a small whitelisted expression language instead
// of dynamic code generation.
//
// What:
//
//   - Compile parses an expression over the identifiers value, x, y into
//     a Program; malformed expressions fail here, before any cell is
//     touched.
//   - Map evaluates a Program at every cell of a raster and returns a new
//     raster of the same shape; the operation completes for the whole
//     grid or not at all.
//   - MapFunc is the ahead-of-time alternative: apply a plain Go callback
//     instead of a compiled expression.
//
// Language:
//
//   - Float literals, identifiers value, x, y.
//   - Operators: + - * / % ^ (power, right-associative), unary -,
//     comparisons < <= > >= == != (yielding 0 or 1), and the conditional
//     cond ? a : b.
//   - Functions: abs, sqrt, min, max, floor, ceil, pow, log, exp, sin,
//     cos.
//   - Arithmetic is strict: division or modulo by zero and sqrt/log of a
//     non-admissible argument fail the evaluation rather than spreading
//     NaN through the output.
//
// Purity:
//
//   - Expressions cannot touch anything beyond their three arguments, so
//     cell evaluation order is unobservable and Map is free to process
//     cells in any order.
//
// Complexity:
//
//   - Compile: O(len(expr)). Map: O(W×H×len(expr)).
//
// Errors:
//
//   - ErrCompile: the expression fails to parse (position included).
//   - ErrEval: the expression fails on a specific cell (cell included).
//   - ErrNilFunc: MapFunc received a nil callback.
//   - dem.ErrEmptyGrid, dem.ErrCellCount: malformed input raster.
package calc
