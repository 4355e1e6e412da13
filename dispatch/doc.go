// Package dispatch routes typed terrain-analysis requests to the
// algorithm packages and optionally executes them on background workers.
//
// What:
//
//   - Handle routes one Request — an action name, a raster, and
//     action-specific arguments — to the matching algorithm and returns a
//     Response carrying a raster, a mask, or vector features.
//   - Dispatcher runs Handle on a pool of worker goroutines: Submit hands
//     back a one-shot channel, responses complete out of submission
//     order, and callers correlate them by request ID.
//
// Why:
//
//   - Large-grid computations must not block the caller's control flow;
//     the dispatch boundary is the only place concurrency enters the
//     engine. Algorithms share no mutable state, so workers need no
//     locking.
//
// Semantics:
//
//   - Unknown actions fail with ErrUnknownAction rather than silently
//     doing nothing.
//   - Algorithm errors pass through unmodified; no error is swallowed
//     and no partial result is ever attached to a failed Response.
//   - There is no cancellation: a submitted request runs to completion
//     or failure. Callers wanting timeouts should select on the response
//     channel and ignore late responses.
//
// Errors:
//
//   - ErrUnknownAction:     the action name matches no handler.
//   - ErrMissingGrid:       the request carries no raster.
//   - ErrMissingPourPoint:  watershed request without a pour point.
//   - ErrMissingExpression: calculate request without an expression.
//   - ErrBadVectorKind:     vectorize request with an unknown kind.
//   - ErrClosed:            Submit after Close.
package dispatch
