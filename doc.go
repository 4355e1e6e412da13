// Package hydrodem is an in-memory terrain-analysis engine for digital
// elevation models: depression filling, D8 flow routing, watershed
// delineation, stream extraction, raster vectorization, and a sandboxed
// raster calculator — all over plain numeric buffers.
//
// 🚀 What is hydrodem?
//
//	A pure-Go hydrology toolkit that brings together:
//		• dem:       the shared Grid / Mask / PourPoint raster types
//		• fill:      priority-flood depression filling (Barnes et al.)
//		• d8:        eight-direction steepest-descent flow coding
//		• accum:     topological flow accumulation
//		• watershed: contributing-area delineation from a pour point
//		• streams:   stream-network extraction by drainage threshold
//		• vectorize: boundary polygons and skeleton lines from masks
//		• calc:      a whitelisted per-cell expression calculator
//		• dispatch:  typed request routing with background workers
//
// ✨ Why choose hydrodem?
//
//   - Decoded buffers in, decoded buffers out – no file formats, no
//     projections, no rendering, no network
//   - Deterministic – fixed neighbor scan order, documented tie-breaks
//   - Pure Go – no cgo, no geospatial binaries
//   - Concurrency only at the dispatch boundary – algorithms run to
//     completion with no shared mutable state
//
// Quick ASCII example, a 4×4 bowl:
//
//	10  5  5 10
//	 5  1  1  5
//	 5  1  1  5      fill.PriorityFlood raises the four 1s to 5,
//	10  5  5 10      then every interior cell drains to the border.
//
// Typical pipelines chain fill → d8 → accum internally; calling
// accum.Accumulate or watershed.Delineate on a raw DEM just works.
package hydrodem
