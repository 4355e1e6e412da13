// Package vectorize defines the vector feature types, the affine
// geotransform, and configuration options for raster tracing.
package vectorize

import (
	"errors"
	"math"
)

// ErrTraceOverflow indicates a boundary or skeleton walk exceeded the
// 4×cell-count iteration safety cap. It signals a tracing bug, not bad
// input; no partial features are returned.
var ErrTraceOverflow = errors.New("vectorize: trace exceeded iteration safety cap")

// FeatureKind tags a feature as an open chain or a closed ring.
type FeatureKind int

const (
	// KindLine marks an open chain of vertices.
	KindLine FeatureKind = iota
	// KindPolygon marks a closed ring; the first and last vertex coincide.
	KindPolygon
)

// String returns the wire name of the kind ("line" or "polygon").
func (k FeatureKind) String() string {
	if k == KindPolygon {
		return "polygon"
	}

	return "line"
}

// Point is a vertex in pixel space, or in world space once a
// GeoTransform has been applied.
type Point struct {
	X, Y float64
}

// Feature is an ordered vertex sequence: a closed ring for KindPolygon,
// an open chain for KindLine.
type Feature struct {
	Kind   FeatureKind
	Points []Point
}

// GeoTransform is the affine pixel→world mapping
// [originX, pixelW, rotX, originY, rotY, -pixelH], GDAL layout.
type GeoTransform [6]float64

// IdentityTransform maps pixel coordinates to themselves.
var IdentityTransform = GeoTransform{0, 1, 0, 0, 0, 1}

// Apply maps a pixel-space vertex through the transform.
// Complexity: O(1).
func (gt GeoTransform) Apply(px, py float64) Point {
	return Point{
		X: gt[0] + px*gt[1] + py*gt[2],
		Y: gt[3] + px*gt[4] + py*gt[5],
	}
}

// Options configures Polygons and Lines.
//
// Transform – affine pixel→world mapping applied to every output vertex.
type Options struct {
	Transform GeoTransform
}

// Option is a functional option for configuring tracing.
type Option func(*Options)

// WithGeoTransform maps every output vertex through gt.
func WithGeoTransform(gt GeoTransform) Option {
	return func(o *Options) {
		o.Transform = gt
	}
}

// DefaultOptions returns the default configuration: identity transform.
func DefaultOptions() Options {
	return Options{Transform: IdentityTransform}
}

// solid reports whether a cell value counts as occupied:
// non-zero and not NaN.
func solid(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}
