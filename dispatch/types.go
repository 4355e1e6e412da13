// Package dispatch defines the request/response types, the action enum,
// and sentinel errors of the dispatch boundary.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/uihilab/hydrodem/dem"
	"github.com/uihilab/hydrodem/vectorize"
)

// Sentinel errors for request validation and dispatcher lifecycle.
var (
	// ErrUnknownAction indicates an action name with no registered handler.
	ErrUnknownAction = errors.New("dispatch: unknown action")
	// ErrMissingGrid indicates a request without a raster.
	ErrMissingGrid = errors.New("dispatch: request requires a grid")
	// ErrMissingPourPoint indicates a watershed request without a pour point.
	ErrMissingPourPoint = errors.New("dispatch: watershed requires a pour point")
	// ErrMissingExpression indicates a calculate request without an expression.
	ErrMissingExpression = errors.New("dispatch: calculate requires an expression")
	// ErrBadVectorKind indicates a vectorize request whose kind is neither
	// "line" nor "polygon".
	ErrBadVectorKind = errors.New(`dispatch: vectorize kind must be "line" or "polygon"`)
	// ErrClosed indicates a Submit on a closed Dispatcher.
	ErrClosed = errors.New("dispatch: dispatcher is closed")
)

// Action enumerates the routable operations. The zero value is invalid
// so an unset Action never silently routes anywhere.
type Action int

const (
	// ActionFillSinks runs fill.PriorityFlood.
	ActionFillSinks Action = iota + 1
	// ActionFlowDirection runs d8.Directions.
	ActionFlowDirection
	// ActionFlowAccumulation runs accum.Accumulate.
	ActionFlowAccumulation
	// ActionWatershed runs watershed.Delineate.
	ActionWatershed
	// ActionStreamExtract runs streams.Extract.
	ActionStreamExtract
	// ActionVectorize runs vectorize.Polygons or vectorize.Lines.
	ActionVectorize
	// ActionCalculate runs calc.Compile + calc.Map.
	ActionCalculate
)

// actionNames maps each Action to its wire name.
var actionNames = map[Action]string{
	ActionFillSinks:        "fillSinks",
	ActionFlowDirection:    "flowDirection",
	ActionFlowAccumulation: "flowAccumulation",
	ActionWatershed:        "watershed",
	ActionStreamExtract:    "streamExtract",
	ActionVectorize:        "vectorize",
	ActionCalculate:        "calculate",
}

// ParseAction resolves a wire action name to its Action.
// Returns ErrUnknownAction (with the offending name) on a miss.
// Complexity: O(1).
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// String returns the wire name of the action, or "invalid" for
// unrecognized values.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}

	return "invalid"
}

// Args carries the action-specific request arguments; only the fields
// relevant to the requested action are consulted.
type Args struct {
	// PourPoint is the watershed outlet (watershed).
	PourPoint *dem.PourPoint
	// Threshold is the stream drainage-area threshold in cells
	// (streamExtract); 0 falls back to streams.DefaultThreshold.
	Threshold float64
	// Kind selects "line" or "polygon" tracing (vectorize).
	Kind string
	// GeoTransform optionally maps vectorize output to world coordinates.
	GeoTransform *vectorize.GeoTransform
	// Expression is the per-cell formula (calculate).
	Expression string
}

// Request is one unit of work for the engine. ID is an opaque caller
// token echoed back on the Response; the dispatcher never interprets it.
type Request struct {
	ID     string
	Action Action
	Grid   *dem.Grid
	Args   Args
}

// Response is the outcome of one Request. Exactly one of Grid, Mask, or
// Features is set on success, depending on the action; Err carries the
// unmodified failure otherwise.
type Response struct {
	ID       string
	Err      error
	Grid     *dem.Grid
	Mask     *dem.Mask
	Features []vectorize.Feature
}

// Ok reports whether the request succeeded.
func (r Response) Ok() bool {
	return r.Err == nil
}
