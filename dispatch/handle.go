package dispatch

import (
	"fmt"

	"github.com/uihilab/hydrodem/accum"
	"github.com/uihilab/hydrodem/calc"
	"github.com/uihilab/hydrodem/d8"
	"github.com/uihilab/hydrodem/dem"
	"github.com/uihilab/hydrodem/fill"
	"github.com/uihilab/hydrodem/streams"
	"github.com/uihilab/hydrodem/vectorize"
	"github.com/uihilab/hydrodem/watershed"
)

// Handle routes one request to its algorithm and returns the response,
// synchronously. The switch over Action is exhaustive; values outside
// the enum fail with ErrUnknownAction. Validation happens before any
// algorithm work, and algorithm errors pass through unmodified.
func Handle(req Request) Response {
	if req.Grid == nil {
		return fail(req, ErrMissingGrid)
	}

	switch req.Action {
	case ActionFillSinks:
		filled, err := fill.PriorityFlood(req.Grid)
		if err != nil {
			return fail(req, err)
		}

		return Response{ID: req.ID, Grid: filled}

	case ActionFlowDirection:
		dirs, err := d8.Directions(req.Grid)
		if err != nil {
			return fail(req, err)
		}

		return Response{ID: req.ID, Grid: directionGrid(dirs)}

	case ActionFlowAccumulation:
		res, err := accum.Accumulate(req.Grid)
		if err != nil {
			return fail(req, err)
		}

		return Response{ID: req.ID, Grid: &dem.Grid{Width: res.Width, Height: res.Height, Cells: res.Cells}}

	case ActionWatershed:
		if req.Args.PourPoint == nil {
			return fail(req, ErrMissingPourPoint)
		}
		mask, err := watershed.Delineate(req.Grid, *req.Args.PourPoint)
		if err != nil {
			return fail(req, err)
		}

		return Response{ID: req.ID, Mask: mask}

	case ActionStreamExtract:
		threshold := req.Args.Threshold
		if threshold == 0 {
			threshold = streams.DefaultThreshold
		}
		mask, err := streams.Extract(req.Grid, threshold)
		if err != nil {
			return fail(req, err)
		}

		return Response{ID: req.ID, Mask: mask}

	case ActionVectorize:
		return vectorizeRequest(req)

	case ActionCalculate:
		if req.Args.Expression == "" {
			return fail(req, ErrMissingExpression)
		}
		prog, err := calc.Compile(req.Args.Expression)
		if err != nil {
			return fail(req, err)
		}
		out, err := calc.Map(req.Grid, prog)
		if err != nil {
			return fail(req, err)
		}

		return Response{ID: req.ID, Grid: out}

	default:
		return fail(req, fmt.Errorf("%w: action value %d", ErrUnknownAction, req.Action))
	}
}

// vectorizeRequest resolves the vectorize kind and optional geotransform.
func vectorizeRequest(req Request) Response {
	var opts []vectorize.Option
	if req.Args.GeoTransform != nil {
		opts = append(opts, vectorize.WithGeoTransform(*req.Args.GeoTransform))
	}

	var (
		feats []vectorize.Feature
		err   error
	)
	switch req.Args.Kind {
	case "line":
		feats, err = vectorize.Lines(req.Grid, opts...)
	case "polygon":
		feats, err = vectorize.Polygons(req.Grid, opts...)
	default:
		return fail(req, fmt.Errorf("%w: got %q", ErrBadVectorKind, req.Args.Kind))
	}
	if err != nil {
		return fail(req, err)
	}

	return Response{ID: req.ID, Features: feats}
}

// directionGrid widens a d8 code grid into the numeric raster shape the
// dispatch boundary returns for grid-producing actions.
func directionGrid(dirs *d8.Grid) *dem.Grid {
	cells := make([]float64, len(dirs.Codes))
	for i, c := range dirs.Codes {
		cells[i] = float64(c)
	}

	return &dem.Grid{Width: dirs.Width, Height: dirs.Height, Cells: cells}
}

// fail builds a failed response, echoing the request ID and surfacing
// the original error unmodified.
func fail(req Request, err error) Response {
	return Response{ID: req.ID, Err: err}
}
