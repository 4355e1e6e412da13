package vectorize

import (
	"github.com/uihilab/hydrodem/dem"
)

// Boundary-edge directions in lattice-vertex space. The raster cell
// (x, y) owns the four corner vertices (x, y) … (x+1, y+1); y grows
// downward, so "right of east" is south.
const (
	edgeEast = iota
	edgeSouth
	edgeWest
	edgeNorth
)

// edgeSteps maps an edge direction to its lattice-vertex step.
var edgeSteps = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Polygons traces every solid/empty boundary of the occupancy raster and
// returns one closed ring per boundary loop. Outer shells and hole rings
// are both emitted; consecutive collinear vertices are merged, and the
// first vertex is repeated at the end of each ring.
//
// The walk keeps solid on the right and resolves each lattice vertex by
// fixed turn priority (right, straight, left), so every directed boundary
// edge is traversed exactly once and tracing is deterministic.
//
// Complexity: O(W×H) time and memory.
func Polygons(g *dem.Grid, opts ...Option) ([]Feature, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	t := &polyTracer{
		grid:     g,
		vw:       g.Width + 1,
		out:      make([]uint8, (g.Width+1)*(g.Height+1)),
		maxSteps: 4 * g.Width * g.Height,
		cfg:      cfg,
	}
	t.collectEdges()

	var feats []Feature
	// Row-major scan over cells, each cell's four edges in fixed order,
	// guarantees deterministic ring ordering and catches hole rings.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			for _, s := range [4]struct{ vx, vy, dir int }{
				{x, y, edgeEast},         // top edge
				{x + 1, y, edgeSouth},    // right edge
				{x + 1, y + 1, edgeWest}, // bottom edge
				{x, y + 1, edgeNorth},    // left edge
			} {
				vid := s.vy*t.vw + s.vx
				if t.out[vid]&(1<<s.dir) == 0 {
					continue
				}
				ring, err := t.trace(s.vx, s.vy, s.dir)
				if err != nil {
					return nil, err
				}
				feats = append(feats, Feature{Kind: KindPolygon, Points: ring})
			}
		}
	}

	return feats, nil
}

// polyTracer holds the mutable state of one Polygons run.
type polyTracer struct {
	grid     *dem.Grid
	vw       int     // lattice vertex row width = grid.Width+1
	out      []uint8 // per-vertex bitmask of untraced outgoing edge directions
	maxSteps int     // iteration safety cap, 4×cell count
	cfg      Options
}

// collectEdges registers one directed edge per solid/empty cell boundary,
// oriented so the solid cell lies on the right of the walk direction.
func (t *polyTracer) collectEdges() {
	g := t.grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !solid(g.At(x, y)) {
				continue
			}
			if t.empty(x, y-1) {
				t.add(x, y, edgeEast) // top edge, walking east
			}
			if t.empty(x+1, y) {
				t.add(x+1, y, edgeSouth) // right edge, walking south
			}
			if t.empty(x, y+1) {
				t.add(x+1, y+1, edgeWest) // bottom edge, walking west
			}
			if t.empty(x-1, y) {
				t.add(x, y+1, edgeNorth) // left edge, walking north
			}
		}
	}
}

// empty reports whether (x, y) is outside the raster or a non-solid cell.
func (t *polyTracer) empty(x, y int) bool {
	if !t.grid.InBounds(x, y) {
		return true
	}

	return !solid(t.grid.At(x, y))
}

// add registers an untraced directed edge leaving lattice vertex (vx, vy).
func (t *polyTracer) add(vx, vy, dir int) {
	t.out[vy*t.vw+vx] |= 1 << dir
}

// trace walks one boundary ring starting with the directed edge (vx, vy,
// dir), consuming every traversed edge, and returns the closed ring.
func (t *polyTracer) trace(vx, vy, dir int) ([]Point, error) {
	startX, startY := vx, vy
	pts := []Point{t.vertex(vx, vy)}

	for steps := 0; ; steps++ {
		if steps > t.maxSteps {
			return nil, ErrTraceOverflow
		}

		t.out[vy*t.vw+vx] &^= 1 << dir
		nx, ny := vx+edgeSteps[dir][0], vy+edgeSteps[dir][1]
		if nx == startX && ny == startY {
			// Ring closed; repeat the first vertex.
			pts = append(pts, pts[0])

			return pts, nil
		}

		next, ok := t.nextDir(nx, ny, dir)
		if !ok {
			// Every interior vertex of a well-formed boundary has a
			// continuation; missing one means the edge set is corrupt.
			return nil, ErrTraceOverflow
		}
		if next != dir {
			pts = append(pts, t.vertex(nx, ny))
		}
		vx, vy, dir = nx, ny, next
	}
}

// nextDir picks the outgoing edge at a vertex by turn priority relative
// to the incoming direction: right, then straight, then left. With y
// growing downward, right of direction d is (d+1)%4.
func (t *polyTracer) nextDir(vx, vy, dir int) (int, bool) {
	avail := t.out[vy*t.vw+vx]
	for _, cand := range [3]int{(dir + 1) % 4, dir, (dir + 3) % 4} {
		if avail&(1<<cand) != 0 {
			return cand, true
		}
	}

	return 0, false
}

// vertex maps a lattice vertex through the configured geotransform.
func (t *polyTracer) vertex(vx, vy int) Point {
	return t.cfg.Transform.Apply(float64(vx), float64(vy))
}
