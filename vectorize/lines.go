package vectorize

import (
	"github.com/uihilab/hydrodem/dem"
)

// skeletonOffsets lists the 8 neighbor steps in the fixed scan order
// E, SE, S, SW, W, NW, N, NE used throughout hydrodem.
var skeletonOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Lines traces a 1-pixel-wide solid network into open vertex chains.
//
// Solid cells whose 8-connected degree differs from 2 are nodes: degree-1
// endpoints, degree-0 isolated cells, and degree≥3 junctions. Every
// maximal walk from a node through degree-2 cells to the next node (or a
// dead end) becomes one feature; a node-free loop gets one synthetic node
// at its lowest row-major index and comes back as a single closed chain.
// Each cell-to-cell link is traversed exactly once, and a segment joining
// two nodes is always recorded starting from the lower row-major index,
// so no segment is duplicated.
//
// Isolated cells yield single-point features. Vertices are cell
// coordinates mapped through the configured geotransform.
//
// Complexity: O(W×H×8) time, O(W×H) memory.
func Lines(g *dem.Grid, opts ...Option) ([]Feature, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	w, h := g.Width, g.Height
	n := w * h

	// Degree and node classification.
	degree := make([]int, n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !solid(g.At(x, y)) {
				continue
			}
			d := 0
			for _, off := range skeletonOffsets {
				nx, ny := x+off[0], y+off[1]
				if g.InBounds(nx, ny) && solid(g.At(nx, ny)) {
					d++
				}
			}
			degree[y*w+x] = d
		}
	}

	t := &lineTracer{
		grid:     g,
		degree:   degree,
		visited:  make([]uint8, n), // bitmask per cell: link to neighbor k traversed
		maxSteps: 4 * n,
		cfg:      cfg,
	}

	var feats []Feature

	// Pass 1: walk outward from every node in ascending row-major order.
	for i := 0; i < n; i++ {
		x, y := i%w, i/w
		if !solid(g.At(x, y)) || degree[i] == 2 {
			continue
		}
		if degree[i] == 0 {
			feats = append(feats, Feature{Kind: KindLine, Points: []Point{t.vertex(x, y)}})
			continue
		}
		for k := range skeletonOffsets {
			f, ok, err := t.walk(x, y, k)
			if err != nil {
				return nil, err
			}
			if ok {
				feats = append(feats, f)
			}
		}
	}

	// Pass 2: remaining untouched solid cells are node-free loops; the
	// lowest-index cell of each loop serves as its synthetic node.
	for i := 0; i < n; i++ {
		x, y := i%w, i/w
		if !solid(g.At(x, y)) || t.visited[i] != 0 || degree[i] != 2 {
			continue
		}
		for k := range skeletonOffsets {
			f, ok, err := t.walk(x, y, k)
			if err != nil {
				return nil, err
			}
			if ok {
				feats = append(feats, f)
				break // one walk covers the whole loop
			}
		}
	}

	return feats, nil
}

// lineTracer holds the mutable state of one Lines run.
type lineTracer struct {
	grid     *dem.Grid
	degree   []int
	visited  []uint8
	maxSteps int
	cfg      Options
}

// walk follows the skeleton from node (x, y) through its k-th neighbor
// until it reaches another node or runs out of unvisited links. ok is
// false when the k-th neighbor is missing, non-solid, or already linked.
func (t *lineTracer) walk(x, y, k int) (Feature, bool, error) {
	g := t.grid
	w := g.Width
	nx, ny := x+skeletonOffsets[k][0], y+skeletonOffsets[k][1]
	if !g.InBounds(nx, ny) || !solid(g.At(nx, ny)) {
		return Feature{}, false, nil
	}
	if t.visited[y*w+x]&(1<<k) != 0 {
		return Feature{}, false, nil
	}
	t.mark(x, y, k)

	pts := []Point{t.vertex(x, y), t.vertex(nx, ny)}
	px, py := x, y
	cx, cy := nx, ny

	for steps := 0; t.degree[cy*w+cx] == 2; steps++ {
		if steps > t.maxSteps {
			return Feature{}, false, ErrTraceOverflow
		}
		// A degree-2 cell has exactly one link besides the one we came in
		// on; a loop closing on its synthetic node exhausts all links.
		nk, ok := t.nextLink(cx, cy, px, py)
		if !ok {
			break
		}
		t.mark(cx, cy, nk)
		px, py = cx, cy
		cx, cy = cx+skeletonOffsets[nk][0], cy+skeletonOffsets[nk][1]
		pts = append(pts, t.vertex(cx, cy))
	}

	return Feature{Kind: KindLine, Points: pts}, true, nil
}

// nextLink finds the unvisited solid link out of (cx, cy) that does not
// lead straight back to (px, py).
func (t *lineTracer) nextLink(cx, cy, px, py int) (int, bool) {
	g := t.grid
	for k, off := range skeletonOffsets {
		nx, ny := cx+off[0], cy+off[1]
		if nx == px && ny == py {
			continue
		}
		if !g.InBounds(nx, ny) || !solid(g.At(nx, ny)) {
			continue
		}
		if t.visited[cy*g.Width+cx]&(1<<k) != 0 {
			continue
		}

		return k, true
	}

	return 0, false
}

// mark records the link from (x, y) to its k-th neighbor as traversed,
// in both directions.
func (t *lineTracer) mark(x, y, k int) {
	w := t.grid.Width
	t.visited[y*w+x] |= 1 << k
	nx, ny := x+skeletonOffsets[k][0], y+skeletonOffsets[k][1]
	// The opposite direction sits 4 positions away in the scan order.
	t.visited[ny*w+nx] |= 1 << ((k + 4) % 8)
}

// vertex maps a cell coordinate through the configured geotransform.
func (t *lineTracer) vertex(x, y int) Point {
	return t.cfg.Transform.Apply(float64(x), float64(y))
}
