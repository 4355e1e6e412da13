package d8

import (
	"github.com/uihilab/hydrodem/dem"
)

// Directions assigns each cell of the elevation raster the code of its
// steepest-descent neighbor.
//
// For each cell:
//  1. Scan all 8 neighbors (out-of-bounds neighbors are skipped, never
//     treated as lower) and note whether any strictly-lower neighbor exists.
//  2. Scan again in ScanOrder, computing slope = (z[self]-z[neighbor])/dist
//     with dist 1 for cardinal and √2 for diagonal steps. Negative slopes
//     are never eligible; zero slopes are eligible only when step 1 found
//     no strict descent.
//  3. Keep the first maximum-slope eligible neighbor; its code is the
//     cell's direction. No eligible neighbor yields None (sink).
//
// Cells with no strictly-lower neighbor are then run through flat
// resolution: a breadth-first sweep from every already-resolved cell and
// every border cell routes each flat cell one step toward its nearest
// spill at the same elevation. Flat cells the sweep never reaches —
// enclosed depression floors — keep code None; running
// fill.PriorityFlood first removes those.
//
// Complexity: O(W×H×8) time, O(W×H) memory.
func Directions(g *dem.Grid) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Codes:  make([]Direction, g.Width*g.Height),
	}

	var (
		x, y int
		i    int
	)
	for y = 0; y < g.Height; y++ {
		for x = 0; x < g.Width; x++ {
			out.Codes[i] = steepest(g, x, y)
			i++
		}
	}

	resolveFlats(g, out)

	return out, nil
}

// resolveFlats assigns directions inside flat areas by expanding a FIFO
// frontier from every resolved cell and every border cell (border cells
// spill off-grid, so unresolved ones stay None and act as outlets).
// Each unresolved equal-elevation neighbor of a frontier cell is pointed
// at that cell, giving a breadth-first drainage tree toward the spill.
// Seeding in row-major order and scanning neighbors in ScanOrder keeps
// the result deterministic.
func resolveFlats(g *dem.Grid, out *Grid) {
	w, h := g.Width, g.Height
	n := w * h

	seeded := make([]bool, n)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		x, y := i%w, i/w
		onBorder := x == 0 || y == 0 || x == w-1 || y == h-1
		if out.Codes[i] != None || onBorder {
			seeded[i] = true
			queue = append(queue, i)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		i := queue[qi]
		x, y := i%w, i/w
		z := g.Cells[i]
		for k, dir := range ScanOrder {
			nx, ny := x+offsets[k][0], y+offsets[k][1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := ny*w + nx
			if seeded[ni] || g.Cells[ni] != z {
				continue
			}
			out.Codes[ni] = Reverse(dir) // neighbor drains toward cell i
			seeded[ni] = true
			queue = append(queue, ni)
		}
	}
}

// steepest resolves the direction code for a single cell per the rules
// documented on Directions.
func steepest(g *dem.Grid, x, y int) Direction {
	z := g.At(x, y)

	// Pass 1: does any strictly-lower neighbor exist?
	// A cell surrounded only by equal or higher neighbors is a sink or an
	// unresolved flat and keeps code None; assigning a zero-slope direction
	// instead would create two-cell cycles inside flats.
	hasDownhill := false
	for i := range ScanOrder {
		nx, ny := x+offsets[i][0], y+offsets[i][1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.At(nx, ny) < z {
			hasDownhill = true
			break
		}
	}
	if !hasDownhill {
		return None
	}

	// Pass 2: pick the first maximum-slope strictly-downhill neighbor in
	// ScanOrder. Zero-slope neighbors are skipped: strict descent exists,
	// so flow never crosses a flat here.
	best := None
	bestSlope := 0.0
	for i, dir := range ScanOrder {
		nx, ny := x+offsets[i][0], y+offsets[i][1]
		if !g.InBounds(nx, ny) {
			continue
		}
		drop := z - g.At(nx, ny)
		if drop <= 0 {
			continue
		}
		slope := drop / distances[i]
		if slope > bestSlope {
			// Strict > keeps the first-encountered maximum on ties.
			best = dir
			bestSlope = slope
		}
	}

	return best
}
