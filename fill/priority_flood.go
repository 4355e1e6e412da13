package fill

import (
	"container/heap"

	"github.com/uihilab/hydrodem/dem"
)

// PriorityFlood fills every interior depression of the elevation raster to
// its lowest spill elevation and returns the result as a new raster. The
// input buffer is never mutated; the algorithm works on a clone so callers
// may keep reusing the original.
//
// Algorithm:
//  1. Push every border cell onto a min-heap keyed by elevation and mark
//     it visited; border elevations are final.
//  2. Pop the lowest entry, inspect its 8 neighbors; each unvisited
//     neighbor is raised to max(own elevation, popped elevation), marked
//     visited, and pushed.
//  3. Repeat until the heap is empty. Every cell is visited exactly once.
//
// Single-row and single-column rasters are entirely border and return a
// plain copy.
//
// Complexity: O(n log n) time, O(n) memory, n = W×H.
func PriorityFlood(g *dem.Grid) (*dem.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := g.Clone()
	w, h := out.Width, out.Height
	visited := make([]bool, w*h)

	// Seed the heap with the full border ring.
	pq := make(cellPQ, 0, 2*(w+h))
	seed := func(x, y int) {
		i := y*w + x
		if visited[i] {
			return
		}
		visited[i] = true
		pq = append(pq, cellItem{index: i, elev: out.Cells[i]})
	}
	for x := 0; x < w; x++ {
		seed(x, 0)
		seed(x, h-1)
	}
	for y := 0; y < h; y++ {
		seed(0, y)
		seed(w-1, y)
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		cx, cy := item.index%w, item.index/w

		for _, d := range neighborOffsets {
			nx, ny := cx+d[0], cy+d[1]
			if !out.InBounds(nx, ny) {
				continue
			}
			ni := ny*w + nx
			if visited[ni] {
				continue
			}
			visited[ni] = true
			// Raise the neighbor to the spill level; no epsilon, ties
			// produce flat areas.
			if out.Cells[ni] < item.elev {
				out.Cells[ni] = item.elev
			}
			heap.Push(&pq, cellItem{index: ni, elev: out.Cells[ni]})
		}
	}

	return out, nil
}

// Depth returns the fill depth raster: PriorityFlood(g) minus g, cell by
// cell. Zero everywhere outside depressions.
// Complexity: O(n log n) time, O(n) memory.
func Depth(g *dem.Grid) (*dem.Grid, error) {
	filled, err := PriorityFlood(g)
	if err != nil {
		return nil, err
	}
	for i := range filled.Cells {
		filled.Cells[i] -= g.Cells[i]
	}

	return filled, nil
}

// neighborOffsets lists the 8 neighbor steps in scan order E, SE, S, SW,
// W, NW, N, NE.
var neighborOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// cellItem pairs a row-major cell index with its (possibly raised)
// elevation for heap ordering.
type cellItem struct {
	index int
	elev  float64
}

// cellPQ is a min-heap of cellItem ordered by elevation ascending.
// Unlike a lazy-decrease-key queue, each cell enters the heap exactly
// once, so no stale-entry check is needed on pop.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders items by ascending elevation; on ties the lower index wins,
// keeping pop order deterministic across runs.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].elev != pq[j].elev {
		return pq[i].elev < pq[j].elev
	}

	return pq[i].index < pq[j].index
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the minimum element.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
