// Package d8 defines the flow-direction code type and its neighbor tables.
package d8

import "math"

// Direction encodes the downstream neighbor of a cell as a power of two,
// or 0 when the cell has no downhill neighbor (sink or unresolved flat).
type Direction uint8

const (
	// None marks a sink or outlet: no downhill neighbor.
	None Direction = 0
	// East is the neighbor at (+1, 0).
	East Direction = 1
	// SouthEast is the neighbor at (+1, +1).
	SouthEast Direction = 2
	// South is the neighbor at (0, +1).
	South Direction = 4
	// SouthWest is the neighbor at (-1, +1).
	SouthWest Direction = 8
	// West is the neighbor at (-1, 0).
	West Direction = 16
	// NorthWest is the neighbor at (-1, -1).
	NorthWest Direction = 32
	// North is the neighbor at (0, -1).
	North Direction = 64
	// NorthEast is the neighbor at (+1, -1).
	NorthEast Direction = 128
)

// ScanOrder is the fixed neighbor scan order used by Directions.
// Tie-breaking is deterministic: the first maximum-slope neighbor in this
// order wins.
var ScanOrder = [8]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// offsets maps scan-order position to the (dx, dy) of that neighbor.
var offsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// distances maps scan-order position to the planimetric distance of that
// neighbor: 1 for cardinal, √2 for diagonal.
var distances = [8]float64{
	1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2, 1, math.Sqrt2,
}

// reverse maps each direction to its opposite (East↔West, SE↔NW, ...).
// Used by watershed delineation to test whether a neighbor drains into
// the current cell.
var reverse = map[Direction]Direction{
	East: West, SouthEast: NorthWest, South: North, SouthWest: NorthEast,
	West: East, NorthWest: SouthEast, North: South, NorthEast: SouthWest,
}

// Offset returns the (dx, dy) step for a non-zero direction code.
// The zero code has no offset and returns (0, 0).
// Complexity: O(1).
func Offset(d Direction) (dx, dy int) {
	for i, dir := range ScanOrder {
		if dir == d {
			return offsets[i][0], offsets[i][1]
		}
	}

	return 0, 0
}

// Reverse returns the opposite direction code, or None for None.
// Complexity: O(1).
func Reverse(d Direction) Direction {
	return reverse[d]
}

// Valid reports whether d is one of the 8 neighbor codes or None.
// Complexity: O(1).
func Valid(d Direction) bool {
	if d == None {
		return true
	}

	return d&(d-1) == 0 // single bit set
}

// Grid holds one Direction code per cell of the source raster,
// row-major like dem.Grid.
type Grid struct {
	Width, Height int
	Codes         []Direction
}

// InBounds reports whether (x, y) lies within the grid extent.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the direction code at (x, y); must be in bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) Direction {
	return g.Codes[y*g.Width+x]
}

// Downstream returns the coordinates of the cell that (x, y) drains into
// and ok=false when the cell is a sink.
// Complexity: O(1).
func (g *Grid) Downstream(x, y int) (nx, ny int, ok bool) {
	d := g.Codes[y*g.Width+x]
	if d == None {
		return x, y, false
	}
	dx, dy := Offset(d)

	return x + dx, y + dy, true
}
