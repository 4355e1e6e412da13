package dem

// NewGrid wraps an existing flat row-major buffer as a Grid.
// The buffer is adopted, not copied; callers that need isolation
// should Clone the result.
// Returns ErrEmptyGrid for non-positive dimensions and ErrCellCount
// when len(cells) != width*height.
// Complexity: O(1).
func NewGrid(width, height int, cells []float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, ErrCellCount
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// NewUniform allocates a width×height Grid with every cell set to value.
// Complexity: O(W×H).
func NewUniform(width, height int, value float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]float64, width*height)
	if value != 0 {
		for i := range cells {
			cells[i] = value
		}
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// From2D constructs a Grid from a non-empty rectangular 2D slice,
// deep-copying the rows into a fresh flat buffer.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]float64, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Clone returns a deep copy of the grid; mutating the copy never
// affects the original buffer.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]float64, len(g.Cells))
	copy(cells, g.Cells)

	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// InBounds reports whether (x, y) lies within the grid extent.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the cell value at (x, y). The coordinate must be in bounds;
// use InBounds first when the caller cannot guarantee it.
// Complexity: O(1).
func (g *Grid) At(x, y int) float64 {
	return g.Cells[y*g.Width+x]
}

// Set stores value at (x, y). The coordinate must be in bounds.
// Complexity: O(1).
func (g *Grid) Set(x, y int, value float64) {
	g.Cells[y*g.Width+x] = value
}

// Validate re-checks the shape contract on a caller-supplied Grid,
// returning ErrEmptyGrid or ErrCellCount exactly as NewGrid would.
// Algorithm entry points call this before touching the buffer.
// Complexity: O(1).
func (g *Grid) Validate() error {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return ErrEmptyGrid
	}
	if len(g.Cells) != g.Width*g.Height {
		return ErrCellCount
	}

	return nil
}
