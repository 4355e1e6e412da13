package dem

// NewMask allocates an all-false width×height Mask.
// Returns ErrEmptyGrid for non-positive dimensions.
// Complexity: O(W×H).
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Mask{Width: width, Height: height, Bits: make([]bool, width*height)}, nil
}

// InBounds reports whether (x, y) lies within the mask extent.
// Complexity: O(1).
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Contains reports whether cell (x, y) is set; out-of-bounds
// coordinates are simply not members.
// Complexity: O(1).
func (m *Mask) Contains(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}

	return m.Bits[y*m.Width+x]
}

// Set marks cell (x, y) as a member. The coordinate must be in bounds.
// Complexity: O(1).
func (m *Mask) Set(x, y int) {
	m.Bits[y*m.Width+x] = true
}

// Count returns the number of set cells.
// Complexity: O(W×H).
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}

	return n
}

// ToGrid converts the mask to a 0/1 float raster of the same shape,
// the occupancy form the vectorizer consumes.
// Complexity: O(W×H).
func (m *Mask) ToGrid() *Grid {
	cells := make([]float64, len(m.Bits))
	for i, b := range m.Bits {
		if b {
			cells[i] = 1
		}
	}

	return &Grid{Width: m.Width, Height: m.Height, Cells: cells}
}
