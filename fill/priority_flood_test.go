package fill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uihilab/hydrodem/dem"
	"github.com/uihilab/hydrodem/fill"
)

// bowl4x4 is the reference depression: corners 10, border 5, interior 1.
func bowl4x4(t *testing.T) *dem.Grid {
	t.Helper()
	g, err := dem.From2D([][]float64{
		{10, 5, 5, 10},
		{5, 1, 1, 5},
		{5, 1, 1, 5},
		{10, 5, 5, 10},
	})
	require.NoError(t, err)

	return g
}

// TestPriorityFlood_Bowl verifies the interior of a bowl rises exactly
// to the lowest spill elevation, with no epsilon gradient.
func TestPriorityFlood_Bowl(t *testing.T) {
	g := bowl4x4(t)

	filled, err := fill.PriorityFlood(g)
	require.NoError(t, err)

	for _, xy := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.Equal(t, 5.0, filled.At(xy[0], xy[1]),
			"interior cell (%d,%d) must rise to the spill level", xy[0], xy[1])
	}
}

// TestPriorityFlood_Monotonic verifies filled[i] >= original[i] for all
// cells and filled[i] == original[i] on the border.
func TestPriorityFlood_Monotonic(t *testing.T) {
	g, err := dem.From2D([][]float64{
		{9, 8, 7, 6, 9},
		{9, 2, 1, 2, 9},
		{9, 3, 0, 3, 9},
		{9, 9, 9, 9, 9},
	})
	require.NoError(t, err)

	filled, err := fill.PriorityFlood(g)
	require.NoError(t, err)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			assert.GreaterOrEqual(t, filled.At(x, y), g.At(x, y),
				"fill must never lower cell (%d,%d)", x, y)
			if x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1 {
				assert.Equal(t, g.At(x, y), filled.At(x, y),
					"border cell (%d,%d) must keep its elevation", x, y)
			}
		}
	}
}

// TestPriorityFlood_SpillThroughGap verifies the fill level follows the
// lowest escape route, not the lowest border cell overall.
func TestPriorityFlood_SpillThroughGap(t *testing.T) {
	// The pit at (2,1) escapes through the 6 at (2,0); the border 4 at
	// (4,2) is walled off by 9s.
	g, err := dem.From2D([][]float64{
		{9, 9, 6, 9, 9},
		{9, 9, 1, 9, 9},
		{9, 9, 9, 9, 4},
	})
	require.NoError(t, err)

	filled, err := fill.PriorityFlood(g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, filled.At(2, 1), "pit must rise to its spill elevation")
}

// TestPriorityFlood_InputUntouched verifies the caller's buffer is never
// mutated; callers may reuse the original raster.
func TestPriorityFlood_InputUntouched(t *testing.T) {
	g := bowl4x4(t)
	before := make([]float64, len(g.Cells))
	copy(before, g.Cells)

	_, err := fill.PriorityFlood(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.Cells, "input raster must not be mutated")
}

// TestPriorityFlood_Degenerate covers single-row, single-column, and
// single-cell rasters: all border, returned unchanged.
func TestPriorityFlood_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
	}{
		{"SingleRow", [][]float64{{3, 1, 2, 1, 3}}},
		{"SingleColumn", [][]float64{{3}, {1}, {2}}},
		{"SingleCell", [][]float64{{7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := dem.From2D(tc.rows)
			require.NoError(t, err)
			filled, err := fill.PriorityFlood(g)
			require.NoError(t, err)
			assert.Equal(t, g.Cells, filled.Cells)
		})
	}
}

// TestPriorityFlood_InvalidGrid verifies shape validation happens before
// any processing.
func TestPriorityFlood_InvalidGrid(t *testing.T) {
	_, err := fill.PriorityFlood(&dem.Grid{Width: 0, Height: 3})
	assert.ErrorIs(t, err, dem.ErrEmptyGrid)

	_, err = fill.PriorityFlood(&dem.Grid{Width: 2, Height: 2, Cells: []float64{1}})
	assert.ErrorIs(t, err, dem.ErrCellCount)
}

// TestDepth verifies the fill-depth companion raster.
func TestDepth(t *testing.T) {
	g := bowl4x4(t)

	depth, err := fill.Depth(g)
	require.NoError(t, err)

	for _, xy := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.Equal(t, 4.0, depth.At(xy[0], xy[1]), "interior depth must be 5-1")
	}
	assert.Equal(t, 0.0, depth.At(0, 0), "border depth must be zero")
}
