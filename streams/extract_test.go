package streams_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uihilab/hydrodem/accum"
	"github.com/uihilab/hydrodem/dem"
	"github.com/uihilab/hydrodem/streams"
)

// ramp3x3 drains every column south and the bottom row east into (2,2);
// its accumulation bottom row is [3, 6, 9].
func ramp3x3(t *testing.T) *dem.Grid {
	t.Helper()
	g, err := dem.From2D([][]float64{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	})
	require.NoError(t, err)

	return g
}

// TestExtract_Ramp verifies hand-computed stream cells on the ramp at two
// thresholds.
func TestExtract_Ramp(t *testing.T) {
	g := ramp3x3(t)

	mask, err := streams.Extract(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Count(), "threshold 3 keeps the whole bottom row")
	for x := 0; x < 3; x++ {
		assert.True(t, mask.Contains(x, 2), "bottom-row cell (%d,2) accumulates >= 3", x)
	}

	mask, err = streams.Extract(g, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, mask.Count())
	assert.True(t, mask.Contains(1, 2))
	assert.True(t, mask.Contains(2, 2))
}

// TestExtract_Monotonic verifies raising the threshold only removes
// stream cells, never adds them.
func TestExtract_Monotonic(t *testing.T) {
	const w, h = 25, 19
	rng := rand.New(rand.NewSource(11))
	cells := make([]float64, w*h)
	for i := range cells {
		cells[i] = float64(rng.Intn(60))
	}
	g, err := dem.NewGrid(w, h, cells)
	require.NoError(t, err)

	loose, err := streams.Extract(g, 4)
	require.NoError(t, err)
	tight, err := streams.Extract(g, 12)
	require.NoError(t, err)

	for i, set := range tight.Bits {
		if set {
			assert.True(t, loose.Bits[i], "cell %d passes threshold 12 but not 4", i)
		}
	}
	assert.LessOrEqual(t, tight.Count(), loose.Count())
}

// TestExtract_FromResult verifies thresholding a shared accumulation
// result matches running Extract from scratch.
func TestExtract_FromResult(t *testing.T) {
	g := ramp3x3(t)

	res, err := accum.Accumulate(g)
	require.NoError(t, err)

	direct, err := streams.Extract(g, 6)
	require.NoError(t, err)
	shared, err := streams.FromResult(res, 6)
	require.NoError(t, err)

	assert.Equal(t, direct.Bits, shared.Bits)
}

// TestExtract_BadThreshold verifies zero and negative thresholds are
// rejected by both entry points.
func TestExtract_BadThreshold(t *testing.T) {
	g := ramp3x3(t)
	res, err := accum.Accumulate(g)
	require.NoError(t, err)

	for _, threshold := range []float64{0, -1, -50} {
		_, err := streams.Extract(g, threshold)
		assert.ErrorIs(t, err, streams.ErrBadThreshold, "Extract threshold %v", threshold)

		_, err = streams.FromResult(res, threshold)
		assert.ErrorIs(t, err, streams.ErrBadThreshold, "FromResult threshold %v", threshold)
	}
}

// TestExtract_InvalidGrid verifies malformed rasters surface the dem
// validation error.
func TestExtract_InvalidGrid(t *testing.T) {
	g := &dem.Grid{Width: 2, Height: 2, Cells: []float64{1, 2, 3}}

	_, err := streams.Extract(g, 1)
	assert.ErrorIs(t, err, dem.ErrCellCount)
}
