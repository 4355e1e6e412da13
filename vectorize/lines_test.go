package vectorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uihilab/hydrodem/dem"
	"github.com/uihilab/hydrodem/vectorize"
)

// TestLines_Segment verifies a straight 3-cell run becomes a single
// endpoint-to-endpoint chain.
func TestLines_Segment(t *testing.T) {
	g := occ(t, [][]float64{
		{1, 1, 1},
	})

	feats, err := vectorize.Lines(g)
	require.NoError(t, err)
	require.Len(t, feats, 1)

	assert.Equal(t, vectorize.KindLine, feats[0].Kind)
	want := []vectorize.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	assert.Equal(t, want, feats[0].Points)
}

// TestLines_Plus verifies a plus-shaped junction splits into one segment
// per cell-to-cell link: the diagonal adjacency between arms makes every
// arm a junction node, so no two links merge into a longer chain.
func TestLines_Plus(t *testing.T) {
	g := occ(t, [][]float64{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})

	feats, err := vectorize.Lines(g)
	require.NoError(t, err)
	require.Len(t, feats, 8)

	for i, f := range feats {
		assert.Equal(t, vectorize.KindLine, f.Kind)
		assert.Len(t, f.Points, 2, "feature %d", i)
	}
}

// TestLines_Loop verifies a node-free diamond loop comes back as one
// closed chain anchored at its lowest row-major cell.
func TestLines_Loop(t *testing.T) {
	g := occ(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})

	feats, err := vectorize.Lines(g)
	require.NoError(t, err)
	require.Len(t, feats, 1)

	want := []vectorize.Point{
		{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0},
	}
	assert.Equal(t, want, feats[0].Points)
}

// TestLines_IsolatedCell verifies a degree-0 cell yields a single-point
// feature.
func TestLines_IsolatedCell(t *testing.T) {
	g := occ(t, [][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	feats, err := vectorize.Lines(g)
	require.NoError(t, err)
	require.Len(t, feats, 1)
	assert.Equal(t, []vectorize.Point{{X: 1, Y: 1}}, feats[0].Points)
}

// TestLines_NoDuplicateLinks verifies every cell-to-cell link appears in
// exactly one feature: summed segment lengths match the link count.
func TestLines_NoDuplicateLinks(t *testing.T) {
	// Y-shaped network: stem plus two diverging branches.
	g := occ(t, [][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})

	feats, err := vectorize.Lines(g)
	require.NoError(t, err)

	links := 0
	for _, f := range feats {
		require.NotEmpty(t, f.Points)
		links += len(f.Points) - 1
	}
	// 7 solid cells in a tree shape carry exactly 6 links.
	assert.Equal(t, 6, links)
}

// TestLines_GeoTransform verifies chain vertices pass through the affine
// mapping.
func TestLines_GeoTransform(t *testing.T) {
	g := occ(t, [][]float64{
		{1, 1},
	})
	gt := vectorize.GeoTransform{100, 10, 0, 200, 0, -10}

	feats, err := vectorize.Lines(g, vectorize.WithGeoTransform(gt))
	require.NoError(t, err)
	require.Len(t, feats, 1)
	assert.Equal(t, []vectorize.Point{{X: 100, Y: 200}, {X: 110, Y: 200}}, feats[0].Points)
}

// TestLines_EmptyRaster verifies an all-zero raster yields no features.
func TestLines_EmptyRaster(t *testing.T) {
	g, err := dem.NewUniform(4, 4, 0)
	require.NoError(t, err)

	feats, err := vectorize.Lines(g)
	require.NoError(t, err)
	assert.Empty(t, feats)
}
