package vectorize

import (
	"github.com/uihilab/hydrodem/dem"
)

// Rasterize paints the polygon features of feats back onto an empty
// width×height raster: a cell becomes 1 when its center lies inside an
// odd number of rings (even-odd rule), so hole rings carve out their
// interior. Non-polygon features are ignored.
//
// Features must be in pixel space (traced with the identity transform);
// world-space vertices would be compared against pixel centers.
//
// Complexity: O(W×H×V) time for V total ring vertices, O(W×H) memory.
func Rasterize(feats []Feature, width, height int) (*dem.Grid, error) {
	out, err := dem.NewUniform(width, height, 0)
	if err != nil {
		return nil, err
	}

	var rings [][]Point
	for _, f := range feats {
		if f.Kind == KindPolygon && len(f.Points) >= 4 {
			rings = append(rings, f.Points)
		}
	}
	if len(rings) == 0 {
		return out, nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			crossings := 0
			for _, ring := range rings {
				crossings += rayCrossings(ring, cx, cy)
			}
			if crossings%2 == 1 {
				out.Set(x, y, 1)
			}
		}
	}

	return out, nil
}

// rayCrossings counts how many ring edges a horizontal ray cast east
// from (px, py) crosses. Cell centers sit at half-integer coordinates
// while ring vertices sit on integers, so the ray never grazes a vertex.
func rayCrossings(ring []Point, px, py float64) int {
	count := 0
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > py) == (b.Y > py) {
			continue
		}
		ix := a.X + (py-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if px < ix {
			count++
		}
	}

	return count
}
