package geom

import (
	"fmt"
	"math"

	"github.com/rclancey/earcut"
)

// Triangulate splits a simple polygon into triangles using the earcut
// algorithm. The winding direction of the input doesn't matter.
func Triangulate(poly Polygon) ([][3]Point, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegenerate, len(poly))
	}

	// earcut wants a flat coordinate array: [x0, y0, x1, y1, ...].
	coords := make([]float64, len(poly)*2)
	for i, pt := range poly {
		coords[i*2] = pt.X
		coords[i*2+1] = pt.Y
	}

	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("geom: triangulating %d-vertex polygon: %w", len(poly), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("geom: earcut returned %d indices, not a multiple of 3", len(indices))
	}

	tris := make([][3]Point, len(indices)/3)
	for i := range tris {
		tris[i] = [3]Point{
			poly[indices[i*3]],
			poly[indices[i*3+1]],
			poly[indices[i*3+2]],
		}
	}
	return tris, nil
}

// TriangulatedArea returns the total area of the triangles produced by
// [Triangulate]. For simple polygons it agrees with [Polygon.Area].
func TriangulatedArea(poly Polygon) (float64, error) {
	tris, err := Triangulate(poly)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, tri := range tris {
		sum += math.Abs(tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))) / 2
	}
	return sum, nil
}
