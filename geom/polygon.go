package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotPolygon is returned when a path that should consist of straight
// edges contains curves.
var ErrNotPolygon = errors.New("geom: path is not a polygon")

// Polygon is a closed polygon. The closing edge from the last vertex back to
// the first is implicit, the first vertex is not repeated.
type Polygon []Point

// PolygonFromPath returns the polygon traced by a path made of a single
// subpath of lines. A closing vertex equal to the first is dropped.
func PolygonFromPath(p BezPath) (Polygon, error) {
	var poly Polygon
	for i, el := range p {
		switch el.Kind {
		case MoveToKind:
			if i != 0 {
				return nil, fmt.Errorf("%w: more than one subpath", ErrNotPolygon)
			}
			poly = append(poly, el.P0)
		case LineToKind:
			poly = append(poly, el.P0)
		case ClosePathKind:
		default:
			return nil, fmt.Errorf("%w: element %d is %s", ErrNotPolygon, i, el)
		}
	}
	if n := len(poly); n > 1 && poly[0] == poly[n-1] {
		poly = poly[:n-1]
	}
	return poly, nil
}

// Edge returns the edge starting at vertex i.
func (poly Polygon) Edge(i int) Line {
	return Line{poly[i], poly[(i+1)%len(poly)]}
}

// SignedArea returns the area enclosed by the polygon using the shoelace
// formula. It is positive when the vertices run clockwise on screen (y
// pointing down) and negative otherwise.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i := range poly {
		sum += poly.Edge(i).SignedArea()
	}
	return sum
}

// Area returns the unsigned area enclosed by the polygon.
func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// Path returns the polygon as a closed Bézier path.
func (poly Polygon) Path() BezPath {
	p := make(BezPath, 0, len(poly)+1)
	for i, pt := range poly {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	if len(poly) > 0 {
		p.ClosePath()
	}
	return p
}

// Offset returns the polygon whose edges run parallel to those of poly at a
// distance of |d|. Positive distances grow the polygon and negative distances
// shrink it, independently of the winding direction.
//
// Vertex i of the result is the crossing of the two offset edges that meet
// at vertex i of poly, so both polygons have the same number of vertices and
// edge i of one corresponds to edge i of the other. Consecutive collinear
// edges have no crossing and produce [ErrParallel].
func (poly Polygon) Offset(d float64) (Polygon, error) {
	n := len(poly)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegenerate, n)
	}
	area := poly.SignedArea()
	if area == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}
	// Line.Offset moves to the right of travel, which is the inside of a
	// polygon with positive area.
	if area > 0 {
		d = -d
	}
	edges := make([]Line, n)
	for i := range poly {
		edges[i] = poly.Edge(i).Offset(d)
	}
	out := make(Polygon, n)
	for i := range poly {
		prev := edges[(i+n-1)%n]
		pt, ok := prev.CrossingPoint(edges[i])
		if !ok {
			return nil, fmt.Errorf("%w: edges meeting at vertex %d", ErrParallel, i)
		}
		out[i] = pt
	}
	return out, nil
}
