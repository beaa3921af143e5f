package pattern

import (
	"fmt"

	"github.com/riversidedenim/rvr1/geom"
)

const (
	// Accuracy of seam lengths, in millimetres.
	arclenAccuracy = 1e-4
	// Maximum distance between a curve and the lines standing in for it when
	// computing areas.
	flattenTolerance = 0.01
)

// PathLength returns the length of the named path, such as the length of a
// seam.
func (p *Part) PathLength(name string) (float64, error) {
	bp, err := p.BezPath(name)
	if err != nil {
		return 0, err
	}
	return bp.Arclen(arclenAccuracy), nil
}

// Area returns the area enclosed by the named closed path. Curves are
// flattened and the outline triangulated.
func (p *Part) Area(name string) (float64, error) {
	path, err := p.Path(name)
	if err != nil {
		return 0, err
	}
	if !path.Closed() {
		return 0, fmt.Errorf("%w: %q in part %s is open", ErrInvalidPath, name, p.name)
	}
	bp, err := p.resolve(path)
	if err != nil {
		return 0, err
	}
	poly, err := geom.PolygonFromPath(bp.Flatten(flattenTolerance))
	if err != nil {
		return 0, fmt.Errorf("path %q: %w", name, err)
	}
	a, err := geom.TriangulatedArea(poly)
	if err != nil {
		return 0, fmt.Errorf("path %q: %w", name, err)
	}
	return a, nil
}

// BoundingBox returns the smallest rectangle enclosing the part's rendered
// paths. A part without rendered paths is bounded by its points.
func (p *Part) BoundingBox() geom.Rect {
	var bbox geom.Rect
	first := true
	union := func(r geom.Rect) {
		if first {
			first = false
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, path := range p.paths {
		if !path.Render {
			continue
		}
		bp, err := p.resolve(path)
		if err != nil {
			continue
		}
		union(bp.BoundingBox())
	}
	if first {
		for _, pt := range p.Points() {
			union(geom.NewRectFromPoints(pt, pt))
		}
	}
	return bbox
}

// OffsetPolygon offsets the straight-edged closed path name by distance and
// adds the corners of the result as prefix1, prefix2, and so on. Corner i
// lies where the offset edges meeting at vertex i of the path cross.
// Positive distances grow the outline and negative distances shrink it.
//
// It returns the ids of the new points in vertex order, or nil if the part
// has failed.
func (p *Part) OffsetPolygon(name string, distance float64, prefix string) []ID {
	if p.err != nil {
		return nil
	}
	path, err := p.Path(name)
	if err != nil {
		p.Fail(err)
		return nil
	}
	bp, err := p.resolve(path)
	if err != nil {
		p.Fail(err)
		return nil
	}
	poly, err := geom.PolygonFromPath(bp)
	if err == nil {
		poly, err = poly.Offset(distance)
	}
	if err != nil {
		p.Fail(fmt.Errorf("part %s: offsetting path %q: %w", p.name, name, err))
		return nil
	}
	ids := make([]ID, len(poly))
	for i, pt := range poly {
		ids[i] = ID(fmt.Sprintf("%s%d", prefix, i+1))
		p.AddPoint(ids[i], pt)
	}
	if p.err != nil {
		return nil
	}
	return ids
}
