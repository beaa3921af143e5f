package pattern

import (
	"fmt"
	"iter"

	"github.com/riversidedenim/rvr1/geom"
)

// ID names a point within a part.
type ID string

// Part is one piece of a pattern: a namespace of points, the paths drawn
// through them and the titles placed on it.
type Part struct {
	name   string
	points map[ID]geom.Point
	order  []ID
	paths  []*Path
	titles []Title
	err    error
}

// NewPart returns an empty part.
func NewPart(name string) *Part {
	return &Part{
		name:   name,
		points: make(map[ID]geom.Point),
	}
}

func (p *Part) Name() string { return p.name }

// Err returns the first error that occurred while building the part.
func (p *Part) Err() error { return p.err }

// Fail records err as the part's error unless one is already set. Designs use
// it to report failures of their own, after which the part stops accepting
// points.
func (p *Part) Fail(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

func (p *Part) unknown(id ID) error {
	return fmt.Errorf("%w %q in part %s", ErrUnknownPoint, id, p.name)
}

// lookup returns the point named id, recording an error if it doesn't exist.
func (p *Part) lookup(id ID) (geom.Point, bool) {
	if p.err != nil {
		return geom.Point{}, false
	}
	pt, ok := p.points[id]
	if !ok {
		p.Fail(p.unknown(id))
	}
	return pt, ok
}

func (p *Part) lookup2(a, b ID) (geom.Point, geom.Point, bool) {
	pa, ok := p.lookup(a)
	if !ok {
		return geom.Point{}, geom.Point{}, false
	}
	pb, ok := p.lookup(b)
	return pa, pb, ok
}

// AddPoint adds pt to the part under the name id.
func (p *Part) AddPoint(id ID, pt geom.Point) {
	if p.err != nil {
		return
	}
	if _, ok := p.points[id]; ok {
		p.Fail(fmt.Errorf("%w: %q in part %s", ErrDuplicatePoint, id, p.name))
		return
	}
	p.points[id] = pt
	p.order = append(p.order, id)
}

// NewPoint adds the point (x, y).
func (p *Part) NewPoint(id ID, x, y float64) {
	p.AddPoint(id, geom.Pt(x, y))
}

// ClonePoint adds a copy of src under the name id.
func (p *Part) ClonePoint(id, src ID) {
	if pt, ok := p.lookup(src); ok {
		p.AddPoint(id, pt)
	}
}

// Shift adds the point at distance from the point from, in the direction of
// angle degrees.
func (p *Part) Shift(id, from ID, angle, distance float64) {
	if pt, ok := p.lookup(from); ok {
		p.AddPoint(id, pt.Shift(angle, distance))
	}
}

// ShiftTowards adds the point at distance from the point from, on the ray
// towards the point to.
func (p *Part) ShiftTowards(id, from, to ID, distance float64) {
	if a, b, ok := p.lookup2(from, to); ok {
		p.AddPoint(id, a.ShiftTowards(b, distance))
	}
}

// LinesCross adds the point where the line through a0 and a1 crosses the
// line through b0 and b1. Both lines extend to infinity. Parallel lines
// record an error wrapping [geom.ErrParallel].
func (p *Part) LinesCross(id, a0, a1, b0, b1 ID) {
	pa0, pa1, ok := p.lookup2(a0, a1)
	if !ok {
		return
	}
	pb0, pb1, ok := p.lookup2(b0, b1)
	if !ok {
		return
	}
	pt, ok := geom.Line{P0: pa0, P1: pa1}.CrossingPoint(geom.Line{P0: pb0, P1: pb1})
	if !ok {
		p.Fail(fmt.Errorf("part %s: point %q: crossing %s-%s with %s-%s: %w",
			p.name, id, a0, a1, b0, b1, geom.ErrParallel))
		return
	}
	p.AddPoint(id, pt)
}

// FlipX adds the mirror image of src about the vertical line x = anchor.
func (p *Part) FlipX(id, src ID, anchor float64) {
	if pt, ok := p.lookup(src); ok {
		p.AddPoint(id, pt.FlipX(anchor))
	}
}

// Has reports whether the part has a point named id.
func (p *Part) Has(id ID) bool {
	_, ok := p.points[id]
	return ok
}

// Point returns the point named id. Unknown points record an error and
// return the zero point.
func (p *Part) Point(id ID) geom.Point {
	pt, _ := p.lookup(id)
	return pt
}

func (p *Part) X(id ID) float64 { return p.Point(id).X }
func (p *Part) Y(id ID) float64 { return p.Point(id).Y }

// Angle returns the direction of the point to as seen from the point from.
func (p *Part) Angle(from, to ID) float64 {
	a, b, _ := p.lookup2(from, to)
	return a.Angle(b)
}

func (p *Part) Distance(a, b ID) float64 {
	pa, pb, _ := p.lookup2(a, b)
	return pa.Distance(pb)
}

func (p *Part) DeltaX(a, b ID) float64 {
	pa, pb, _ := p.lookup2(a, b)
	return pa.DeltaX(pb)
}

func (p *Part) DeltaY(a, b ID) float64 {
	pa, pb, _ := p.lookup2(a, b)
	return pa.DeltaY(pb)
}

// Points returns an iterator over the part's points in creation order.
func (p *Part) Points() iter.Seq2[ID, geom.Point] {
	return func(yield func(ID, geom.Point) bool) {
		for _, id := range p.order {
			if !yield(id, p.points[id]) {
				return
			}
		}
	}
}

// Len returns the number of points in the part.
func (p *Part) Len() int { return len(p.order) }
