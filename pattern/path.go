package pattern

import (
	"fmt"
	"strings"

	"github.com/riversidedenim/rvr1/geom"
)

type SegmentKind int

const (
	// Start a new subpath at the point.
	MoveToKind SegmentKind = iota + 1
	// Draw a straight line to the point.
	LineToKind
	// Draw a cubic Bézier to the point, using two control points.
	CurveToKind
	// Draw a straight line back to the start of the subpath.
	CloseKind
)

// Segment is one instruction of a path. Points are referred to by name and
// resolved against the part when the path's geometry is needed.
type Segment struct {
	Kind SegmentKind
	// The end point. Unused for CloseKind.
	To ID
	// The control points of CurveToKind.
	C1, C2 ID
}

func MoveTo(to ID) Segment { return Segment{Kind: MoveToKind, To: to} }
func LineTo(to ID) Segment { return Segment{Kind: LineToKind, To: to} }

// CurveTo returns a cubic segment ending at to, with control points c1 and c2.
func CurveTo(c1, c2, to ID) Segment {
	return Segment{Kind: CurveToKind, To: to, C1: c1, C2: c2}
}

func Close() Segment { return Segment{Kind: CloseKind} }

func (s Segment) String() string {
	switch s.Kind {
	case MoveToKind:
		return "M " + string(s.To)
	case LineToKind:
		return "L " + string(s.To)
	case CurveToKind:
		return fmt.Sprintf("C %s %s %s", s.C1, s.C2, s.To)
	case CloseKind:
		return "z"
	default:
		return "InvalidSegment"
	}
}

// refs returns the points the segment refers to.
func (s Segment) refs() []ID {
	switch s.Kind {
	case MoveToKind, LineToKind:
		return []ID{s.To}
	case CurveToKind:
		return []ID{s.C1, s.C2, s.To}
	default:
		return nil
	}
}

// Path is a named sequence of segments within a part.
type Path struct {
	Name     string
	Segments []Segment
	// Render is false for construction paths that are kept for their
	// geometry but not drawn.
	Render bool
	// Class is passed through to renderers as a style hint, such as "fabric"
	// or "helpline".
	Class string
}

// String returns the path in the compact point-name form, for example
// "M a L b C c d e z".
func (path *Path) String() string {
	parts := make([]string, len(path.Segments))
	for i, s := range path.Segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Closed reports whether the path ends with a [Close] segment.
func (path *Path) Closed() bool {
	n := len(path.Segments)
	return n > 0 && path.Segments[n-1].Kind == CloseKind
}

// NewPath adds a rendered path to the part. Every point the segments refer to
// must already exist. The returned path may be modified to change how it is
// rendered. If the part has failed, the path isn't added.
func (p *Part) NewPath(name string, segs ...Segment) *Path {
	path := &Path{Name: name, Segments: segs, Render: true}
	if p.err != nil {
		return path
	}
	for _, other := range p.paths {
		if other.Name == name {
			p.Fail(fmt.Errorf("%w: %q in part %s", ErrDuplicatePath, name, p.name))
			return path
		}
	}
	if len(segs) == 0 || segs[0].Kind != MoveToKind {
		p.Fail(fmt.Errorf("%w: %q in part %s doesn't start with a move", ErrInvalidPath, name, p.name))
		return path
	}
	for _, s := range segs {
		for _, id := range s.refs() {
			if !p.Has(id) {
				p.Fail(fmt.Errorf("path %q: %w", name, p.unknown(id)))
				return path
			}
		}
	}
	p.paths = append(p.paths, path)
	return path
}

// Path returns the path with the given name.
func (p *Part) Path(name string) (*Path, error) {
	for _, path := range p.paths {
		if path.Name == name {
			return path, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in part %s", ErrUnknownPath, name, p.name)
}

// Paths returns the part's paths in the order they were added.
func (p *Part) Paths() []*Path { return p.paths }

// BezPath resolves the named path to geometry.
func (p *Part) BezPath(name string) (geom.BezPath, error) {
	path, err := p.Path(name)
	if err != nil {
		return nil, err
	}
	return p.resolve(path)
}

func (p *Part) resolve(path *Path) (geom.BezPath, error) {
	pt := func(id ID) (geom.Point, error) {
		v, ok := p.points[id]
		if !ok {
			return geom.Point{}, fmt.Errorf("path %q: %w", path.Name, p.unknown(id))
		}
		return v, nil
	}
	out := make(geom.BezPath, 0, len(path.Segments))
	for _, s := range path.Segments {
		switch s.Kind {
		case MoveToKind, LineToKind:
			to, err := pt(s.To)
			if err != nil {
				return nil, err
			}
			if s.Kind == MoveToKind {
				out.MoveTo(to)
			} else {
				out.LineTo(to)
			}
		case CurveToKind:
			c1, err := pt(s.C1)
			if err != nil {
				return nil, err
			}
			c2, err := pt(s.C2)
			if err != nil {
				return nil, err
			}
			to, err := pt(s.To)
			if err != nil {
				return nil, err
			}
			out.CubicTo(c1, c2, to)
		case CloseKind:
			out.ClosePath()
		default:
			return nil, fmt.Errorf("%w: %q has segment kind %d", ErrInvalidPath, path.Name, s.Kind)
		}
	}
	return out, nil
}
