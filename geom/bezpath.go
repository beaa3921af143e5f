package geom

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	CubicToKind
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath]. MoveTo and LineTo use
// P0 as their target. CubicTo uses P0 and P1 as control points and P2 as its
// end point. ClosePath uses none.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	el.P0 = el.P0.Transform(aff)
	el.P1 = el.P1.Transform(aff)
	el.P2 = el.P2.Transform(aff)
	if el.Kind != CubicToKind {
		el.P1, el.P2 = Point{}, Point{}
	}
	if el.Kind == ClosePathKind {
		el.P0 = Point{}
	}
	return el
}

// EndPoint returns where the pen rests after el. ClosePath has no end point
// of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func ClosePath() PathElement      { return PathElement{Kind: ClosePathKind} }

// CubicTo draws a curve with control points c1 and c2 ending at to.
func CubicTo(c1, c2, to Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: c1, P1: c2, P2: to}
}

type PathSegmentKind int

const (
	LineKind PathSegmentKind = iota + 1
	CubicKind
)

// PathSegment is a piece of a path with its start point made explicit. A
// line uses P0 and P1. A cubic uses all four points.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg PathSegment) line() Line { return Line{seg.P0, seg.P1} }

// Cubic returns seg as a cubic Bézier. Lines become cubics whose control
// points sit on their end points.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.line().Length()
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	}
	return 0
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.line().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	}
	return 0
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.line().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	}
	return Rect{}
}

// Segments turns drawing commands into segments. A ClosePath yields the
// closing line back to the start of its subpath unless the pen is already
// there. Moves yield nothing.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, pen Point
		for el := range seq {
			var seg PathSegment
			switch el.Kind {
			case MoveToKind:
				start, pen = el.P0, el.P0
				continue
			case LineToKind:
				seg = Line{pen, el.P0}.Seg()
				pen = el.P0
			case CubicToKind:
				seg = CubicBez{pen, el.P0, el.P1, el.P2}.Seg()
				pen = el.P2
			case ClosePathKind:
				if pen == start {
					continue
				}
				seg = Line{pen, start}.Seg()
				pen = start
			default:
				panic(fmt.Sprintf("geom: invalid path element kind %d", el.Kind))
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// BezPath is a sequence of drawing commands. Each subpath starts with a
// MoveTo and may end with a ClosePath.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement)            { *p = append(*p, el) }
func (p *BezPath) MoveTo(pt Point)                { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)                { p.Push(LineTo(pt)) }
func (p *BezPath) CubicTo(c1, c2, to Point)       { p.Push(CubicTo(c1, c2, to)) }
func (p *BezPath) ClosePath()                     { p.Push(ClosePath()) }
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(p.Elements()) }

func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// Closed reports whether the path ends in a ClosePath.
func (p BezPath) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

// SignedArea sums the signed areas of the path's segments. For a closed path
// this is the enclosed area, signed as in [Polygon.SignedArea].
func (p BezPath) SignedArea() float64 {
	var sum float64
	for s := range p.Segments() {
		sum += s.SignedArea()
	}
	return sum
}

// Arclen returns the length of the path, measuring curves to within accuracy.
func (p BezPath) Arclen(accuracy float64) float64 {
	var sum float64
	for s := range p.Segments() {
		sum += s.Arclen(accuracy)
	}
	return sum
}

// BoundingBox returns the tight bounds of the drawn path. A path that draws
// nothing has a zero Rect.
func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	n := 0
	for s := range p.Segments() {
		if n == 0 {
			bbox = s.BoundingBox()
		} else {
			bbox = bbox.Union(s.BoundingBox())
		}
		n++
	}
	return bbox
}

// Flatten replaces every curve by lines that stay within tolerance of it.
func (p BezPath) Flatten(tolerance float64) BezPath {
	var out BezPath
	var pen Point
	for _, el := range p {
		if el.Kind == CubicToKind {
			CubicBez{pen, el.P0, el.P1, el.P2}.flatten(tolerance, 0, func(pt Point) bool {
				out.LineTo(pt)
				return true
			})
		} else {
			out.Push(el)
		}
		if pt, ok := el.EndPoint(); ok {
			pen = pt
		}
	}
	return out
}

// Vertices lists the end points of all elements except ClosePath.
func (p BezPath) Vertices() []Point {
	out := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// SVGOptions controls how [WriteSVG] formats path data.
type SVGOptions struct {
	// MaxPrecision is the number of decimals kept per coordinate. Trailing
	// zeros are dropped. Zero keeps the shortest exact representation.
	MaxPrecision int
}

func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// SVG is like [WriteSVG] but returns the path data as a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	_ = WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes seq to w as SVG path data, such as "M0,0 L10,0 Z".
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	num := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(p Point) string { return num(p.X) + "," + num(p.Y) }

	sep := ""
	for el := range seq {
		var cmd string
		switch el.Kind {
		case MoveToKind:
			cmd = "M" + pt(el.P0)
		case LineToKind:
			cmd = "L" + pt(el.P0)
		case CubicToKind:
			cmd = "C" + pt(el.P0) + " " + pt(el.P1) + " " + pt(el.P2)
		case ClosePathKind:
			cmd = "Z"
		default:
			return fmt.Errorf("geom: invalid path element kind %d", el.Kind)
		}
		if _, err := io.WriteString(w, sep+cmd); err != nil {
			return err
		}
		sep = " "
	}
	return nil
}
