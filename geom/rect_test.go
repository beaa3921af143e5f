package geom

import "testing"

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 10), Pt(0, 0))
	diff(t, Rect{0, 0, 10, 10}, r)
	r = r.UnionPoint(Pt(-5, 20))
	diff(t, Rect{-5, 0, 10, 20}, r)
	if r.Width() != 15 || r.Height() != 20 || r.Area() != 300 {
		t.Errorf("unexpected extents %v", r)
	}
}
