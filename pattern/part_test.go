package pattern

import (
	"errors"
	"maps"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/riversidedenim/rvr1/geom"
)

func TestPartConstruction(t *testing.T) {
	p := NewPart("test")
	p.NewPoint("origin", 0, 0)
	p.Shift("down", "origin", 270, 100)
	p.Shift("right", "origin", 0, 50)
	p.ShiftTowards("mid", "origin", "down", 25)
	p.ClonePoint("copy", "right")
	p.NewPoint("a", -50, 100)
	p.LinesCross("cross", "origin", "down", "right", "a")
	p.FlipX("flipped", "right", -30)
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}

	want := map[ID]geom.Point{
		"origin":  geom.Pt(0, 0),
		"down":    geom.Pt(0, 100),
		"right":   geom.Pt(50, 0),
		"mid":     geom.Pt(0, 25),
		"copy":    geom.Pt(50, 0),
		"a":       geom.Pt(-50, 100),
		"cross":   geom.Pt(0, 50),
		"flipped": geom.Pt(-110, 0),
	}
	diff(t, want, maps.Collect(p.Points()), cmpopts.EquateApprox(0, 1e-9))

	var order []ID
	for id := range p.Points() {
		order = append(order, id)
	}
	diff(t, []ID{"origin", "down", "right", "mid", "copy", "a", "cross", "flipped"}, order)

	if a := p.Angle("origin", "down"); math.Abs(a-270) > 1e-9 {
		t.Errorf("got angle %v, want 270", a)
	}
	if d := p.Distance("origin", "a"); d != math.Hypot(50, 100) {
		t.Errorf("got distance %v, want %v", d, math.Hypot(50, 100))
	}
	if dx, dy := p.DeltaX("right", "a"), p.DeltaY("right", "a"); dx != -100 || dy != 100 {
		t.Errorf("got deltas (%v, %v), want (-100, 100)", dx, dy)
	}
	if x, y := p.X("a"), p.Y("a"); x != -50 || y != 100 {
		t.Errorf("got (%v, %v), want (-50, 100)", x, y)
	}
}

func TestPartStickyError(t *testing.T) {
	p := NewPart("test")
	p.NewPoint("a", 0, 0)
	p.Shift("b", "missing", 0, 10)
	p.NewPoint("c", 1, 1)
	p.Shift("d", "a", 0, 10)

	err := p.Err()
	if !errors.Is(err, ErrUnknownPoint) {
		t.Fatalf("got %v, want ErrUnknownPoint", err)
	}
	if p.Len() != 1 {
		t.Errorf("points were added after a failure: %d", p.Len())
	}
	if p.Has("c") || p.Has("d") {
		t.Error("points were added after a failure")
	}

	// Later failures don't replace the first one.
	p.Fail(errors.New("other"))
	if p.Err() != err {
		t.Errorf("got %v, want %v", p.Err(), err)
	}
}

func TestPartUnknownQuery(t *testing.T) {
	p := NewPart("test")
	p.NewPoint("a", 3, 4)
	if x := p.X("nope"); x != 0 {
		t.Errorf("got %v, want 0", x)
	}
	if !errors.Is(p.Err(), ErrUnknownPoint) {
		t.Errorf("got %v, want ErrUnknownPoint", p.Err())
	}
}

func TestPartDuplicatePoint(t *testing.T) {
	p := NewPart("test")
	p.NewPoint("a", 0, 0)
	p.NewPoint("a", 1, 1)
	if !errors.Is(p.Err(), ErrDuplicatePoint) {
		t.Fatalf("got %v, want ErrDuplicatePoint", p.Err())
	}
	diff(t, geom.Pt(0, 0), p.points["a"])
}

func TestPartParallel(t *testing.T) {
	p := NewPart("test")
	p.NewPoint("a0", 0, 0)
	p.NewPoint("a1", 10, 0)
	p.NewPoint("b0", 0, 5)
	p.NewPoint("b1", 10, 5)
	p.LinesCross("x", "a0", "a1", "b0", "b1")
	if !errors.Is(p.Err(), geom.ErrParallel) {
		t.Errorf("got %v, want ErrParallel", p.Err())
	}
}
