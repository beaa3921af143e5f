package rvr1

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riversidedenim/rvr1/geom"
	"github.com/riversidedenim/rvr1/pattern"
)

func newTestDrafter(t *testing.T) *drafter {
	t.Helper()
	b, err := newBody(ReferenceMeasurements())
	require.NoError(t, err)
	return &drafter{body: b, values: b.values(), opts: DefaultOptions()}
}

func samplePart(t *testing.T, name string) *pattern.Part {
	t.Helper()
	pat, err := Sample(ReferenceMeasurements())
	require.NoError(t, err)
	p, err := pat.Part(name)
	require.NoError(t, err)
	return p
}

func TestSampleParts(t *testing.T) {
	pat, err := Sample(ReferenceMeasurements())
	require.NoError(t, err)

	var names []string
	for _, p := range pat.Parts() {
		names = append(names, p.Name())
		require.Empty(t, p.Titles(), "sampled parts have no titles")
	}
	require.Equal(t, []string{PartFront, PartBack, PartBackPocket, PartBackPocketLining}, names)
}

func TestFrontOutline(t *testing.T) {
	front := samplePart(t, PartFront)
	path, err := front.Path("front")
	require.NoError(t, err)
	require.Equal(t,
		"M front1 L front2 L front3 L front4 C front22 front23 front18 C front19 front21 front15 "+
			"L front6 C front16 front17 front11 C front12 front13 front8 L front9 z",
		path.String())
	require.Len(t, front.Paths(), 1)
	require.Equal(t, 23, front.Len())

	diffNear(t, geom.Pt(0, -1050), front.Point("front5"))
	diffNear(t, geom.Pt(298, -858), front.Point("front7"))
	// The crotch point lies on the crotch line, where the line from front7
	// through the knee crosses it.
	diffNear(t, geom.Pt(298-88*78/378.0, -780), front.Point("front11"))
	diffNear(t, geom.Pt(30, -1047), front.Point("front18"))

	a, err := front.Area("front")
	require.NoError(t, err)
	require.Greater(t, a, 0.0)
}

func TestFrontInseamHandOff(t *testing.T) {
	d := newTestDrafter(t)
	front := pattern.NewPart(PartFront)
	fi := d.draftFront(front)
	require.NoError(t, front.Err())

	require.Equal(t, FrontInseam{
		Start:        front.Point("front11"),
		StartControl: front.Point("front12"),
		End:          front.Point("front8"),
		EndControl:   front.Point("front13"),
	}, fi)

	back := pattern.NewPart(PartBack)
	d.draftBack(back, fi)
	require.NoError(t, back.Err())
	require.Equal(t, fi.Start, back.Point("frontis1"))
	require.Equal(t, fi.StartControl, back.Point("frontis2"))
	require.Equal(t, fi.End, back.Point("frontis3"))
	require.Equal(t, fi.EndControl, back.Point("frontis4"))
}

func TestBackInseamIsMirroredFront(t *testing.T) {
	back := samplePart(t, PartBack)
	for i, id := range []pattern.ID{"back15", "back16", "back17", "back18"} {
		src := back.Point(pattern.ID("frontis" + string(rune('1'+i))))
		got := back.Point(id)
		require.Equal(t, 2*inseamAnchor-src.X, got.X)
		require.Equal(t, src.Y, got.Y)
		// Mirroring about the same line again restores the front point.
		diffNear(t, src, got.FlipX(inseamAnchor))
	}
	// The mirrored knee point lands on the back knee girth.
	diffNear(t, back.Point("back13"), back.Point("back17"))
	require.NoError(t, back.Err())
}

func TestBackPaths(t *testing.T) {
	back := samplePart(t, PartBack)
	want := map[string]string{
		"back":   "M back1 L back2 L back3 L back4 L back5 z",
		"back1":  "M back4 L back6 L back7",
		"back2":  "M back4 L back9",
		"back3":  "M back6 L back9",
		"back4":  "M back9 L back12",
		"back5":  "M back12 L back5",
		"back6":  "M back2 L back13",
		"back7":  "M back1 L back14",
		"back8":  "M back20 C back21 back18 back17",
		"back9":  "M back20 C back24 back25 back6",
		"back10": "M back26 L back4",
	}
	got := map[string]string{}
	for _, path := range back.Paths() {
		got[path.Name] = path.String()
		require.True(t, path.Render)
	}
	require.Equal(t, want, got)
}

func TestBackRiseSearch(t *testing.T) {
	back := samplePart(t, PartBack)
	const threshold = 258

	require.LessOrEqual(t, back.Angle("back9", "back6"), float64(threshold))

	rise, err := searchBackRise(back.Point("back8"), back.Point("back4"), back.Point("back6"), threshold, 1, 1000)
	require.NoError(t, err)
	require.Equal(t, back.Point("back9"), rise.Point)
	require.Equal(t, 113, rise.Steps)
	require.LessOrEqual(t, rise.Point.Angle(back.Point("back6")), float64(threshold))
	require.Greater(t, rise.Prev.Angle(back.Point("back6")), float64(threshold))
	require.InDelta(t, 1, rise.Prev.Distance(rise.Point), epsilon)

	// The search stays on the helper line.
	require.InDelta(t, 168, back.Angle("back4", "back9"), 1e-6)
}

func TestBackRiseSearchNoConvergence(t *testing.T) {
	_, err := Sample(ReferenceMeasurements(), WithMaxSearchSteps(5))
	require.ErrorIs(t, err, ErrNoConvergence)
	require.ErrorContains(t, err, "drafting back")

	_, err = searchBackRise(geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(50, 100), 10, 1, 200)
	require.ErrorIs(t, err, ErrNoConvergence)
}

func TestBackRiseAngleOption(t *testing.T) {
	pat, err := Sample(ReferenceMeasurements(), WithBackRiseAngle(8), WithSearchStep(0.5))
	require.NoError(t, err)
	back, err := pat.Part(PartBack)
	require.NoError(t, err)
	require.LessOrEqual(t, back.Angle("back9", "back6"), 262.0)
	require.InDelta(t, 172, back.Angle("back4", "back9"), 1e-6)
}

func TestPocketPentagon(t *testing.T) {
	pocket := samplePart(t, PartBackPocket)
	bp, err := pocket.BezPath("backPocket1")
	require.NoError(t, err)
	require.True(t, bp.Closed())

	poly, err := geom.PolygonFromPath(bp)
	require.NoError(t, err)
	require.Len(t, poly, 5)
	for i := range poly {
		for j := range i {
			require.Greater(t, poly[i].Distance(poly[j]), 1.0, "vertices %d and %d coincide", j, i)
		}
	}
	diffNear(t, geom.Pt(190, 0), poly[1])
	require.InDelta(t, 185.755, poly[2].X, 1e-3)
	require.InDelta(t, 155.862, poly[2].Y, 1e-3)

	area, err := pocket.Area("backPocket1")
	require.NoError(t, err)
	require.InDelta(t, poly.Area(), area, 1e-6)
}

func TestLiningInset(t *testing.T) {
	lining := samplePart(t, PartBackPocketLining)

	base, err := lining.Path("backPocket2")
	require.NoError(t, err)
	require.False(t, base.Render)

	cut, err := lining.Path("backPocketLining")
	require.NoError(t, err)
	require.True(t, cut.Render)
	require.Equal(t, "M lining1 L lining2 L lining3 L lining4 L lining5 z", cut.String())

	outer, err := lining.BezPath("backPocket2")
	require.NoError(t, err)
	inner, err := lining.BezPath("backPocketLining")
	require.NoError(t, err)
	outerPoly, err := geom.PolygonFromPath(outer)
	require.NoError(t, err)
	innerPoly, err := geom.PolygonFromPath(inner)
	require.NoError(t, err)
	require.Len(t, innerPoly, 5)

	for i := range outerPoly {
		edge := outerPoly.Edge(i)
		for _, pt := range []geom.Point{innerPoly.Edge(i).P0, innerPoly.Edge(i).P1} {
			require.InDelta(t, 10, edge.DistanceToPoint(pt), 1e-9, "edge %d", i)
		}
	}
	require.Less(t, innerPoly.Area(), outerPoly.Area())

	// The lining matches the pocket outline of the pocket part.
	pocket := samplePart(t, PartBackPocket)
	pocketPath, err := pocket.BezPath("backPocket1")
	require.NoError(t, err)
	pocketPoly, err := geom.PolygonFromPath(pocketPath)
	require.NoError(t, err)
	require.Equal(t, pocketPoly, outerPoly)
}

func TestLiningInsetOption(t *testing.T) {
	pat, err := Sample(ReferenceMeasurements(), WithLiningInset(5))
	require.NoError(t, err)
	lining, err := pat.Part(PartBackPocketLining)
	require.NoError(t, err)
	edge := geom.Line{P0: lining.Point("6"), P1: lining.Point("7")}
	require.InDelta(t, 5, edge.DistanceToPoint(lining.Point("lining1")), 1e-9)
}

func TestInvalidOptions(t *testing.T) {
	for _, opt := range []Option{
		WithBackRiseAngle(0),
		WithBackRiseAngle(95),
		WithBackRiseAngle(math.NaN()),
		WithBackRiseAngle(math.Inf(1)),
		WithSearchStep(0),
		WithSearchStep(1e-300),
		WithSearchStep(math.NaN()),
		WithSearchStep(math.Inf(1)),
		WithMaxSearchSteps(-1),
		WithLiningInset(-10),
		WithLiningInset(math.NaN()),
		WithLiningInset(math.Inf(1)),
		WithLiningInset(math.Inf(-1)),
	} {
		_, err := Sample(ReferenceMeasurements(), opt)
		require.ErrorIs(t, err, ErrInvalidOption)
	}
}

func TestDerivedSearchSteps(t *testing.T) {
	require.Equal(t, 402, derivedSearchSteps(401, 1))
	require.Equal(t, 802, derivedSearchSteps(400.5, 0.5))
	require.Equal(t, maxDerivedSearchSteps, derivedSearchSteps(401, 1e-300))
	require.Equal(t, maxDerivedSearchSteps, derivedSearchSteps(math.Inf(1), 1))

	// The finest accepted step stays within the cap.
	_, err := Sample(ReferenceMeasurements(), WithSearchStep(minSearchStep))
	require.NoError(t, err)
}

func TestSampleMissingMeasurement(t *testing.T) {
	m := ReferenceMeasurements()
	delete(m, WaistGirth)
	pat, err := Sample(m)
	require.ErrorIs(t, err, pattern.ErrMissingMeasurement)
	require.Nil(t, pat)
}

func TestDraftTitles(t *testing.T) {
	pat, err := Draft(ReferenceMeasurements())
	require.NoError(t, err)

	front, err := pat.Part(PartFront)
	require.NoError(t, err)
	require.Equal(t, []pattern.Title{{Anchor: "titleAnchor1", Title: "Front", Message: "Compiled 1.0"}}, front.Titles())
	anchor := front.Point("titleAnchor1")
	require.InDelta(t, front.X("front21"), anchor.X, epsilon)
	require.InDelta(t, front.Y("front21")+100, anchor.Y, epsilon)

	for name, x := range map[string]float64{
		PartBack:             0,
		PartBackPocket:       95,
		PartBackPocketLining: 95,
	} {
		p, err := pat.Part(name)
		require.NoError(t, err)
		require.Len(t, p.Titles(), 1)
		title := p.Titles()[0]
		require.Equal(t, "3b", title.Number)
		require.Equal(t, "1x from interfacing", title.Message)
		require.Equal(t, "vertical-small", title.Mode)
		diffNear(t, geom.Pt(x, 135), p.Point(title.Anchor))
	}
}

func TestFinalizeUnknownPoint(t *testing.T) {
	p := pattern.NewPart(PartBack)
	finalizers[PartBack](p)
	require.ErrorIs(t, p.Err(), pattern.ErrUnknownPoint)
}

func TestSampleIsDeterministic(t *testing.T) {
	a := samplePart(t, PartBack)
	b := samplePart(t, PartBack)
	for id, pt := range a.Points() {
		require.Equal(t, pt, b.Point(id), "point %s", id)
	}
	require.False(t, math.IsNaN(a.X("back26")))
}
