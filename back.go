package rvr1

import (
	"errors"
	"fmt"
	"math"

	"github.com/riversidedenim/rvr1/geom"
	"github.com/riversidedenim/rvr1/pattern"
)

// ErrNoConvergence is returned when the back rise search exceeds its step
// bound without reaching the rise angle.
var ErrNoConvergence = errors.New("rvr1: back rise search did not converge")

// inseamAnchor is the vertical line the front inseam is mirrored about. It
// lies 30 mm beyond the side seam, half of the extra back knee girth.
const inseamAnchor = -30

// riseSearch is the outcome of [searchBackRise].
type riseSearch struct {
	// The first point whose angle reached the threshold.
	Point geom.Point
	// The point before it, still above the threshold.
	Prev  geom.Point
	Steps int
}

// searchBackRise walks from start towards end in steps of length step until
// the direction of the walker as seen from ref drops to threshold or below.
// The start point itself is never tested.
func searchBackRise(start, end, ref geom.Point, threshold, step float64, maxSteps int) (riseSearch, error) {
	log := pattern.Logger()
	walker := start
	for i := 1; i <= maxSteps; i++ {
		prev := walker
		walker = walker.ShiftTowards(end, step)
		a := walker.Angle(ref)
		log.Debug("back rise search", "step", i, "angle", a, "threshold", threshold)
		if a <= threshold {
			return riseSearch{Point: walker, Prev: prev, Steps: i}, nil
		}
	}
	return riseSearch{}, fmt.Errorf("%w: angle %.4g° still above %.4g° after %d steps",
		ErrNoConvergence, walker.Angle(ref), threshold, maxSteps)
}

// maxDerivedSearchSteps caps the bound derived from the helper line.
const maxDerivedSearchSteps = 1 << 24

// derivedSearchSteps returns enough steps to walk a helper line of the given
// length, capped at maxDerivedSearchSteps.
func derivedSearchSteps(length, step float64) int {
	n := math.Ceil(length/step) + 1
	if !(n < maxDerivedSearchSteps) {
		return maxDerivedSearchSteps
	}
	return int(n)
}

// draftBack drafts the back leg. It mirrors the drafting of the front with
// the seat to the left of the side seam and takes its inseam from fi.
func (d *drafter) draftBack(p *pattern.Part, fi FrontInseam) {
	b, v, o := d.body, d.values, d.opts

	p.NewPoint("back1", 0, 0)
	p.Shift("back2", "back1", 90, b.kneeHeight)
	p.Shift("back3", "back1", 90, b.inseamLength)
	p.Shift("back4", "back3", 90, v.WaistHeight)
	p.Shift("back5", "back1", 90, b.sideseamLength)
	p.NewPoint("back6", p.X("back4")-v.UnderSideWidth, p.Y("back4"))
	p.NewPoint("back7", p.X("back6")-v.UnderSideGapDiameter, p.Y("back4"))

	// Helper line of the back rise, tilted by the rise angle.
	p.Shift("back8", "back4", 180-o.BackRiseAngle, p.Distance("back4", "back7"))

	// Walk the helper line towards the side seam until the seat seam from
	// back6 stands at the rise angle to it.
	if p.Err() != nil {
		return
	}
	maxSteps := o.MaxSearchSteps
	if maxSteps == 0 {
		maxSteps = derivedSearchSteps(p.Distance("back8", "back4"), o.SearchStep)
	}
	rise, err := searchBackRise(p.Point("back8"), p.Point("back4"), p.Point("back6"),
		270-o.BackRiseAngle, o.SearchStep, maxSteps)
	if err != nil {
		p.Fail(fmt.Errorf("part %s: %w", p.Name(), err))
		return
	}
	pattern.Logger().Debug("found back rise", "steps", rise.Steps, "point", rise.Point)
	p.AddPoint("back9", rise.Point)

	// Waistline helpers.
	p.Shift("back10", "back5", p.Angle("back4", "back9"), p.Distance("back4", "back7"))
	p.Shift("back11", "back9", p.Angle("back6", "back9"), p.Distance("back3", "back5"))
	p.LinesCross("back12", "back5", "back10", "back9", "back11")

	p.Shift("back13", "back2", 180, v.BackKneeGirth)
	p.Shift("back14", "back1", 180, v.BackLegOpening)

	// The front inseam, moved over to the back knee.
	p.AddPoint("frontis1", fi.Start)
	p.AddPoint("frontis2", fi.StartControl)
	p.AddPoint("frontis3", fi.End)
	p.AddPoint("frontis4", fi.EndControl)
	p.FlipX("back15", "frontis1", inseamAnchor)
	p.FlipX("back16", "frontis2", inseamAnchor)
	p.FlipX("back17", "frontis3", inseamAnchor)
	p.FlipX("back18", "frontis4", inseamAnchor)

	// Top of the inseam, moved onto the line from back7 to the knee.
	p.NewPoint("back19", p.X("back7"), p.Y("back15"))
	p.LinesCross("back20", "back15", "back19", "back7", "back13")
	p.ClonePoint("back21", "back20")

	// Control points of the curve from the seat seam to the inseam.
	p.Shift("back22", "back6", p.Angle("back6", "back9"), -150)
	p.Shift("back23", "back20", 0, 150)
	p.LinesCross("back24", "back6", "back22", "back20", "back23")
	p.ClonePoint("back25", "back6")

	// Top of the side seam.
	p.Shift("back26", "back12", p.Angle("back12", "back5"), b.waistGirth/4)

	p.NewPath("back",
		pattern.MoveTo("back1"),
		pattern.LineTo("back2"),
		pattern.LineTo("back3"),
		pattern.LineTo("back4"),
		pattern.LineTo("back5"),
		pattern.Close())
	p.NewPath("back1", pattern.MoveTo("back4"), pattern.LineTo("back6"), pattern.LineTo("back7"))
	p.NewPath("back2", pattern.MoveTo("back4"), pattern.LineTo("back9"))
	p.NewPath("back3", pattern.MoveTo("back6"), pattern.LineTo("back9"))
	p.NewPath("back4", pattern.MoveTo("back9"), pattern.LineTo("back12"))
	p.NewPath("back5", pattern.MoveTo("back12"), pattern.LineTo("back5"))
	p.NewPath("back6", pattern.MoveTo("back2"), pattern.LineTo("back13"))
	p.NewPath("back7", pattern.MoveTo("back1"), pattern.LineTo("back14"))
	p.NewPath("back8", pattern.MoveTo("back20"), pattern.CurveTo("back21", "back18", "back17"))
	p.NewPath("back9", pattern.MoveTo("back20"), pattern.CurveTo("back24", "back25", "back6"))
	p.NewPath("back10", pattern.MoveTo("back26"), pattern.LineTo("back4"))
}
