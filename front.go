package rvr1

import (
	"github.com/riversidedenim/rvr1/geom"
	"github.com/riversidedenim/rvr1/pattern"
)

// FrontInseam is the crotch-to-knee curve of the front leg, which the back
// leg mirrors for its own inseam.
type FrontInseam struct {
	Start        geom.Point
	StartControl geom.Point
	End          geom.Point
	EndControl   geom.Point
}

// draftFront drafts the front leg upwards from the hem along the side seam
// at x = 0, with the crotch and inseam to the right.
func (d *drafter) draftFront(p *pattern.Part) FrontInseam {
	b, v := d.body, d.values

	// Heights measured up the side seam from the hem.
	p.NewPoint("front1", 0, 0)
	p.Shift("front2", "front1", 90, b.kneeHeight)
	p.Shift("front3", "front1", 90, b.inseamLength)
	p.Shift("front4", "front3", 90, v.WaistHeight)
	p.Shift("front5", "front1", 90, b.sideseamLength)
	p.Shift("front6", "front4", 0, v.TopSideWidth)
	p.Shift("front7", "front6", 0, v.TopSideGapDiameter)
	p.Shift("front8", "front2", 0, v.FrontKneeGirth)
	p.Shift("front9", "front1", 0, v.FrontLegOpening)

	// Crotch point, where the inseam line crosses the crotch height.
	p.NewPoint("front10", p.X("front7"), p.Y("front3"))
	p.LinesCross("front11", "front3", "front10", "front7", "front8")

	// Control points of the curve from the crotch to the knee.
	p.ClonePoint("front12", "front11")
	p.NewPoint("front13",
		p.X("front8")+p.DeltaX("front8", "front11")/4,
		p.Y("front11")-p.DeltaY("front8", "front11")/2)

	// Top of the fly.
	p.NewPoint("front14", p.X("front6"), p.Y("front5"))
	p.NewPoint("front15", p.X("front14")-20, p.Y("front5")+10)

	// Control points of the crotch curve.
	p.Shift("front16", "front6", p.Angle("front15", "front6"), p.DeltaY("front6", "front11")/2)
	p.NewPoint("front17",
		p.X("front11")-(p.DeltaX("front6", "front7")/2-p.DeltaX("front11", "front7")),
		p.Y("front11"))

	// Top of the side seam and the waistline from the fly.
	p.NewPoint("front18", p.X("front15")-b.waistGirth/4, p.Y("front5")+3)
	p.ClonePoint("front19", "front18")
	p.Shift("front20", "front15", p.Angle("front15", "front6")-90, p.DeltaX("front18", "front15")/2)
	p.Shift("front21", "front20", 90, 5)

	// Control points of the curve at the top of the side seam.
	p.ClonePoint("front22", "front4")
	p.NewPoint("front23", p.X("front4"), p.Y("front18")+p.DeltaY("front18", "front4")/2)

	p.NewPath("front",
		pattern.MoveTo("front1"),
		pattern.LineTo("front2"),
		pattern.LineTo("front3"),
		pattern.LineTo("front4"),
		pattern.CurveTo("front22", "front23", "front18"),
		pattern.CurveTo("front19", "front21", "front15"),
		pattern.LineTo("front6"),
		pattern.CurveTo("front16", "front17", "front11"),
		pattern.CurveTo("front12", "front13", "front8"),
		pattern.LineTo("front9"),
		pattern.Close(),
	).Class = "fabric"

	return FrontInseam{
		Start:        p.Point("front11"),
		StartControl: p.Point("front12"),
		End:          p.Point("front8"),
		EndControl:   p.Point("front13"),
	}
}
