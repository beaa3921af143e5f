package rvr1

import "github.com/riversidedenim/rvr1/pattern"

// pocketEdges are the edges of the back pocket pentagon, clockwise from the
// top left corner, as angle in degrees and length.
var pocketEdges = [4]struct{ angle, length float64 }{
	{0, 190},
	{-91.56, 155.92},
	{-159.75, 71.48},
	{165.79, 97.26},
}

// pentagon adds the five pocket corners under ids and closes them into the
// path name.
func pentagon(p *pattern.Part, name string, ids [5]pattern.ID) *pattern.Path {
	p.NewPoint(ids[0], 0, 0)
	for i, e := range pocketEdges {
		p.Shift(ids[i+1], ids[i], e.angle, e.length)
	}
	return p.NewPath(name,
		pattern.MoveTo(ids[0]),
		pattern.LineTo(ids[1]),
		pattern.LineTo(ids[2]),
		pattern.LineTo(ids[3]),
		pattern.LineTo(ids[4]),
		pattern.Close())
}

func (d *drafter) draftBackPocket(p *pattern.Part) {
	pentagon(p, "backPocket1", [5]pattern.ID{"1", "2", "3", "4", "5"}).Class = "fabric"
}

// draftBackPocketLining drafts the pocket outline again, without rendering
// it, and draws the lining inside it.
func (d *drafter) draftBackPocketLining(p *pattern.Part) {
	pentagon(p, "backPocket2", [5]pattern.ID{"6", "7", "8", "9", "10"}).Render = false

	ids := p.OffsetPolygon("backPocket2", -d.opts.LiningInset, "lining")
	if ids == nil {
		return
	}
	segs := []pattern.Segment{pattern.MoveTo(ids[0])}
	for _, id := range ids[1:] {
		segs = append(segs, pattern.LineTo(id))
	}
	segs = append(segs, pattern.Close())
	p.NewPath("backPocketLining", segs...).Class = "lining"
}
