package main

import (
	"math"

	"github.com/riversidedenim/rvr1"
	"github.com/riversidedenim/rvr1/geom"
	"github.com/riversidedenim/rvr1/pattern"
)

type report struct {
	Measurements pattern.Measurements `json:"measurements"`
	Values       rvr1.Values          `json:"values"`
	Parts        []partReport         `json:"parts"`
}

type partReport struct {
	Name        string          `json:"name"`
	BoundingBox box             `json:"boundingBox"`
	Points      []pointReport   `json:"points"`
	Paths       []pathReport    `json:"paths"`
	Titles      []pattern.Title `json:"titles,omitempty"`
}

type pointReport struct {
	ID pattern.ID `json:"id"`
	X  float64    `json:"x"`
	Y  float64    `json:"y"`
}

type pathReport struct {
	Name   string `json:"name"`
	Points string `json:"points"`
	// SVG path data.
	D      string  `json:"d"`
	Render bool    `json:"render"`
	Class  string  `json:"class,omitempty"`
	Length float64 `json:"length"`
	// Only set for closed paths.
	Area *float64 `json:"area,omitempty"`
}

type box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func newReport(pat *pattern.Pattern, m pattern.Measurements, precision int) (*report, error) {
	v, err := rvr1.NewValues(m)
	if err != nil {
		return nil, err
	}
	round := rounder(precision)
	opts := geom.SVGOptions{MaxPrecision: precision}

	rep := &report{Measurements: m, Values: v}
	for _, p := range pat.Parts() {
		bbox := p.BoundingBox()
		pr := partReport{
			Name: p.Name(),
			BoundingBox: box{
				X:      round(bbox.X0),
				Y:      round(bbox.Y0),
				Width:  round(bbox.Width()),
				Height: round(bbox.Height()),
			},
			Titles: p.Titles(),
		}
		for id, pt := range p.Points() {
			pr.Points = append(pr.Points, pointReport{ID: id, X: round(pt.X), Y: round(pt.Y)})
		}
		for _, path := range p.Paths() {
			bp, err := p.BezPath(path.Name)
			if err != nil {
				return nil, err
			}
			length, err := p.PathLength(path.Name)
			if err != nil {
				return nil, err
			}
			r := pathReport{
				Name:   path.Name,
				Points: path.String(),
				D:      bp.SVG(opts),
				Render: path.Render,
				Class:  path.Class,
				Length: round(length),
			}
			if path.Closed() {
				// Outlines that don't enclose anything, such as the back
				// construction outline, have no area to report.
				if a, err := p.Area(path.Name); err == nil {
					a = round(a)
					r.Area = &a
				} else {
					pattern.Logger().Debug("no area", "part", p.Name(), "path", path.Name, "err", err)
				}
			}
			pr.Paths = append(pr.Paths, r)
		}
		rep.Parts = append(rep.Parts, pr)
	}
	return rep, nil
}

// rounder returns a function rounding to the given number of decimals, or
// not at all if precision isn't positive. It never returns negative zero.
func rounder(precision int) func(float64) float64 {
	scale := math.Pow(10, float64(precision))
	return func(x float64) float64 {
		if precision > 0 {
			x = math.Round(x*scale) / scale
		}
		if x == 0 {
			return 0
		}
		return x
	}
}
