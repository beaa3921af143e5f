package rvr1

import (
	"fmt"

	"github.com/riversidedenim/rvr1/pattern"
)

// Names of the parts, in drafting order.
const (
	PartFront            = "front"
	PartBack             = "back"
	PartBackPocket       = "backPocket"
	PartBackPocketLining = "backPocketLining"
)

type drafter struct {
	body   body
	values Values
	opts   Options
}

// Sample drafts the geometry of all four parts for the measurements m. It
// fails if a measurement is missing, an option is invalid or any part can't
// be constructed. No partial pattern is returned.
func Sample(m pattern.Measurements, opts ...Option) (*pattern.Pattern, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	b, err := newBody(m)
	if err != nil {
		return nil, err
	}
	d := &drafter{body: b, values: b.values(), opts: o}

	// The back takes its inseam from the front, so the front comes first.
	var inseam FrontInseam
	steps := []struct {
		name  string
		draft func(*pattern.Part)
	}{
		{PartFront, func(p *pattern.Part) { inseam = d.draftFront(p) }},
		{PartBack, func(p *pattern.Part) { d.draftBack(p, inseam) }},
		{PartBackPocket, d.draftBackPocket},
		{PartBackPocketLining, d.draftBackPocketLining},
	}

	pat := new(pattern.Pattern)
	for _, step := range steps {
		p, err := pat.AddPart(step.name)
		if err != nil {
			return nil, err
		}
		pattern.Logger().Debug("drafting part", "part", step.name)
		step.draft(p)
		if err := p.Err(); err != nil {
			return nil, fmt.Errorf("rvr1: drafting %s: %w", step.name, err)
		}
		pattern.Logger().Debug("drafted part", "part", step.name, "points", p.Len(), "paths", len(p.Paths()))
	}
	return pat, nil
}

// Draft drafts the pattern like [Sample] and finalizes every part by adding
// its title.
func Draft(m pattern.Measurements, opts ...Option) (*pattern.Pattern, error) {
	pat, err := Sample(m, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range pat.Parts() {
		finalize, ok := finalizers[p.Name()]
		if !ok {
			return nil, fmt.Errorf("rvr1: no finalizer for part %s", p.Name())
		}
		finalize(p)
		if err := p.Err(); err != nil {
			return nil, fmt.Errorf("rvr1: finalizing %s: %w", p.Name(), err)
		}
	}
	return pat, nil
}
