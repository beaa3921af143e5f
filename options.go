package rvr1

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOption is returned when an option is out of range.
var ErrInvalidOption = errors.New("rvr1: invalid option")

// Options are the style settings of the draft. The zero value is not useful;
// start from [DefaultOptions].
type Options struct {
	// BackRiseAngle tilts the back rise away from the vertical, in degrees.
	BackRiseAngle float64
	// SearchStep is the distance the back rise search advances per step.
	SearchStep float64
	// MaxSearchSteps bounds the back rise search. Zero derives the bound from
	// the length of the helper line being searched.
	MaxSearchSteps int
	// LiningInset is how far the pocket lining lies inside the pocket edges.
	LiningInset float64
}

// DefaultOptions returns the settings of the RVR1 design.
func DefaultOptions() Options {
	return Options{
		BackRiseAngle: 12,
		SearchStep:    1,
		LiningInset:   10,
	}
}

// Option changes one setting of the draft.
type Option func(*Options)

// WithBackRiseAngle sets the tilt of the back rise. The search stops where
// the rise meets the waistline at 270° − deg.
func WithBackRiseAngle(deg float64) Option {
	return func(o *Options) { o.BackRiseAngle = deg }
}

// WithSearchStep sets the step length of the back rise search. Steps below
// 0.001 are rejected.
func WithSearchStep(step float64) Option {
	return func(o *Options) { o.SearchStep = step }
}

// WithMaxSearchSteps sets the maximum number of steps of the back rise
// search. The draft fails with [ErrNoConvergence] when it is exceeded.
func WithMaxSearchSteps(n int) Option {
	return func(o *Options) { o.MaxSearchSteps = n }
}

// WithLiningInset sets the inset of the pocket lining.
func WithLiningInset(d float64) Option {
	return func(o *Options) { o.LiningInset = d }
}

func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.validate()
}

// minSearchStep is the finest step the back rise search accepts.
const minSearchStep = 0.001

func (o Options) validate() error {
	// Comparisons are written so that NaN fails them.
	switch {
	case !(o.BackRiseAngle > 0 && o.BackRiseAngle < 90):
		return fmt.Errorf("%w: back rise angle %v outside (0, 90)", ErrInvalidOption, o.BackRiseAngle)
	case !(o.SearchStep >= minSearchStep) || math.IsInf(o.SearchStep, 0):
		return fmt.Errorf("%w: search step %v must be finite and at least %v", ErrInvalidOption, o.SearchStep, minSearchStep)
	case o.MaxSearchSteps < 0:
		return fmt.Errorf("%w: negative step bound %d", ErrInvalidOption, o.MaxSearchSteps)
	case !(o.LiningInset > 0) || math.IsInf(o.LiningInset, 0):
		return fmt.Errorf("%w: lining inset %v must be finite and positive", ErrInvalidOption, o.LiningInset)
	}
	return nil
}
