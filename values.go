package rvr1

import (
	"errors"

	"github.com/riversidedenim/rvr1/pattern"
)

// Names of the measurements the draft uses.
const (
	HipGirth       = "hipGirth"
	WaistGirth     = "waistGirth"
	SideseamLength = "sideseamLength"
	InseamLength   = "inseamLength"
	KneeHeight     = "kneeHeight"
	LegOpening     = "legOpening"
)

// RequiredMeasurements returns the names of all measurements the draft needs.
func RequiredMeasurements() []string {
	return []string{HipGirth, WaistGirth, SideseamLength, InseamLength, KneeHeight, LegOpening}
}

// ReferenceMeasurements returns the measurements the draft was developed
// against.
func ReferenceMeasurements() pattern.Measurements {
	return pattern.Measurements{
		HipGirth:       960,
		WaistGirth:     760,
		SideseamLength: 1050,
		InseamLength:   780,
		KneeHeight:     480,
		LegOpening:     420,
	}
}

type body struct {
	hipGirth       float64
	waistGirth     float64
	sideseamLength float64
	inseamLength   float64
	kneeHeight     float64
	legOpening     float64
}

func newBody(m pattern.Measurements) (body, error) {
	var errs []error
	get := func(name string) float64 {
		v, err := m.Get(name)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	b := body{
		hipGirth:       get(HipGirth),
		waistGirth:     get(WaistGirth),
		sideseamLength: get(SideseamLength),
		inseamLength:   get(InseamLength),
		kneeHeight:     get(KneeHeight),
		legOpening:     get(LegOpening),
	}
	if err := errors.Join(errs...); err != nil {
		return body{}, err
	}
	return b, nil
}

// Values are the quantities derived from the measurements before any part is
// drafted.
type Values struct {
	FrontKneeGirth  float64 `json:"frontKneeGirth"`
	BackKneeGirth   float64 `json:"backKneeGirth"`
	FrontLegOpening float64 `json:"frontLegOpening"`
	BackLegOpening  float64 `json:"backLegOpening"`
	// Vertical distance from the crotch to the waist.
	Rise                 float64 `json:"rise"`
	TopSideWidth         float64 `json:"topSideWidth"`
	TopSideGapDiameter   float64 `json:"topSideGapDiameter"`
	UnderSideWidth       float64 `json:"underSideWidth"`
	UnderSideGapDiameter float64 `json:"underSideGapDiameter"`
	WaistHeight          float64 `json:"waistHeight"`
}

// NewValues derives the draft's values from m. It fails with
// [pattern.ErrMissingMeasurement] if m lacks any of the required
// measurements.
func NewValues(m pattern.Measurements) (Values, error) {
	b, err := newBody(m)
	if err != nil {
		return Values{}, err
	}
	return b.values(), nil
}

func (b body) values() Values {
	v := Values{
		FrontKneeGirth:       b.legOpening / 2,
		BackKneeGirth:        b.legOpening/2 + 60,
		FrontLegOpening:      b.legOpening/2 - 20,
		BackLegOpening:       b.legOpening/2 + 20,
		Rise:                 b.sideseamLength - b.inseamLength,
		TopSideWidth:         b.hipGirth / 4,
		TopSideGapDiameter:   b.hipGirth/2/10 + 10,
		UnderSideWidth:       b.hipGirth/4 + 55,
		UnderSideGapDiameter: b.hipGirth/10 + 10,
		WaistHeight:          b.hipGirth/2/10 + 30,
	}
	pattern.Logger().Debug("derived values",
		"frontKneeGirth", v.FrontKneeGirth,
		"backKneeGirth", v.BackKneeGirth,
		"rise", v.Rise,
		"topSideWidth", v.TopSideWidth,
		"topSideGapDiameter", v.TopSideGapDiameter,
		"underSideWidth", v.UnderSideWidth,
		"underSideGapDiameter", v.UnderSideGapDiameter)
	return v
}
