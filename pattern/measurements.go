package pattern

import (
	"fmt"
	"maps"
	"slices"
)

// Measurements maps measurement names, such as "hipGirth", to lengths in
// millimetres.
type Measurements map[string]float64

// Get returns the named measurement.
func (m Measurements) Get(name string) (float64, error) {
	v, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingMeasurement, name)
	}
	return v, nil
}

// Names returns the measurement names in sorted order.
func (m Measurements) Names() []string {
	return slices.Sorted(maps.Keys(m))
}
