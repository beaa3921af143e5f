package rvr1

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/riversidedenim/rvr1/geom"
)

const epsilon = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func diffNear(t *testing.T, want, got geom.Point) {
	t.Helper()
	diff(t, want, got, cmpopts.EquateApprox(0, epsilon))
}
