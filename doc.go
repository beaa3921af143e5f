// Package rvr1 drafts RVR1, a pair of slim fitting mid-rise selvedge jeans.
//
// The draft has four parts: the front leg, the back leg, the back pocket and
// the back pocket lining. All of them are constructed from six body
// measurements (see [RequiredMeasurements]) using the drafting model of
// package pattern. The front is drafted first because the back reuses its
// inseam curve, mirrored to the other side of the knee.
//
// [Sample] drafts the bare geometry. [Draft] also adds the titles.
//
// Coordinates are in millimetres with y pointing down. Each leg is drafted
// upwards from the hem, which lies on y = 0.
package rvr1
