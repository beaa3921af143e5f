// Package pattern is the drafting model that pattern designs are built on.
//
// A [Pattern] is an ordered set of named parts. Each [Part] owns a namespace
// of named points and a list of named paths referring to those points.
// Points are created once, by absolute placement, by shifting another point,
// by crossing two lines or by cloning, and never change afterwards.
//
// Construction methods on Part don't return errors. The first failure, such
// as a reference to a point that doesn't exist yet, is recorded and turns all
// following construction steps into no-ops. Check [Part.Err] once the part is
// drafted.
package pattern
