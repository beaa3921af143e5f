// Package geom provides the 2D primitives used to draft sewing patterns:
// points, vectors, lines, cubic Béziers, Bézier paths, affine transforms,
// rectangles and polygons.
//
// # Coordinates and angles
//
// Coordinates follow the SVG convention: x grows to the right and y grows
// downwards. Drafting code, however, thinks in terms of the paper in front of
// it, so angles are expressed in degrees and measured counter-clockwise as
// seen on screen. An angle of 0° points right, 90° points up, 180° points left
// and 270° points down. [Point.Shift], [Point.Angle] and [VecFromDegrees] all
// use this convention, which makes
//
//	p.Angle(p.Shift(a, d)) == a
//
// hold for any positive distance d and any angle a in [0, 360).
//
// Lower-level functions that deal in radians, such as [Rotate],
// keep the usual mathematical convention of the y-down plane.
//
// # Paths
//
// [BezPath] represents paths as a slice of path elements, akin to the drawing
// commands of PostScript or SVG: [MoveTo], [LineTo], [CubicTo] and
// [ClosePath]. [BezPath.Segments] converts them to self-contained segments
// with explicit start points, which is what length and area computations
// need. [WriteSVG] turns elements into SVG path data.
//
// # Polygons
//
// [Polygon.Offset] grows or shrinks a polygon by moving every edge along its
// normal and re-intersecting neighbouring edges. [Triangulate] splits a simple
// polygon into triangles using the earcut algorithm.
package geom
